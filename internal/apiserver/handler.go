package apiserver

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarManager/internal/api/handlers"
	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/infra/storage/car"
	"github.com/m04kA/SMC-CarManager/internal/integrations/carsapi"
)

const msgCarNotFound = "car not found"

// Handler REST ресурс /api/Cars
type Handler struct {
	repo   CarRepository
	logger Logger
}

func NewHandler(repo CarRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Register регистрирует маршруты ресурса. Путь принимается и как /api/Cars, и как /api/cars.
func (h *Handler) Register(r *mux.Router) {
	for _, prefix := range []string{carsapi.ResourcePath, "/api/cars"} {
		r.HandleFunc(prefix, h.List).Methods(http.MethodGet)
		r.HandleFunc(prefix, h.Create).Methods(http.MethodPost)
		r.HandleFunc(prefix+"/{id}", h.Get).Methods(http.MethodGet)
		r.HandleFunc(prefix+"/{id}", h.Update).Methods(http.MethodPut)
		r.HandleFunc(prefix+"/{id}", h.Delete).Methods(http.MethodDelete)
	}
}

// List GET /api/Cars
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("GET /api/Cars - Failed to list cars: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]carsapi.Car, 0, len(cars))
	for _, c := range cars {
		response = append(response, ToResponse(c))
	}

	h.logger.Info("GET /api/Cars - Listed %d cars", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// Get GET /api/Cars/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	c, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.respondRepoError(w, "GET /api/Cars/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ToResponse(c))
}

// Create POST /api/Cars
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	newCar, ok := h.decode(w, r, "POST /api/Cars")
	if !ok {
		return
	}
	newCar.ID = ""

	created, err := h.repo.Create(r.Context(), newCar)
	if err != nil {
		h.logger.Error("POST /api/Cars - Failed to create car: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /api/Cars - Car created: id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, ToResponse(created))
}

// Update PUT /api/Cars/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	updated, ok := h.decode(w, r, "PUT /api/Cars/{id}")
	if !ok {
		return
	}
	updated.ID = id

	if err := h.repo.Update(r.Context(), updated); err != nil {
		h.respondRepoError(w, "PUT /api/Cars/{id}", id, err)
		return
	}

	h.logger.Info("PUT /api/Cars/{id} - Car updated: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

// Delete DELETE /api/Cars/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.respondRepoError(w, "DELETE /api/Cars/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /api/Cars/{id} - Car deleted: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

// decode разбирает и валидирует тело запроса; при ошибке ответ уже отправлен
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, op string) (*domain.Car, bool) {
	var req CarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondJSON(w, http.StatusBadRequest, NewValidationProblem(map[string][]string{
			"$": {"The request body is not valid JSON."},
		}))
		return nil, false
	}

	c, fields := toDomain(&req)
	if fields != nil {
		h.logger.Warn("%s - Validation failed: %d fields", op, len(fields))
		handlers.RespondJSON(w, http.StatusBadRequest, NewValidationProblem(fields))
		return nil, false
	}

	return c, true
}

func (h *Handler) respondRepoError(w http.ResponseWriter, op, id string, err error) {
	if errors.Is(err, car.ErrCarNotFound) {
		h.logger.Warn("%s - Car not found: id=%s", op, id)
		handlers.RespondNotFound(w, msgCarNotFound)
		return
	}

	h.logger.Error("%s - Repository error: id=%s, error=%v", op, id, err)
	handlers.RespondInternalError(w)
}
