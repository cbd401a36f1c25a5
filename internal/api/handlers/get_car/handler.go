package get_car

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarManager/internal/api/handlers"
	"github.com/m04kA/SMC-CarManager/internal/api/views"
	"github.com/m04kA/SMC-CarManager/internal/service/cars"
)

const (
	msgTitle       = "Błąd"
	msgNotFound    = "Nie znaleziono auta."
	msgServerError = "Nie znaleziono auta lub błąd serwera."
	msgMissingID   = "Brak ID samochodu."
)

type Handler struct {
	service  CarService
	renderer handlers.Renderer
	logger   Logger
}

func NewHandler(service CarService, renderer handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /cars/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	car, err := h.service.Get(r.Context(), id)
	if err != nil {
		page := views.MessagePage{Title: msgTitle}
		status := http.StatusBadGateway

		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id} - Car not found: id=%s", id)
			page.Message = msgNotFound
			status = http.StatusNotFound

		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("GET /cars/{id} - Invalid car ID: %q", id)
			page.Message = msgMissingID
			status = http.StatusBadRequest

		default:
			h.logger.Error("GET /cars/{id} - Failed to get car: id=%s, error=%v", id, err)
			page.Message = msgServerError
		}

		handlers.RenderPage(w, h.renderer, h.logger, status, views.PageMessage, page)
		return
	}

	h.logger.Info("GET /cars/{id} - Car retrieved successfully: id=%s", id)
	handlers.RenderPage(w, h.renderer, h.logger, http.StatusOK, views.PageDetails, views.DetailsPage{
		Page: views.Page{Notice: handlers.NoticeFromRequest(r)},
		Car:  car,
	})
}
