package edit_car

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarManager/internal/api/handlers"
	"github.com/m04kA/SMC-CarManager/internal/api/views"
	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/service/cars"
)

const (
	msgTitle      = "Brak Danych"
	msgLoadFailed = "Błąd ładowania danych auta do edycji. Upewnij się, że ID jest poprawne."
)

type Handler struct {
	service  CarService
	options  Options
	renderer handlers.Renderer
	logger   Logger
}

func NewHandler(service CarService, options Options, renderer handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		options:  options,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /edit/{id}; id == "new" открывает форму создания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if id == domain.NewCarID {
		h.logger.Info("GET /edit/new - Showing create form")
		handlers.RenderPage(w, h.renderer, h.logger, http.StatusOK, views.PageForm,
			NewFormPage(id, h.service.NewForm(), h.options, ""))
		return
	}

	form, err := h.service.GetForm(r.Context(), id)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, cars.ErrCarNotFound) || errors.Is(err, cars.ErrInvalidInput) {
			h.logger.Warn("GET /edit/{id} - Car not found: id=%s", id)
			status = http.StatusNotFound
		} else {
			h.logger.Error("GET /edit/{id} - Failed to load car: id=%s, error=%v", id, err)
		}

		handlers.RenderPage(w, h.renderer, h.logger, status, views.PageMessage, views.MessagePage{
			Title:   msgTitle,
			Message: msgLoadFailed,
		})
		return
	}

	h.logger.Info("GET /edit/{id} - Showing edit form: id=%s", id)
	handlers.RenderPage(w, h.renderer, h.logger, http.StatusOK, views.PageForm,
		NewFormPage(id, form, h.options, ""))
}
