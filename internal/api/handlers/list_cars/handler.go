package list_cars

import (
	"net/http"

	"github.com/m04kA/SMC-CarManager/internal/api/handlers"
	"github.com/m04kA/SMC-CarManager/internal/api/views"
)

const (
	msgLoadFailed = "Błąd ładowania danych aut."
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

// Handle GET /cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page := views.ListPage{Page: views.Page{Notice: handlers.NoticeFromRequest(r)}}

	cars, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /cars - Failed to list cars: %v", err)
		page.Error = msgLoadFailed
		handlers.RenderPage(w, h.renderer, h.logger, http.StatusBadGateway, views.PageList, page)
		return
	}

	page.Cars = cars
	h.logger.Info("GET /cars - Listed %d cars", len(cars))
	handlers.RenderPage(w, h.renderer, h.logger, http.StatusOK, views.PageList, page)
}
