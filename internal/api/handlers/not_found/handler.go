package not_found

import (
	"net/http"

	"github.com/m04kA/SMC-CarManager/internal/api/handlers"
	"github.com/m04kA/SMC-CarManager/internal/api/views"
)

// Path адрес страницы 404
const Path = "/not-found"

type Handler struct {
	renderer handlers.Renderer
	logger   handlers.Logger
}

func NewHandler(renderer handlers.Renderer, logger handlers.Logger) *Handler {
	return &Handler{
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /not-found
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RenderPage(w, h.renderer, h.logger, http.StatusNotFound, views.PageNotFound, views.NotFoundPage{})
}

// Redirect перенаправляет все несовпавшие адреса на /not-found
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	h.logger.Warn("%s %s - No route, redirecting to %s", r.Method, r.URL.Path, Path)
	http.Redirect(w, r, Path, http.StatusFound)
}
