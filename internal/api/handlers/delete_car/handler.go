package delete_car

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarManager/internal/api/handlers"
	"github.com/m04kA/SMC-CarManager/internal/api/views"
	"github.com/m04kA/SMC-CarManager/internal/service/cars"
)

const (
	msgTitle           = "Błąd"
	msgConfirmGeneric  = "Czy na pewno chcesz usunąć to auto?"
	msgConfirmNamedFmt = "Czy na pewno chcesz usunąć samochód %s?"
	msgNotFound        = "Nie znaleziono auta."
	msgDeleteFailed    = "Błąd podczas usuwania auta. Spróbuj ponownie."
	confirmField       = "confirm"
	confirmValue       = "yes"
	fromList           = "list"
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

// Confirm GET /cars/{id}/delete - страница подтверждения, запрос в API на удаление не отправляется
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	page := views.ConfirmDeletePage{
		ID:        id,
		Question:  msgConfirmGeneric,
		CancelURL: "/cars/" + url.PathEscape(id),
	}

	if r.URL.Query().Get("from") == fromList {
		page.CancelURL = "/cars"
	} else {
		car, err := h.service.Get(r.Context(), id)
		switch {
		case err == nil:
			page.Question = fmt.Sprintf(msgConfirmNamedFmt, car.DisplayName())
		case errors.Is(err, cars.ErrCarNotFound), errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("GET /cars/{id}/delete - Car not found: id=%s", id)
			handlers.RenderPage(w, h.renderer, h.logger, http.StatusNotFound, views.PageMessage,
				views.MessagePage{Title: msgTitle, Message: msgNotFound})
			return
		default:
			// Без названия автомобиля подтверждение все равно возможно
			h.logger.Warn("GET /cars/{id}/delete - Failed to load car name: id=%s, error=%v", id, err)
		}
	}

	h.logger.Info("GET /cars/{id}/delete - Showing confirmation: id=%s", id)
	handlers.RenderPage(w, h.renderer, h.logger, http.StatusOK, views.PageConfirmDelete, page)
}

// Handle POST /cars/{id}/delete - удаление только с confirm=yes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if r.PostFormValue(confirmField) != confirmValue {
		h.logger.Warn("POST /cars/{id}/delete - Missing confirmation: id=%s", id)
		handlers.Redirect(w, r, "/cars/"+url.PathEscape(id)+"/delete")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		page := views.MessagePage{Title: msgTitle}
		status := http.StatusBadGateway

		switch {
		case errors.Is(err, cars.ErrCarNotFound), errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("POST /cars/{id}/delete - Car not found: id=%s", id)
			page.Message = msgNotFound
			status = http.StatusNotFound

		default:
			h.logger.Error("POST /cars/{id}/delete - Failed to delete car: id=%s, error=%v", id, err)
			page.Message = msgDeleteFailed
		}

		handlers.RenderPage(w, h.renderer, h.logger, status, views.PageMessage, page)
		return
	}

	h.logger.Info("POST /cars/{id}/delete - Car deleted successfully: id=%s", id)
	handlers.Redirect(w, r, handlers.WithNotice("/cars", handlers.NoticeDeleted))
}
