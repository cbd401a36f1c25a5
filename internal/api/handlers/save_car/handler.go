package save_car

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarManager/internal/api/handlers"
	"github.com/m04kA/SMC-CarManager/internal/api/handlers/edit_car"
	"github.com/m04kA/SMC-CarManager/internal/api/views"
	saveCar "github.com/m04kA/SMC-CarManager/internal/usecase/save_car"
)

const (
	msgInvalidRequestBody = "Niepoprawne dane formularza."
	msgUnmappedLabel      = "Błąd: Nie udało się zmapować nazwy typu paliwa/nadwozia na indeks liczbowy."
	msgCarNotFound        = "Nie znaleziono auta."
	msgUnexpected         = "Wystąpił nieoczekiwany błąd serwera lub sieci."
	msgValidationPrefix   = "Błąd: "
)

type Handler struct {
	useCase  SaveCarUseCase
	options  Options
	renderer handlers.Renderer
	logger   Logger
}

func NewHandler(useCase SaveCarUseCase, options Options, renderer handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		options:  options,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle POST /edit/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /edit/{id} - Invalid form body: id=%s, error=%v", id, err)
		http.Error(w, msgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	form := FormFromRequest(r, id)
	req := &saveCar.Request{ID: id, Form: form}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		var verr *saveCar.ValidationError
		var status int
		var msg string

		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /edit/{id} - Validation failed: id=%s, remote=%t, messages=%s", id, verr.Remote, verr.Message())
			status, msg = http.StatusBadRequest, msgValidationPrefix+verr.Message()

		case errors.Is(err, saveCar.ErrUnknownFuelType), errors.Is(err, saveCar.ErrUnknownBodyType):
			h.logger.Warn("POST /edit/{id} - Unmapped label: id=%s, error=%v", id, err)
			status, msg = http.StatusUnprocessableEntity, msgUnmappedLabel

		case errors.Is(err, saveCar.ErrCarNotFound):
			h.logger.Warn("POST /edit/{id} - Car not found: id=%s", id)
			status, msg = http.StatusNotFound, msgCarNotFound

		default:
			h.logger.Error("POST /edit/{id} - Failed to save car: id=%s, error=%v", id, err)
			status, msg = http.StatusBadGateway, msgUnexpected
		}

		handlers.RenderPage(w, h.renderer, h.logger, status, views.PageForm,
			edit_car.NewFormPage(id, &form, h.options, msg))
		return
	}

	notice := handlers.NoticeUpdated
	if result.Created {
		notice = handlers.NoticeCreated
	}

	h.logger.Info("POST /edit/{id} - Car saved successfully: id=%s, created=%t", result.ID, result.Created)
	handlers.Redirect(w, r, handlers.WithNotice("/cars/"+url.PathEscape(result.ID), notice))
}
