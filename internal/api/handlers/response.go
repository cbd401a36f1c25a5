package handlers

import (
	"encoding/json"
	"net/http"
)

const msgInternalError = "Wystąpił nieoczekiwany błąd serwera lub sieci."

// Renderer интерфейс рендеринга HTML страниц
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RenderPage рендерит страницу. Если шаблон не отработал, отдает 500 текстом.
func RenderPage(w http.ResponseWriter, renderer Renderer, logger Logger, status int, page string, data interface{}) {
	if err := renderer.Render(w, status, page, data); err != nil {
		logger.Error("Failed to render page %s: %v", page, err)
		http.Error(w, msgInternalError, http.StatusInternalServerError)
	}
}

// Redirect перенаправляет после POST (303) или на другую страницу
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// ErrorResponse тело JSON ошибки
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// RespondError отправляет JSON ошибку
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Status: status, Message: message})
}

// RespondNotFound отправляет 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError отправляет 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

// DecodeJSON декодирует JSON тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
