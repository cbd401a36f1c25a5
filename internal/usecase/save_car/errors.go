package save_car

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных значениях формы или ответе 400 от API
	ErrInvalidInput = errors.New("save_car: invalid input data")

	// ErrUnknownFuelType возвращается, когда подпись типа топлива не найдена в кодеке
	ErrUnknownFuelType = errors.New("save_car: unknown fuel type label")

	// ErrUnknownBodyType возвращается, когда подпись типа кузова не найдена в кодеке
	ErrUnknownBodyType = errors.New("save_car: unknown body type label")

	// ErrCarNotFound возвращается, когда обновляемый автомобиль не найден
	ErrCarNotFound = errors.New("save_car: car not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_car: internal error")
)

// ValidationError ошибки полей формы или сообщения валидации от API
type ValidationError struct {
	Messages []string
	Remote   bool // true, если сообщения пришли от API
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.Message()
}

// Message сообщения через "; "
func (e *ValidationError) Message() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
