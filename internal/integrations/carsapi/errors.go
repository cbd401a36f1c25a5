package carsapi

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrCarNotFound возвращается, когда автомобиль с указанным ID не найден
	ErrCarNotFound = errors.New("carsapi client: car not found")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сборка запроса)
	ErrInternal = errors.New("carsapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("carsapi client: invalid response")
)

// ValidationError ответ 400 с сообщениями по полям
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "carsapi client: validation failed: " + e.Message()
}

// Message все сообщения всех полей через "; "
func (e *ValidationError) Message() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages непустые сообщения всех полей.
// Поля идут в лексикографическом порядке, сообщения поля - в порядке сервера.
func (e *ValidationError) Messages() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, msg := range e.Fields[k] {
			if msg = strings.TrimSpace(msg); msg != "" {
				messages = append(messages, msg)
			}
		}
	}
	return messages
}
