package apiserver

import (
	"context"

	"github.com/m04kA/SMC-CarManager/internal/domain"
)

// CarRepository хранилище автомобилей
type CarRepository interface {
	List(ctx context.Context) ([]*domain.Car, error)
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
