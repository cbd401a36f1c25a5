package delete_car

import (
	"context"

	"github.com/m04kA/SMC-CarManager/internal/service/cars/models"
)

type CarService interface {
	Get(ctx context.Context, id string) (*models.CarDetails, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
