package list_cars

import (
	"context"

	"github.com/m04kA/SMC-CarManager/internal/service/cars/models"
)

type CarService interface {
	List(ctx context.Context) ([]models.CarListItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
