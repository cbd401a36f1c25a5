package edit_car

import (
	"context"

	"github.com/m04kA/SMC-CarManager/internal/enumcodec"
	"github.com/m04kA/SMC-CarManager/internal/service/cars/models"
)

type CarService interface {
	GetForm(ctx context.Context, id string) (*models.CarForm, error)
	NewForm() *models.CarForm
}

// Options источник вариантов для выпадающих списков
type Options interface {
	Options(kind enumcodec.Kind) []enumcodec.Entry
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
