package save_car

import (
	"context"

	"github.com/m04kA/SMC-CarManager/internal/api/handlers/edit_car"
	saveCar "github.com/m04kA/SMC-CarManager/internal/usecase/save_car"
)

type SaveCarUseCase interface {
	Execute(ctx context.Context, req *saveCar.Request) (*saveCar.Response, error)
}

type Options = edit_car.Options

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
