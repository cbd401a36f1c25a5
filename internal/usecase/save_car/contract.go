package save_car

import (
	"context"

	"github.com/m04kA/SMC-CarManager/internal/enumcodec"
	"github.com/m04kA/SMC-CarManager/internal/integrations/carsapi"
)

// CarsAPIClient интерфейс клиента Cars API
type CarsAPIClient interface {
	Create(ctx context.Context, car carsapi.Car) (*carsapi.Car, error)
	Update(ctx context.Context, id string, car carsapi.Car) error
}

// Codec интерфейс кодека перечислений
type Codec interface {
	Encode(label string, kind enumcodec.Kind) (int, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
