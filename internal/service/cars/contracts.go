package cars

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarManager/internal/integrations/carsapi"
	"github.com/m04kA/SMC-CarManager/internal/service/cars/models"
)

// CarsAPIClient интерфейс клиента Cars API
type CarsAPIClient interface {
	List(ctx context.Context) ([]carsapi.Car, error)
	Get(ctx context.Context, id string) (*carsapi.Car, error)
	Delete(ctx context.Context, id string) error
}

// Codec интерфейс кодека перечислений
type Codec = models.Codec

// Clock источник текущего времени (дата по умолчанию в новой форме)
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
