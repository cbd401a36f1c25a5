package save_car

import (
	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/service/cars/models"
)

// Request запрос на сохранение автомобиля.
// Пустой ID или domain.NewCarID означает создание.
type Request struct {
	ID   string
	Form models.CarForm
}

// IsCreate true для создания нового автомобиля
func (r *Request) IsCreate() bool {
	return r.ID == "" || r.ID == domain.NewCarID
}

// Response результат сохранения
type Response struct {
	ID      string
	Created bool
}
