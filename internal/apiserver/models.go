package apiserver

import (
	"net/http"

	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/integrations/carsapi"
)

const validationTitle = "One or more validation errors occurred."

// CarRequest тело POST и PUT запросов
type CarRequest struct {
	ID                 string  `json:"id,omitempty"`
	Brand              string  `json:"brand" validate:"required,max=100"`
	Model              string  `json:"model" validate:"required,max=100"`
	DoorsNumber        int     `json:"doorsNumber" validate:"min=1"`
	LuggageCapacity    int     `json:"luggageCapacity" validate:"min=0"`
	EngineCapacity     int     `json:"engineCapacity" validate:"min=1"`
	FuelType           int     `json:"fuelType"`
	ProductionDate     string  `json:"productionDate" validate:"required"`
	CarFuelConsumption float64 `json:"carFuelConsumption" validate:"min=0"`
	BodyType           int     `json:"bodyType"`
}

// ToResponse модель ответа в формате Cars API
func ToResponse(car *domain.Car) carsapi.Car {
	return carsapi.FromDomain(car)
}

// NewValidationProblem тело ответа 400
func NewValidationProblem(fields map[string][]string) carsapi.ValidationProblem {
	return carsapi.ValidationProblem{
		Title:  validationTitle,
		Status: http.StatusBadRequest,
		Errors: fields,
	}
}
