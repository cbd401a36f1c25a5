package carsapi

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarManager/internal/domain"
)

// ToDomain конвертирует модель API в доменную.
// Время в productionDate отбрасывается; пустая дата дает нулевое значение.
func ToDomain(c Car) (*domain.Car, error) {
	car := &domain.Car{
		ID:                 c.ID,
		Brand:              c.Brand,
		Model:              c.Model,
		DoorsNumber:        c.DoorsNumber,
		LuggageCapacity:    c.LuggageCapacity,
		EngineCapacity:     c.EngineCapacity,
		FuelType:           domain.FuelType(c.FuelType),
		BodyType:           domain.BodyType(c.BodyType),
		CarFuelConsumption: c.CarFuelConsumption,
	}

	date, err := ParseDate(c.ProductionDate)
	if err != nil {
		return car, err
	}
	car.ProductionDate = date

	return car, nil
}

// FromDomain конвертирует доменную модель в модель API
func FromDomain(car *domain.Car) Car {
	c := Car{
		ID:                 car.ID,
		Brand:              car.Brand,
		Model:              car.Model,
		DoorsNumber:        car.DoorsNumber,
		LuggageCapacity:    car.LuggageCapacity,
		EngineCapacity:     car.EngineCapacity,
		FuelType:           int(car.FuelType),
		BodyType:           int(car.BodyType),
		CarFuelConsumption: car.CarFuelConsumption,
	}
	if !car.ProductionDate.IsZero() {
		c.ProductionDate = car.ProductionDate.Format(domain.DateFormat)
	}
	return c
}

// ParseDate разбирает дату API, беря только часть YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if len(value) > len(domain.DateFormat) {
		value = value[:len(domain.DateFormat)]
	}
	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid productionDate %q: %v", ErrInvalidResponse, value, err)
	}
	return date, nil
}
