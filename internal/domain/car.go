package domain

import "time"

// Car автомобиль в том виде, в котором он хранится в Cars API
type Car struct {
	ID                 string // Назначается сервером, пустой при создании
	Brand              string
	Model              string
	DoorsNumber        int
	LuggageCapacity    int // литры
	EngineCapacity     int // куб. см
	FuelType           FuelType
	BodyType           BodyType
	ProductionDate     time.Time // Только дата, без времени
	CarFuelConsumption float64   // л/100км
}

// IsNew возвращает true, если автомобиль еще не сохранен на сервере
func (c *Car) IsNew() bool {
	return c.ID == ""
}

// DisplayName марка и модель через пробел
func (c *Car) DisplayName() string {
	if c.Model == "" {
		return c.Brand
	}
	return c.Brand + " " + c.Model
}
