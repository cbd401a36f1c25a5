package carsapi

// Car модель автомобиля в формате Cars API
type Car struct {
	ID                 string  `json:"id,omitempty"`
	Brand              string  `json:"brand"`
	Model              string  `json:"model"`
	DoorsNumber        int     `json:"doorsNumber"`
	LuggageCapacity    int     `json:"luggageCapacity"`
	EngineCapacity     int     `json:"engineCapacity"`
	FuelType           int     `json:"fuelType"`
	ProductionDate     string  `json:"productionDate"` // "2020-05-01" или "2020-05-01T00:00:00"
	CarFuelConsumption float64 `json:"carFuelConsumption"`
	BodyType           int     `json:"bodyType"`
}

// ValidationProblem тело ответа 400
type ValidationProblem struct {
	Title  string              `json:"title,omitempty"`
	Status int                 `json:"status,omitempty"`
	Errors map[string][]string `json:"errors"`
}
