package save_car

import (
	"net/http"

	"github.com/m04kA/SMC-CarManager/internal/service/cars/models"
)

// Имена полей HTML формы
const (
	fieldBrand              = "brand"
	fieldModel              = "model"
	fieldDoorsNumber        = "doorsNumber"
	fieldLuggageCapacity    = "luggageCapacity"
	fieldEngineCapacity     = "engineCapacity"
	fieldFuelType           = "fuelType"
	fieldBodyType           = "bodyType"
	fieldProductionDate     = "productionDate"
	fieldCarFuelConsumption = "carFuelConsumption"
)

// FormFromRequest читает значения формы из разобранного тела запроса
func FormFromRequest(r *http.Request, id string) models.CarForm {
	return models.CarForm{
		ID:                 id,
		Brand:              r.PostFormValue(fieldBrand),
		Model:              r.PostFormValue(fieldModel),
		DoorsNumber:        r.PostFormValue(fieldDoorsNumber),
		LuggageCapacity:    r.PostFormValue(fieldLuggageCapacity),
		EngineCapacity:     r.PostFormValue(fieldEngineCapacity),
		FuelType:           r.PostFormValue(fieldFuelType),
		BodyType:           r.PostFormValue(fieldBodyType),
		ProductionDate:     r.PostFormValue(fieldProductionDate),
		CarFuelConsumption: r.PostFormValue(fieldCarFuelConsumption),
	}
}
