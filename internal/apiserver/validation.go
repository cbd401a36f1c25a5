package apiserver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/integrations/carsapi"
)

var validate = validator.New()

// toDomain валидирует запрос и собирает доменную модель.
// Ошибки возвращаются по полям, имена полей как в C#-моделях (Brand, FuelType, ...).
func toDomain(req *CarRequest) (*domain.Car, map[string][]string) {
	fields := make(map[string][]string)
	add := func(field, msg string) {
		fields[field] = append(fields[field], msg)
	}

	req.Brand = strings.TrimSpace(req.Brand)
	req.Model = strings.TrimSpace(req.Model)

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				add(fe.Field(), ruleMessage(fe))
			}
		} else {
			add("$", err.Error())
		}
	}

	if !domain.FuelType(req.FuelType).IsValid() {
		add("FuelType", fmt.Sprintf("The value '%d' is not valid for FuelType.", req.FuelType))
	}
	if !domain.BodyType(req.BodyType).IsValid() {
		add("BodyType", fmt.Sprintf("The value '%d' is not valid for BodyType.", req.BodyType))
	}

	date, err := carsapi.ParseDate(req.ProductionDate)
	if err != nil {
		add("ProductionDate", "The ProductionDate field must be a date in YYYY-MM-DD format.")
	}

	if len(fields) > 0 {
		return nil, fields
	}

	return &domain.Car{
		ID:                 req.ID,
		Brand:              req.Brand,
		Model:              req.Model,
		DoorsNumber:        req.DoorsNumber,
		LuggageCapacity:    req.LuggageCapacity,
		EngineCapacity:     req.EngineCapacity,
		FuelType:           domain.FuelType(req.FuelType),
		BodyType:           domain.BodyType(req.BodyType),
		ProductionDate:     date,
		CarFuelConsumption: req.CarFuelConsumption,
	}, nil
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "max":
		return fmt.Sprintf("The field %s must be a string with a maximum length of %s.", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("The field %s must be greater than or equal to %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("The field %s is invalid.", fe.Field())
	}
}
