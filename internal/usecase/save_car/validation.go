package save_car

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/service/cars/models"
)

var validate = validator.New()

// carInput разобранные значения формы
type carInput struct {
	Brand              string  `validate:"required,max=100"`
	Model              string  `validate:"required,max=100"`
	DoorsNumber        int     `validate:"min=1"`
	LuggageCapacity    int     `validate:"min=0"`
	EngineCapacity     int     `validate:"min=1"`
	CarFuelConsumption float64 `validate:"min=0"`
	ProductionDate     time.Time
}

// Подписи полей в сообщениях
var fieldLabels = map[string]string{
	"Brand":              "Marka",
	"Model":              "Model",
	"DoorsNumber":        "Liczba drzwi",
	"LuggageCapacity":    "Pojemność bagażnika",
	"EngineCapacity":     "Pojemność silnika",
	"CarFuelConsumption": "Spalanie",
	"ProductionDate":     "Data produkcji",
}

// parseForm разбирает и валидирует значения формы.
// Возвращает *ValidationError со всеми ошибками полей сразу.
func parseForm(form models.CarForm) (*carInput, error) {
	var messages []string
	failed := make(map[string]bool)
	fail := func(field, msg string) {
		failed[field] = true
		messages = append(messages, fieldLabels[field]+": "+msg)
	}

	in := &carInput{
		Brand: strings.TrimSpace(form.Brand),
		Model: strings.TrimSpace(form.Model),
	}

	var err error
	if in.DoorsNumber, err = parseInt(form.DoorsNumber); err != nil {
		fail("DoorsNumber", "wymagana liczba całkowita")
	}
	if in.LuggageCapacity, err = parseInt(form.LuggageCapacity); err != nil {
		fail("LuggageCapacity", "wymagana liczba całkowita")
	}
	if in.EngineCapacity, err = parseInt(form.EngineCapacity); err != nil {
		fail("EngineCapacity", "wymagana liczba całkowita")
	}
	if in.CarFuelConsumption, err = parseFloat(form.CarFuelConsumption); err != nil {
		fail("CarFuelConsumption", "wymagana liczba")
	}
	if in.ProductionDate, err = time.Parse(domain.DateFormat, strings.TrimSpace(form.ProductionDate)); err != nil {
		fail("ProductionDate", "wymagana data w formacie RRRR-MM-DD")
	}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			// Поле, которое не удалось разобрать, уже имеет сообщение
			if failed[fe.Field()] {
				continue
			}
			fail(fe.Field(), ruleMessage(fe))
		}
	}

	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}
	return in, nil
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "pole jest wymagane"
	case "max":
		return "maksymalnie " + fe.Param() + " znaków"
	case "min":
		return "minimalna wartość to " + fe.Param()
	default:
		return "niepoprawna wartość"
	}
}

func parseInt(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

// parseFloat принимает и точку, и запятую как десятичный разделитель
func parseFloat(value string) (float64, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}
