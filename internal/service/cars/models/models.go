package models

import (
	"strconv"

	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/enumcodec"
)

// Codec интерфейс кодека перечислений (см. enumcodec.Codec)
type Codec interface {
	Decode(code int, kind enumcodec.Kind) string
}

// CarListItem строка списка автомобилей
type CarListItem struct {
	ID             string
	Brand          string
	Model          string
	BodyType       string
	FuelType       string
	ProductionDate string // "01.05.2020"
}

// CarDetails карточка автомобиля
type CarDetails struct {
	ID                 string
	Brand              string
	Model              string
	DoorsNumber        int
	LuggageCapacity    int
	EngineCapacity     int
	FuelType           string
	BodyType           string
	ProductionDate     string // "01.05.2020"
	CarFuelConsumption float64
}

// DisplayName марка и модель
func (d *CarDetails) DisplayName() string {
	return (&domain.Car{Brand: d.Brand, Model: d.Model}).DisplayName()
}

// CarForm значения полей формы в том виде, в котором их ввел пользователь.
// FuelType и BodyType - подписи, а не коды.
type CarForm struct {
	ID                 string
	Brand              string
	Model              string
	DoorsNumber        string
	LuggageCapacity    string
	EngineCapacity     string
	FuelType           string
	BodyType           string
	ProductionDate     string // "2020-05-01"
	CarFuelConsumption string
}

// FromDomainListItem конвертирует доменную модель в строку списка
func FromDomainListItem(car *domain.Car, codec Codec) CarListItem {
	return CarListItem{
		ID:             car.ID,
		Brand:          car.Brand,
		Model:          car.Model,
		BodyType:       codec.Decode(int(car.BodyType), domain.KindBodyType),
		FuelType:       codec.Decode(int(car.FuelType), domain.KindFuelType),
		ProductionDate: formatDisplayDate(car),
	}
}

// FromDomainDetails конвертирует доменную модель в карточку
func FromDomainDetails(car *domain.Car, codec Codec) *CarDetails {
	return &CarDetails{
		ID:                 car.ID,
		Brand:              car.Brand,
		Model:              car.Model,
		DoorsNumber:        car.DoorsNumber,
		LuggageCapacity:    car.LuggageCapacity,
		EngineCapacity:     car.EngineCapacity,
		FuelType:           codec.Decode(int(car.FuelType), domain.KindFuelType),
		BodyType:           codec.Decode(int(car.BodyType), domain.KindBodyType),
		ProductionDate:     formatDisplayDate(car),
		CarFuelConsumption: car.CarFuelConsumption,
	}
}

// FromDomainForm конвертирует доменную модель в значения формы.
// Незарегистрированный код попадает в форму как подпись по умолчанию: ее нет среди
// вариантов выбора, поэтому форма показывает пустой выбор и не отправляется без явного выбора.
func FromDomainForm(car *domain.Car, codec Codec) *CarForm {
	form := &CarForm{
		ID:                 car.ID,
		Brand:              car.Brand,
		Model:              car.Model,
		DoorsNumber:        strconv.Itoa(car.DoorsNumber),
		LuggageCapacity:    strconv.Itoa(car.LuggageCapacity),
		EngineCapacity:     strconv.Itoa(car.EngineCapacity),
		FuelType:           codec.Decode(int(car.FuelType), domain.KindFuelType),
		BodyType:           codec.Decode(int(car.BodyType), domain.KindBodyType),
		CarFuelConsumption: strconv.FormatFloat(car.CarFuelConsumption, 'f', -1, 64),
	}
	if !car.ProductionDate.IsZero() {
		form.ProductionDate = car.ProductionDate.Format(domain.DateFormat)
	}
	return form
}

func formatDisplayDate(car *domain.Car) string {
	if car.ProductionDate.IsZero() {
		return ""
	}
	return car.ProductionDate.Format(domain.DisplayDateFormat)
}
