package views

import "github.com/m04kA/SMC-CarManager/internal/service/cars/models"

// Page общие поля всех страниц
type Page struct {
	Notice string // Сообщение об успешной операции после редиректа
}

// ListPage список автомобилей
type ListPage struct {
	Page
	Cars  []models.CarListItem
	Error string
}

// DetailsPage карточка автомобиля
type DetailsPage struct {
	Page
	Car *models.CarDetails
}

// FormPage форма создания или редактирования
type FormPage struct {
	Page
	Form        *models.CarForm
	IsEdit      bool
	Action      string
	CancelURL   string
	FuelOptions []string
	BodyOptions []string
	Error       string
}

// FuelListed true, если текущее значение топлива есть среди вариантов
func (p FormPage) FuelListed() bool {
	return p.Form != nil && contains(p.FuelOptions, p.Form.FuelType)
}

// BodyListed true, если текущее значение кузова есть среди вариантов
func (p FormPage) BodyListed() bool {
	return p.Form != nil && contains(p.BodyOptions, p.Form.BodyType)
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

// ConfirmDeletePage подтверждение удаления
type ConfirmDeletePage struct {
	Page
	ID        string
	Question  string
	CancelURL string
}

// MessagePage страница с ошибкой и ссылкой на список
type MessagePage struct {
	Page
	Title   string
	Message string
}

// NotFoundPage страница 404
type NotFoundPage struct {
	Page
}
