package cars

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/integrations/carsapi"
	"github.com/m04kA/SMC-CarManager/internal/service/cars/models"
)

// Service сервис чтения и удаления автомобилей
type Service struct {
	client CarsAPIClient
	codec  Codec
	clock  Clock
	logger Logger
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewService создает новый экземпляр сервиса автомобилей
func NewService(client CarsAPIClient, codec Codec, logger Logger) *Service {
	return &Service{
		client: client,
		codec:  codec,
		clock:  realClock{},
		logger: logger,
	}
}

// WithClock подменяет источник времени
func (s *Service) WithClock(clock Clock) *Service {
	s.clock = clock
	return s
}

// List получает список автомобилей с подписями вместо кодов
func (s *Service) List(ctx context.Context) ([]models.CarListItem, error) {
	s.logger.Info("List: fetching cars")

	apiCars, err := s.client.List(ctx)
	if err != nil {
		s.logger.Error("List: cars api error: %v", err)
		return nil, fmt.Errorf("%w: List - cars api error: %v", ErrInternal, err)
	}

	items := make([]models.CarListItem, 0, len(apiCars))
	for _, apiCar := range apiCars {
		car, err := carsapi.ToDomain(apiCar)
		if err != nil {
			// Некорректная дата не повод скрывать запись
			s.logger.Warn("List: car id=%s has invalid data: %v", apiCar.ID, err)
		}
		items = append(items, models.FromDomainListItem(car, s.codec))
	}

	s.logger.Info("List: successfully fetched %d cars", len(items))
	return items, nil
}

// Get получает карточку автомобиля по ID
func (s *Service) Get(ctx context.Context, id string) (*models.CarDetails, error) {
	car, err := s.fetch(ctx, "Get", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDetails(car, s.codec), nil
}

// GetForm получает автомобиль в виде значений формы редактирования
func (s *Service) GetForm(ctx context.Context, id string) (*models.CarForm, error) {
	car, err := s.fetch(ctx, "GetForm", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainForm(car, s.codec), nil
}

// NewForm значения формы для нового автомобиля
func (s *Service) NewForm() *models.CarForm {
	return &models.CarForm{
		DoorsNumber:        strconv.Itoa(domain.DefaultDoorsNumber),
		LuggageCapacity:    strconv.Itoa(domain.DefaultLuggageCapacity),
		EngineCapacity:     strconv.Itoa(domain.DefaultEngineCapacity),
		FuelType:           s.codec.Decode(int(domain.DefaultFuelType), domain.KindFuelType),
		BodyType:           s.codec.Decode(int(domain.DefaultBodyType), domain.KindBodyType),
		ProductionDate:     s.clock.Now().Format(domain.DateFormat),
		CarFuelConsumption: strconv.FormatFloat(domain.DefaultCarFuelConsumption, 'f', 1, 64),
	}
}

// Delete удаляет автомобиль
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: empty car id", ErrInvalidInput)
	}

	s.logger.Info("Delete: deleting car id=%s", id)

	if err := s.client.Delete(ctx, id); err != nil {
		if errors.Is(err, carsapi.ErrCarNotFound) {
			s.logger.Warn("Delete: car id=%s not found", id)
			return ErrCarNotFound
		}
		s.logger.Error("Delete: cars api error for car id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - cars api error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted car id=%s", id)
	return nil
}

func (s *Service) fetch(ctx context.Context, op, id string) (*domain.Car, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty car id", ErrInvalidInput)
	}

	s.logger.Info("%s: fetching car id=%s", op, id)

	apiCar, err := s.client.Get(ctx, id)
	if err != nil {
		if errors.Is(err, carsapi.ErrCarNotFound) {
			s.logger.Warn("%s: car id=%s not found", op, id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("%s: cars api error for car id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - cars api error: %v", ErrInternal, op, err)
	}

	car, err := carsapi.ToDomain(*apiCar)
	if err != nil {
		s.logger.Warn("%s: car id=%s has invalid data: %v", op, id, err)
	}

	return car, nil
}
