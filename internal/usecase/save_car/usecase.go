package save_car

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/integrations/carsapi"
)

// UseCase use case для создания и редактирования автомобиля
type UseCase struct {
	client CarsAPIClient
	codec  Codec
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client CarsAPIClient, codec Codec, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		codec:  codec,
		logger: logger,
	}
}

// Execute валидирует форму, переводит подписи в коды и отправляет запрос в API.
// Если подпись типа топлива или кузова не найдена, запрос в API не отправляется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	mode := "update"
	if req.IsCreate() {
		mode = "create"
	}
	uc.logger.Info("SaveCar: mode=%s, id=%s, brand=%s, model=%s", mode, req.ID, req.Form.Brand, req.Form.Model)

	// 1. Разбор и валидация полей формы
	in, err := parseForm(req.Form)
	if err != nil {
		uc.logger.Warn("SaveCar: validation failed: %v", err)
		return nil, err
	}

	// 2. Подписи -> коды. Отсутствие подписи отличается от кода 0.
	fuelCode, ok := uc.codec.Encode(req.Form.FuelType, domain.KindFuelType)
	if !ok {
		uc.logger.Warn("SaveCar: unknown fuel type label=%q", req.Form.FuelType)
		return nil, fmt.Errorf("%w: %q", ErrUnknownFuelType, req.Form.FuelType)
	}
	bodyCode, ok := uc.codec.Encode(req.Form.BodyType, domain.KindBodyType)
	if !ok {
		uc.logger.Warn("SaveCar: unknown body type label=%q", req.Form.BodyType)
		return nil, fmt.Errorf("%w: %q", ErrUnknownBodyType, req.Form.BodyType)
	}

	car := carsapi.FromDomain(&domain.Car{
		Brand:              in.Brand,
		Model:              in.Model,
		DoorsNumber:        in.DoorsNumber,
		LuggageCapacity:    in.LuggageCapacity,
		EngineCapacity:     in.EngineCapacity,
		FuelType:           domain.FuelType(fuelCode),
		BodyType:           domain.BodyType(bodyCode),
		ProductionDate:     in.ProductionDate,
		CarFuelConsumption: in.CarFuelConsumption,
	})

	// 3. Отправка в API
	if req.IsCreate() {
		created, err := uc.client.Create(ctx, car)
		if err != nil {
			return nil, uc.translateError("create", req.ID, err)
		}
		uc.logger.Info("SaveCar: car created id=%s", created.ID)
		return &Response{ID: created.ID, Created: true}, nil
	}

	if err := uc.client.Update(ctx, req.ID, car); err != nil {
		return nil, uc.translateError("update", req.ID, err)
	}
	uc.logger.Info("SaveCar: car updated id=%s", req.ID)
	return &Response{ID: req.ID}, nil
}

func (uc *UseCase) translateError(mode, id string, err error) error {
	var verr *carsapi.ValidationError
	switch {
	case errors.As(err, &verr):
		uc.logger.Warn("SaveCar: %s rejected by api, id=%s: %s", mode, id, verr.Message())
		return &ValidationError{Messages: verr.Messages(), Remote: true}
	case errors.Is(err, carsapi.ErrCarNotFound):
		uc.logger.Warn("SaveCar: car id=%s not found", id)
		return ErrCarNotFound
	default:
		uc.logger.Error("SaveCar: %s failed, id=%s: %v", mode, id, err)
		return fmt.Errorf("%w: %s - cars api error: %v", ErrInternal, mode, err)
	}
}
