package save_car

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/integrations/carsapi"
	"github.com/m04kA/SMC-CarManager/internal/service/cars/models"
	"github.com/m04kA/SMC-CarManager/pkg/logger"
)

type fakeClient struct {
	createCalls int
	updateCalls int
	lastCar     carsapi.Car
	lastID      string
	err         error
}

func (f *fakeClient) Create(ctx context.Context, car carsapi.Car) (*carsapi.Car, error) {
	f.createCalls++
	f.lastCar = car
	if f.err != nil {
		return nil, f.err
	}
	car.ID = "generated-id"
	return &car, nil
}

func (f *fakeClient) Update(ctx context.Context, id string, car carsapi.Car) error {
	f.updateCalls++
	f.lastID = id
	f.lastCar = car
	return f.err
}

func (f *fakeClient) calls() int {
	return f.createCalls + f.updateCalls
}

func validForm() models.CarForm {
	return models.CarForm{
		Brand:              "Toyota",
		Model:              "Corolla",
		DoorsNumber:        "5",
		LuggageCapacity:    "470",
		EngineCapacity:     "1798",
		FuelType:           "Benzyna",
		BodyType:           "Hatchback",
		ProductionDate:     "2020-05-01",
		CarFuelConsumption: "4,5",
	}
}

func newUseCase(client *fakeClient) *UseCase {
	return NewUseCase(client, domain.Codec, logger.NewNop())
}

func TestExecute_CreateEncodesLabels(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(client)

	resp, err := uc.Execute(context.Background(), &Request{ID: domain.NewCarID, Form: validForm()})
	require.NoError(t, err)

	assert.True(t, resp.Created)
	assert.Equal(t, "generated-id", resp.ID)
	assert.Equal(t, 1, client.createCalls)
	assert.Equal(t, int(domain.FuelPetrol), client.lastCar.FuelType)
	// Hatchback имеет код 0 и должен быть отправлен как допустимое значение
	assert.Equal(t, int(domain.BodyHatchback), client.lastCar.BodyType)
	assert.Equal(t, "2020-05-01", client.lastCar.ProductionDate)
	assert.Equal(t, 4.5, client.lastCar.CarFuelConsumption)
	assert.Empty(t, client.lastCar.ID)
}

func TestExecute_Update(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(client)

	form := validForm()
	form.BodyType = "Kombi"
	resp, err := uc.Execute(context.Background(), &Request{ID: "abc", Form: form})
	require.NoError(t, err)

	assert.False(t, resp.Created)
	assert.Equal(t, "abc", resp.ID)
	assert.Equal(t, "abc", client.lastID)
	assert.Equal(t, 1, client.updateCalls)
	assert.Equal(t, int(domain.BodyEstate), client.lastCar.BodyType)
}

func TestExecute_UnknownLabelsMakeNoNetworkCall(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CarForm)
		wantErr error
	}{
		{"unknown fuel", func(f *models.CarForm) { f.FuelType = "Węgiel" }, ErrUnknownFuelType},
		{"unknown body", func(f *models.CarForm) { f.BodyType = "NotARealLabel" }, ErrUnknownBodyType},
		{"fallback label", func(f *models.CarForm) { f.FuelType = "Unknown" }, ErrUnknownFuelType},
		{"empty body", func(f *models.CarForm) { f.BodyType = "" }, ErrUnknownBodyType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, id := range []string{domain.NewCarID, "existing"} {
				client := &fakeClient{}
				form := validForm()
				tt.mutate(&form)

				_, err := newUseCase(client).Execute(context.Background(), &Request{ID: id, Form: form})
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, client.calls(), "no request may be sent for id=%s", id)
			}
		})
	}
}

func TestExecute_FormValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.CarForm)
		contains string
	}{
		{"empty brand", func(f *models.CarForm) { f.Brand = "  " }, "Marka: pole jest wymagane"},
		{"empty model", func(f *models.CarForm) { f.Model = "" }, "Model: pole jest wymagane"},
		{"zero doors", func(f *models.CarForm) { f.DoorsNumber = "0" }, "Liczba drzwi: minimalna wartość to 1"},
		{"non numeric doors", func(f *models.CarForm) { f.DoorsNumber = "five" }, "Liczba drzwi: wymagana liczba całkowita"},
		{"negative luggage", func(f *models.CarForm) { f.LuggageCapacity = "-1" }, "Pojemność bagażnika: minimalna wartość to 0"},
		{"zero engine", func(f *models.CarForm) { f.EngineCapacity = "0" }, "Pojemność silnika: minimalna wartość to 1"},
		{"nan consumption", func(f *models.CarForm) { f.CarFuelConsumption = "NaN" }, "Spalanie: wymagana liczba"},
		{"bad date", func(f *models.CarForm) { f.ProductionDate = "01.05.2020" }, "Data produkcji"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			form := validForm()
			tt.mutate(&form)

			_, err := newUseCase(client).Execute(context.Background(), &Request{Form: form})

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.False(t, verr.Remote)
			assert.Contains(t, verr.Message(), tt.contains)
			assert.Len(t, verr.Messages, 1)
			assert.Zero(t, client.calls())
		})
	}
}

func TestExecute_RemoteValidationError(t *testing.T) {
	client := &fakeClient{err: &carsapi.ValidationError{Fields: map[string][]string{
		"Model": {"Model jest za krótki."},
		"Brand": {"Marka jest zakazana."},
	}}}

	_, err := newUseCase(client).Execute(context.Background(), &Request{Form: validForm()})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Remote)
	assert.Equal(t, "Marka jest zakazana.; Model jest za krótki.", verr.Message())
}

func TestExecute_UpdateNotFound(t *testing.T) {
	client := &fakeClient{err: carsapi.ErrCarNotFound}

	_, err := newUseCase(client).Execute(context.Background(), &Request{ID: "gone", Form: validForm()})
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestExecute_APIFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("connection reset")}

	_, err := newUseCase(client).Execute(context.Background(), &Request{Form: validForm()})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestRequest_IsCreate(t *testing.T) {
	assert.True(t, (&Request{}).IsCreate())
	assert.True(t, (&Request{ID: "new"}).IsCreate())
	assert.False(t, (&Request{ID: "42"}).IsCreate())
}
