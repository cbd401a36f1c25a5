package edit_car

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarManager/internal/api/views"
	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/service/cars"
	"github.com/m04kA/SMC-CarManager/internal/service/cars/models"
	"github.com/m04kA/SMC-CarManager/pkg/logger"
)

type fakeService struct {
	form      *models.CarForm
	err       error
	getCalled bool
}

func (f *fakeService) GetForm(_ context.Context, _ string) (*models.CarForm, error) {
	f.getCalled = true
	return f.form, f.err
}

func (f *fakeService) NewForm() *models.CarForm {
	return &models.CarForm{
		DoorsNumber:        "2",
		LuggageCapacity:    "100",
		EngineCapacity:     "1000",
		FuelType:           "Benzyna",
		BodyType:           "Hatchback",
		ProductionDate:     "2026-10-14",
		CarFuelConsumption: "5.0",
	}
}

func serve(t *testing.T, svc CarService, target string) *httptest.ResponseRecorder {
	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/edit/{id}", NewHandler(svc, domain.Codec, renderer, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_NewFormUsesDefaults(t *testing.T) {
	svc := &fakeService{}
	rec := serve(t, svc, "/edit/new")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, svc.getCalled)

	body := rec.Body.String()
	assert.Contains(t, body, "Dodawanie Nowego Samochodu")
	assert.Contains(t, body, `action="/edit/new"`)
	assert.Contains(t, body, `<option value="Benzyna" selected>Benzyna</option>`)
	assert.Contains(t, body, `<option value="Hatchback" selected>Hatchback</option>`)
	assert.Contains(t, body, `value="5.0"`)
}

func TestHandle_EditFormPrefilled(t *testing.T) {
	rec := serve(t, &fakeService{form: &models.CarForm{
		ID: "c1", Brand: "Toyota", Model: "Corolla", FuelType: "Diesel", BodyType: "SUV", ProductionDate: "2020-05-01",
	}}, "/edit/c1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Edycja Samochodu")
	assert.Contains(t, body, `action="/edit/c1"`)
	assert.Contains(t, body, `value="Toyota"`)
	assert.Contains(t, body, `<option value="Diesel" selected>Diesel</option>`)
	assert.Contains(t, body, `value="2020-05-01"`)
	assert.Contains(t, body, `href="/cars/c1" class="btn-cancel"`)
}

func TestHandle_UnknownCodeLeavesSelectEmpty(t *testing.T) {
	codec := domain.Codec.WithFallback("Nieznany")
	form := models.FromDomainForm(&domain.Car{
		ID:       "c1",
		Brand:    "Fiat",
		Model:    "126p",
		FuelType: domain.FuelType(42),
		BodyType: domain.BodySedan,
	}, codec)
	require.Equal(t, "Nieznany", form.FuelType)

	rec := serve(t, &fakeService{form: form}, "/edit/c1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<option value="" disabled selected>Wybierz paliwo</option>`)
	assert.NotContains(t, body, `<option value="Benzyna" selected>`)
	assert.Contains(t, body, `<option value="" disabled>Wybierz nadwozie</option>`)
	assert.Contains(t, body, `<option value="Sedan" selected>Sedan</option>`)
}

func TestHandle_LoadErrors(t *testing.T) {
	rec := serve(t, &fakeService{err: cars.ErrCarNotFound}, "/edit/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Brak Danych")

	rec = serve(t, &fakeService{err: cars.ErrInternal}, "/edit/c1")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Błąd ładowania danych auta do edycji.")
}

func TestNewFormPage(t *testing.T) {
	page := NewFormPage("", &models.CarForm{}, domain.Codec, "")
	assert.False(t, page.IsEdit)
	assert.Equal(t, "/edit/new", page.Action)
	assert.Equal(t, "/cars", page.CancelURL)
	assert.Equal(t, []string{"Benzyna", "Diesel", "Elektryczny", "Hybryda", "LPG"}, page.FuelOptions)
	assert.Len(t, page.BodyOptions, len(domain.BodyTypeLabels))
}
