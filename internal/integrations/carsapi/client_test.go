package carsapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarManager/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", 2*time.Second, logger.NewNop())
}

func sampleCar() Car {
	return Car{
		Brand:              "Toyota",
		Model:              "Corolla",
		DoorsNumber:        5,
		LuggageCapacity:    470,
		EngineCapacity:     1798,
		FuelType:           0,
		ProductionDate:     "2020-05-01",
		CarFuelConsumption: 4.5,
		BodyType:           1,
	}
}

func TestClient_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/Cars", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]Car{{ID: "a", Brand: "Fiat"}, {ID: "b", Brand: "Opel"}})
	})

	cars, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "Fiat", cars[0].Brand)
}

func TestClient_List_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.List(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Get_EscapesIDAndMapsNotFound(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Get(context.Background(), "a/b")
	assert.ErrorIs(t, err, ErrCarNotFound)
	assert.Equal(t, "/api/Cars/a%2Fb", gotPath)
}

func TestClient_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		car := sampleCar()
		car.ID = "42"
		car.ProductionDate = "2020-05-01T00:00:00"
		_ = json.NewEncoder(w).Encode(car)
	})

	car, err := client.Get(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", car.ID)
	assert.Equal(t, "2020-05-01T00:00:00", car.ProductionDate)
}

func TestClient_Create_OmitsIDAndReturnsCreated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var raw map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, hasID := raw["id"]
		assert.False(t, hasID, "id must not be sent on create")
		assert.Equal(t, "Toyota", raw["brand"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "new-id", "brand": "Toyota"})
	})

	car := sampleCar()
	car.ID = "ignored"
	created, err := client.Create(context.Background(), car)
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
}

func TestClient_Create_ValidationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"title":"One or more validation errors occurred.","errors":{"Model":["Model is required."],"Brand":["Brand is required.","Brand is too short."]}}`))
	})

	_, err := client.Create(context.Background(), sampleCar())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Brand is required.; Brand is too short.; Model is required.", verr.Message())
}

func TestClient_Update_BareValidationObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/Cars/7", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"DoorsNumber":["Too many doors."]}`))
	})

	err := client.Update(context.Background(), "7", sampleCar())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Too many doors.", verr.Message())
}

func TestClient_Update_BadRequestWithoutMessages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":{}}`))
	})

	err := client.Update(context.Background(), "7", sampleCar())

	var verr *ValidationError
	require.Error(t, err)
	assert.False(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Update_SendsID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var car Car
		require.NoError(t, json.NewDecoder(r.Body).Decode(&car))
		assert.Equal(t, "7", car.ID)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Update(context.Background(), "7", sampleCar()))
}

func TestClient_Delete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"no content", http.StatusNoContent, nil},
		{"ok", http.StatusOK, nil},
		{"not found", http.StatusNotFound, ErrCarNotFound},
		{"server error", http.StatusInternalServerError, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				w.WriteHeader(tt.status)
			})

			err := client.Delete(context.Background(), "1")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second, logger.NewNop())
	_, err := client.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
