package car

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarManager/internal/domain"
)

func testCar() *domain.Car {
	return &domain.Car{
		ID:                 "c1",
		Brand:              "Toyota",
		Model:              "Corolla",
		DoorsNumber:        5,
		LuggageCapacity:    470,
		EngineCapacity:     1600,
		FuelType:           domain.FuelPetrol,
		BodyType:           domain.BodySedan,
		ProductionDate:     time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC),
		CarFuelConsumption: 6.5,
	}
}

func TestGetQuery(t *testing.T) {
	query, args, err := getQuery("c1").ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM cars")
	assert.Contains(t, query, "WHERE id = $1")
	assert.Equal(t, []interface{}{"c1"}, args)
}

func TestListQuery(t *testing.T) {
	query, args, err := listQuery().ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT id, brand, model")
	assert.Contains(t, query, "ORDER BY created_at ASC, id ASC")
	assert.Empty(t, args)
}

func TestInsertQuery_OmitsIDAndReturnsIt(t *testing.T) {
	car := testCar()

	query, args, err := insertQuery(car).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO cars")
	assert.Contains(t, query, "RETURNING id")
	assert.NotContains(t, args, "c1")
	require.Len(t, args, len(columns)-1)
	assert.Equal(t, "Toyota", args[0])
	assert.Equal(t, 0, args[5], "fuel type is stored as its numeric code")
}

func TestUpdateQuery(t *testing.T) {
	query, args, err := updateQuery(testCar()).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE cars SET")
	assert.Contains(t, query, "updated_at = NOW()")
	assert.Contains(t, query, "WHERE id = $10")
	assert.Equal(t, "c1", args[len(args)-1])
}

func TestDeleteQuery(t *testing.T) {
	query, args, err := deleteQuery("c1").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM cars WHERE id = $1", query)
	assert.Equal(t, []interface{}{"c1"}, args)
}

func TestRepository_NonUUIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	// Запрос в базу не выполняется, поэтому соединение не нужно
	repo := NewRepository(nil)

	for _, id := range []string{"abc", "", "new"} {
		_, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrCarNotFound, "GetByID(%q)", id)

		assert.ErrorIs(t, repo.Delete(ctx, id), ErrCarNotFound, "Delete(%q)", id)

		car := testCar()
		car.ID = id
		assert.ErrorIs(t, repo.Update(ctx, car), ErrCarNotFound, "Update(%q)", id)
	}
}

func TestSchema_Embedded(t *testing.T) {
	assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS cars")
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first, err := repo.Create(ctx, testCar())
	require.NoError(t, err)
	assert.NotEqual(t, "c1", first.ID, "id is assigned by the repository")
	assert.NotEmpty(t, first.ID)

	second := testCar()
	second.Brand = "Skoda"
	second, err = repo.Create(ctx, second)
	require.NoError(t, err)

	cars, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "Toyota", cars[0].Brand)
	assert.Equal(t, "Skoda", cars[1].Brand)

	first.Model = "Yaris"
	require.NoError(t, repo.Update(ctx, first))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yaris", got.Model)

	require.NoError(t, repo.Delete(ctx, first.ID))

	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrCarNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrCarNotFound)
	assert.ErrorIs(t, repo.Update(ctx, first), ErrCarNotFound)

	cars, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, second.ID, cars[0].ID)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, testCar())
	require.NoError(t, err)

	created.Brand = "Changed"

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", got.Brand)
}
