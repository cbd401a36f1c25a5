package car

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/pkg/psqlbuilder"
)

const table = "cars"

var columns = []string{
	"id",
	"brand",
	"model",
	"doors_number",
	"luggage_capacity",
	"engine_capacity",
	"fuel_type",
	"body_type",
	"production_date",
	"car_fuel_consumption",
}

// Repository репозиторий автомобилей в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все автомобили в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.Car, error) {
	query, args, err := listQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan car: %v", ErrScanRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return cars, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	if !isUUID(id) {
		return nil, ErrCarNotFound
	}

	query, args, err := getQuery(id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	car, err := scanCar(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %v", ErrScanRow, err)
	}

	return car, nil
}

// Create создает автомобиль. ID генерирует база данных.
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	query, args, err := insertQuery(car).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *car
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// Update полностью заменяет данные автомобиля
func (r *Repository) Update(ctx context.Context, car *domain.Car) error {
	if !isUUID(car.ID) {
		return ErrCarNotFound
	}

	query, args, err := updateQuery(car).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// Delete удаляет автомобиль
func (r *Repository) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return ErrCarNotFound
	}

	query, args, err := deleteQuery(id).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

func listQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at ASC, id ASC")
}

func getQuery(id string) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
}

func insertQuery(car *domain.Car) squirrel.InsertBuilder {
	return psqlbuilder.Insert(table).
		Columns(columns[1:]...).
		Values(
			car.Brand,
			car.Model,
			car.DoorsNumber,
			car.LuggageCapacity,
			car.EngineCapacity,
			int(car.FuelType),
			int(car.BodyType),
			car.ProductionDate,
			car.CarFuelConsumption,
		).
		Suffix("RETURNING id")
}

func updateQuery(car *domain.Car) squirrel.UpdateBuilder {
	return psqlbuilder.Update(table).
		Set("brand", car.Brand).
		Set("model", car.Model).
		Set("doors_number", car.DoorsNumber).
		Set("luggage_capacity", car.LuggageCapacity).
		Set("engine_capacity", car.EngineCapacity).
		Set("fuel_type", int(car.FuelType)).
		Set("body_type", int(car.BodyType)).
		Set("production_date", car.ProductionDate).
		Set("car_fuel_consumption", car.CarFuelConsumption).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": car.ID})
}

func deleteQuery(id string) squirrel.DeleteBuilder {
	return psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id})
}

// isUUID колонка id имеет тип UUID: другой id не может существовать в таблице
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCar(row scanner) (*domain.Car, error) {
	var car domain.Car
	var fuelType, bodyType int

	err := row.Scan(
		&car.ID,
		&car.Brand,
		&car.Model,
		&car.DoorsNumber,
		&car.LuggageCapacity,
		&car.EngineCapacity,
		&fuelType,
		&bodyType,
		&car.ProductionDate,
		&car.CarFuelConsumption,
	)
	if err != nil {
		return nil, err
	}

	car.FuelType = domain.FuelType(fuelType)
	car.BodyType = domain.BodyType(bodyType)
	return &car, nil
}

func checkAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrCarNotFound
	}
	return nil
}
