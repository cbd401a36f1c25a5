package car

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarManager/internal/domain"
)

// MemoryRepository хранилище в памяти для локального запуска и тестов
type MemoryRepository struct {
	mu    sync.RWMutex
	cars  map[string]domain.Car
	order []string
}

// NewMemoryRepository создает пустое хранилище в памяти
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{cars: make(map[string]domain.Car)}
}

func (r *MemoryRepository) List(_ context.Context) ([]*domain.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cars := make([]*domain.Car, 0, len(r.order))
	for _, id := range r.order {
		car := r.cars[id]
		cars = append(cars, &car)
	}
	return cars, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	car, ok := r.cars[id]
	if !ok {
		return nil, ErrCarNotFound
	}
	return &car, nil
}

func (r *MemoryRepository) Create(_ context.Context, car *domain.Car) (*domain.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *car
	created.ID = uuid.NewString()
	r.cars[created.ID] = created
	r.order = append(r.order, created.ID)

	return &created, nil
}

func (r *MemoryRepository) Update(_ context.Context, car *domain.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cars[car.ID]; !ok {
		return ErrCarNotFound
	}
	r.cars[car.ID] = *car
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cars[id]; !ok {
		return ErrCarNotFound
	}
	delete(r.cars, id)

	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
