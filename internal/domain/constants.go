package domain

// Значения по умолчанию для формы нового автомобиля
const (
	DefaultDoorsNumber        = 2
	DefaultLuggageCapacity    = 100
	DefaultEngineCapacity     = 1000
	DefaultFuelType           = FuelPetrol
	DefaultBodyType           = BodyHatchback
	DefaultCarFuelConsumption = 5.0
)

// Ограничения значений
const (
	MinDoorsNumber        = 1
	MinLuggageCapacity    = 0
	MinEngineCapacity     = 1
	MinCarFuelConsumption = 0
	MaxBrandLength        = 100
	MaxModelLength        = 100
)

// Форматы дат
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD, формат API и поля формы
	DisplayDateFormat = "02.01.2006" // формат отображения в списке и карточке
)

// NewCarID значение {id} в маршруте /edit/{id}, означающее создание нового автомобиля
const NewCarID = "new"
