package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarManager/internal/api/handlers"
	deleteCarHandler "github.com/m04kA/SMC-CarManager/internal/api/handlers/delete_car"
	editCarHandler "github.com/m04kA/SMC-CarManager/internal/api/handlers/edit_car"
	getCarHandler "github.com/m04kA/SMC-CarManager/internal/api/handlers/get_car"
	listCarsHandler "github.com/m04kA/SMC-CarManager/internal/api/handlers/list_cars"
	notFoundHandler "github.com/m04kA/SMC-CarManager/internal/api/handlers/not_found"
	saveCarHandler "github.com/m04kA/SMC-CarManager/internal/api/handlers/save_car"
	"github.com/m04kA/SMC-CarManager/internal/api/middleware"
	"github.com/m04kA/SMC-CarManager/internal/api/views"
	"github.com/m04kA/SMC-CarManager/internal/enumcodec"
	"github.com/m04kA/SMC-CarManager/internal/service/cars"
	saveCarUC "github.com/m04kA/SMC-CarManager/internal/usecase/save_car"
	"github.com/m04kA/SMC-CarManager/pkg/metrics"
)

// Dependencies зависимости веб-интерфейса
type Dependencies struct {
	CarService  *cars.Service
	SaveCar     *saveCarUC.UseCase
	Codec       *enumcodec.Codec
	Renderer    *views.Renderer
	Logger      handlers.Logger
	Metrics     *metrics.Metrics // nil - метрики выключены
	MetricsPath string
}

// NewRouter настраивает маршруты веб-интерфейса
func NewRouter(deps Dependencies) *mux.Router {
	listCars := listCarsHandler.NewHandler(deps.CarService, deps.Renderer, deps.Logger)
	getCar := getCarHandler.NewHandler(deps.CarService, deps.Renderer, deps.Logger)
	editCar := editCarHandler.NewHandler(deps.CarService, deps.Codec, deps.Renderer, deps.Logger)
	saveCar := saveCarHandler.NewHandler(deps.SaveCar, deps.Codec, deps.Renderer, deps.Logger)
	deleteCar := deleteCarHandler.NewHandler(deps.CarService, deps.Renderer, deps.Logger)
	notFound := notFoundHandler.NewHandler(deps.Renderer, deps.Logger)

	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(deps.Logger))

	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		r.Handle(deps.MetricsPath, deps.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", views.StaticHandler())).Methods(http.MethodGet)

	r.Handle("/", http.RedirectHandler("/cars", http.StatusFound)).Methods(http.MethodGet)

	// Список и карточка
	r.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id}", getCar.Handle).Methods(http.MethodGet)

	// Удаление: GET - подтверждение, POST - удаление
	r.HandleFunc("/cars/{id}/delete", deleteCar.Confirm).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id}/delete", deleteCar.Handle).Methods(http.MethodPost)

	// Форма: /edit/new - создание, /edit/{id} - редактирование
	r.HandleFunc("/edit/{id}", editCar.Handle).Methods(http.MethodGet)
	r.HandleFunc("/edit/{id}", saveCar.Handle).Methods(http.MethodPost)

	r.HandleFunc(notFoundHandler.Path, notFound.Handle).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(notFound.Redirect)

	return r
}
