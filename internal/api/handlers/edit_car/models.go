package edit_car

import (
	"github.com/m04kA/SMC-CarManager/internal/api/views"
	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/enumcodec"
	"github.com/m04kA/SMC-CarManager/internal/service/cars/models"
)

// NewFormPage собирает страницу формы. Используется и при повторном показе после ошибки сохранения.
func NewFormPage(id string, form *models.CarForm, options Options, errMsg string) views.FormPage {
	isEdit := id != "" && id != domain.NewCarID
	if !isEdit {
		id = domain.NewCarID
	}

	cancelURL := "/cars"
	if isEdit {
		cancelURL = "/cars/" + id
	}

	return views.FormPage{
		Form:        form,
		IsEdit:      isEdit,
		Action:      "/edit/" + id,
		CancelURL:   cancelURL,
		FuelOptions: labels(options.Options(domain.KindFuelType)),
		BodyOptions: labels(options.Options(domain.KindBodyType)),
		Error:       errMsg,
	}
}

func labels(entries []enumcodec.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}
