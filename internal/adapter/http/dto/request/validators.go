package request

import (
	"sync"

	"oficina_mecanica/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs to
// gin's validator. It must run before any request is bound.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("plate", validatePlate)
	})
}

// validatePlate accepts ABC1234 and ABC1D23 in any letter case.
func validatePlate(fl validator.FieldLevel) bool {
	return entities.IsValidPlate(entities.NormalizePlate(fl.Field().String()))
}
