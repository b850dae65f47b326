package handler

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	coordinatePattern = regexp.MustCompile(`^([-+]?)\d+(\.\d+)?$`)
	registerOnce      sync.Once
)

// registerValidations adds the custom binding rules used by models.FoodTruck to gin's validator.
func registerValidations() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("coordinate", func(fl validator.FieldLevel) bool {
				return coordinatePattern.MatchString(fl.Field().String())
			})
		}
	})
}
