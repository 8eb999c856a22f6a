package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"bahikhata/internal/tax"
)

// RegisterBindings installs the custom binding tags used by request DTOs
// on gin's validator engine. Safe to call more than once.
func RegisterBindings() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		_, err := tax.ValidateGSTIN(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return tax.ValidPAN(fl.Field().String())
	})
	_ = v.RegisterValidation("tan", func(fl validator.FieldLevel) bool {
		return tax.TANPattern.MatchString(fl.Field().String())
	})
}
