package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
)

// RegisterCustomValidators installs binding validators beyond the built-in
// tags. "tsstatus" accepts exactly the known timesheet statuses. It returns
// false if the binding engine is not the expected validator implementation.
func RegisterCustomValidators() bool {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return false
	}
	_ = v.RegisterValidation("tsstatus", func(fl validator.FieldLevel) bool {
		return domain.TimesheetStatus(fl.Field().String()).IsValid()
	})
	return true
}
