package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	driverNameRe = regexp.MustCompile(`^[A-Za-z]+(?: [A-Za-z]+)*$`)
	phone10Re    = regexp.MustCompile(`^[0-9]{10}$`)
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("drivername", validateDriverName)
	validate.RegisterValidation("phone10", validatePhone10)
}

// letters and single spaces only, no digits or punctuation
func validateDriverName(fl validator.FieldLevel) bool {
	return driverNameRe.MatchString(fl.Field().String())
}

// exactly 10 digits
func validatePhone10(fl validator.FieldLevel) bool {
	return phone10Re.MatchString(fl.Field().String())
}
