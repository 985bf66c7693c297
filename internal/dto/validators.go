package dto

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var fiscalYearRe = regexp.MustCompile(`^\d{2}-\d{2}$`)

// validFiscalYear accepts fiscal years of the form "24-25": two two-digit
// years where the second is the first plus one.
func validFiscalYear(fl validator.FieldLevel) bool {
	return IsValidFiscalYear(fl.Field().String())
}

// RegisterCustomValidators installs the custom binding tags on gin's
// validator engine. Call once at startup before serving.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("fyear", validFiscalYear)
	}
}

// IsValidFiscalYear validates a fiscal year outside of request binding, for
// path/query parameters that bypass the DTO layer.
func IsValidFiscalYear(s string) bool {
	if !fiscalYearRe.MatchString(s) {
		return false
	}
	from, _ := strconv.Atoi(s[:2])
	to, _ := strconv.Atoi(s[3:])
	return (from+1)%100 == to
}
