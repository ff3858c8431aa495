package validator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

// Algerian mobile numbers: country code or leading zero, carrier digit
// 5/6/7, then 8 digits.
var dzPhoneRegex = regexp.MustCompile(`^(\+213|0)(5|6|7)[0-9]{8}$`)

var validate = validator.New()

func init() {
	// Whitespace is stripped before matching, so "0551 92 53 18" passes.
	validate.RegisterValidation("dz_phone", func(fl validator.FieldLevel) bool {
		return dzPhoneRegex.MatchString(stripSpaces(fl.Field().String()))
	})
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
