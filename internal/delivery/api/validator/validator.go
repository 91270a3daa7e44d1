// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"
	"unicode"

	"examhub/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	minPasswordLength = 8
	// bcrypt ignores anything past 72 bytes.
	maxPasswordBytes = 72
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names and knows the taxid and strong_password tags.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Both registrations only fail on an empty tag name.
	_ = v.RegisterValidation("taxid", validateTaxID)
	_ = v.RegisterValidation("strong_password", validateStrongPassword)

	return &CustomValidator{validate: v}
}

// Validate runs the struct rules of i.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Details maps each failing field to the rule it broke. It returns nil for errors that are not validation errors.
func Details(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[fieldErr.Field()] = fieldErr.Tag()
	}

	return details
}

// validateTaxID accepts a CPF (11 digits) or CNPJ (14 digits), punctuation allowed.
func validateTaxID(fl validator.FieldLevel) bool {
	taxID := entity.NormalizeTaxID(fl.Field().String())
	if len(taxID) != 11 && len(taxID) != 14 {
		return false
	}

	for _, r := range taxID {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// validateStrongPassword checks the baseline shape of a credential. The configured policy is enforced again by
// the password hasher.
func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < minPasswordLength || len(password) > maxPasswordBytes {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}
