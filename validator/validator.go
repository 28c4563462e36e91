package validator

import (
	"github.com/go-playground/validator/v10"

	ierr "github.com/storekit/woocommerce-go/errors"
)

var validate = validator.New()

// ValidateStruct runs struct-tag validation and folds field failures into a
// single validation error with per-field details.
func ValidateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, fieldErr := range validateErrs {
				details[fieldErr.Field()] = fieldErr.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
