package serverutils

import (
	"errors"
	"fmt"
	"reflect"

	"qa-live-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs the struct validation tags on a bound request DTO.
// The first failing field is reported with its `errmsg` tag, so each request
// keeps the exact client-facing wording it always had.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return apperror.NewValidation(messageForField(req, fieldErrs[0]))
		}
		return apperror.NewValidation("Invalid request payload")
	}
	return nil
}

func messageForField(req interface{}, fieldErr validator.FieldError) string {
	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if field, ok := t.FieldByName(fieldErr.StructField()); ok {
		if msg := field.Tag.Get("errmsg"); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", fieldErr.Field())
}
