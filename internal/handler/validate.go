package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validatorInstance returns the shared validator. validator.Validate caches
// struct metadata and is safe for concurrent use.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report query parameter names rather than Go field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("query"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// reportQuery is the validated form of GET /api/reports query parameters.
type reportQuery struct {
	Type     string `query:"type" validate:"required,oneof=users pois"`
	ID       int64  `query:"id" validate:"min=0"`
	Username string `query:"username" validate:"max=100"`
	Email    string `query:"email" validate:"max=255"`
	Role     string `query:"role" validate:"omitempty,oneof=user admin"`
	Name     string `query:"name" validate:"max=255"`
	Visitors int    `query:"visitors" validate:"min=0"`
}

// fieldError is the first failing field of a validated struct.
type fieldError struct {
	Field   string
	Message string
}

// validateStruct runs the shared validator over v and translates the first
// failure into a client-facing message. It returns nil when v is valid.
func validateStruct(v any) *fieldError {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &fieldError{Message: msgInvalidRequest}
	}
	fe := verrs[0]
	return &fieldError{Field: fe.Field(), Message: translate(fe)}
}

func translate(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
