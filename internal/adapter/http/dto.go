package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type improveTextRequest struct {
	Text      string `json:"text" validate:"required"`
	FieldType string `json:"fieldType" validate:"omitempty,oneof=summary experience education skills"`
}

type improveTextResponse struct {
	ImprovedText string `json:"improvedText"`
}

type personalUpdateRequest struct {
	Field string `json:"field" validate:"required,oneof=name email phone linkedin summary"`
	Value string `json:"value"`
}

type entityUpdateRequest struct {
	Field string      `json:"field" validate:"required"`
	Value interface{} `json:"value"`
}

type datesRequest struct {
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
	IsCurrent bool    `json:"isCurrent"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validationMessage reports the first failing field.
func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "invalid request"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required", "required_unless":
		return fe.Field() + " required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
