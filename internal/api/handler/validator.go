package handler

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator with the crop vocabulary tags
// (season, soil, water) registered.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("season", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.Seasons, fl.Field().String())
	})
	_ = v.RegisterValidation("soil", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.SoilTypes, fl.Field().String())
	})
	_ = v.RegisterValidation("water", func(fl validator.FieldLevel) bool {
		return domain.WaterRequirement(fl.Field().String()).Valid()
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "season":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(domain.Seasons, ", "))
	case "soil":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(domain.SoilTypes, ", "))
	case "water":
		return field + " must be one of: Low, Medium, High"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
