package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/comclic/clinic-records/internal/core/domain"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{4,10}$`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z0-9.+\-=#_%|&@]{7,16}$`)
	hasUpper        = regexp.MustCompile(`[A-Z]`)
	hasLower        = regexp.MustCompile(`[a-z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator with the clinic-specific tags
// registered, ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		p := fl.Field().String()
		return passwordCharset.MatchString(p) && hasUpper.MatchString(p) && hasLower.MatchString(p) && hasDigit.MatchString(p)
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("clinic", func(fl validator.FieldLevel) bool {
		return domain.Clinic(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("vaccine", func(fl validator.FieldLevel) bool {
		return domain.Vaccine(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("source", func(fl validator.FieldLevel) bool {
		return domain.Source(fl.Field().String()).Valid()
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures wrap
// domain.ErrValidation.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
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
	case "email":
		return field + " must be a valid email"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s item(s)", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "username":
		return field + " must start with a letter and be 5 to 11 letters or digits"
	case "password":
		return field + " must be 7 to 16 characters with an upper-case letter, a lower-case letter and a digit"
	case "role", "clinic", "vaccine", "source":
		return fmt.Sprintf("%s has an unknown %s %q", field, fe.Tag(), fe.Value())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
