// Package validation checks submitted forms before they are sent to the
// remote API and turns failures into messages fit for the form page.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ilPhonePattern = regexp.MustCompile(`^05\d{8}$`)

const passwordSpecials = "!@#$%^&*-"

// Validator wraps go-playground/validator with the application's custom tags.
// It is installed as the echo.Validator, so handlers validate with c.Validate.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator. Field errors are keyed by the `form` tag so they
// line up with input names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("ilphone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	return &Validator{validate: v}
}

// IsPhone reports whether s is a mobile number of the form 05XXXXXXXX.
func IsPhone(s string) bool {
	return ilPhonePattern.MatchString(s)
}

// IsStrongPassword reports whether s has at least 9 characters including an
// ASCII lowercase letter, an ASCII uppercase letter, an ASCII digit and one
// of !@#$%^&*-.
func IsStrongPassword(s string) bool {
	if len([]rune(s)) < 9 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			lower = true
		case 'A' <= r && r <= 'Z':
			upper = true
		case '0' <= r && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// Validate implements echo.Validator. Failures come back as FieldErrors.
func (v *Validator) Validate(i interface{}) error {
	if errs := v.Check(i); errs != nil {
		return errs
	}
	return nil
}

// Errors unpacks the result of c.Validate into per-field messages. Any other
// error, such as a missing validator, is reported under the empty key.
func Errors(err error) FieldErrors {
	if err == nil {
		return nil
	}
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe
	}
	return FieldErrors{"": err.Error()}
}

// FieldErrors maps input names to the message shown under them.
type FieldErrors map[string]string

// Error implements error.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Check validates form and returns nil or the per-field messages.
func (v *Validator) Check(form interface{}) FieldErrors {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label(fe.Field()) + " is required"
	case "email":
		return "Invalid email"
	case "ilphone":
		return "Must be a valid phone number"
	case "url", "http_url":
		return "Must be a valid URL"
	case "strongpassword":
		return "Password must contain uppercase, lowercase, number, and special character"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be less than %s characters", fe.Param())
	default:
		return "Invalid value"
	}
}

var labels = map[string]string{
	"first":       "First name",
	"middle":      "Middle name",
	"last":        "Last name",
	"imageUrl":    "Image URL",
	"imageAlt":    "Image alt",
	"houseNumber": "House number",
}

// label turns an input name into the noun used in "... is required".
func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
