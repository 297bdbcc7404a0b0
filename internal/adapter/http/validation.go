package http

import (
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields under their json names, matching what clients sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// public ids = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	// money amounts carry at most 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-math.Round(f*100)/100) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

var tagMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"hex32":    "must be 32-char lowercase hex",
	"dec2":     "must have at most 2 decimal places",
	"datetime": "must be a YYYY-MM-DD date",
}

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		fe := FieldError{Field: e.Field()}
		switch e.Tag() {
		case "oneof":
			fe.Message = "must be one of " + e.Param()
		case "max":
			fe.Message = "must be at most " + e.Param()
		case "gt":
			fe.Message = "must be greater than " + e.Param()
		case "gte":
			fe.Message = "must be greater than or equal to " + e.Param()
		default:
			if msg, known := tagMessages[e.Tag()]; known {
				fe.Message = msg
			} else {
				fe.Message = e.Tag() + " validation failed"
			}
		}
		out = append(out, fe)
	}
	return out
}
