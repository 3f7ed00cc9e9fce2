package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Violation is one schema failure; a rejected payload reports every
// violation, not just the first.
type (
	Violation struct {
		Field   string `json:"field"`
		Rule    string `json:"rule"`
		Message string `json:"message"`
	}
	Violations []Violation
)

var humanNameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields under their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("humanname", func(fl validator.FieldLevel) bool {
		return humanNameRe.MatchString(fl.Field().String())
	})

	return v
}

// Struct evaluates the declarative schema carried by the request type's
// validate tags and collects all violations.
func Struct(req any) Violations {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return Violations{{Message: err.Error()}}
	}

	out := make(Violations, 0, len(vErrs))
	for _, fe := range vErrs {
		out = append(out, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}

	return out
}

func IsHexID(s string) (bool, primitive.ObjectID) {
	id, err := primitive.ObjectIDFromHex(s)
	return err == nil, id
}

// HexIDViolation is the violation reported when an id field carries
// anything but a 24-hex object id.
func HexIDViolation(field string) Violations {
	return Violations{{
		Field:   field,
		Rule:    "mongodb",
		Message: fmt.Sprintf("%s must be a valid object id", field),
	}}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "invalid email format"
	case "alphanum":
		return fmt.Sprintf("%s may only contain letters and digits", fe.Field())
	case "humanname":
		return fmt.Sprintf("%s may only contain letters and spaces", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "hexadecimal":
		return fmt.Sprintf("%s must be hexadecimal", fe.Field())
	case "mongodb":
		return fmt.Sprintf("%s must be a valid object id", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}
