package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the dashboard's custom tags.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs tag names, aliases and custom rules on v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("hascorrect", hasCorrect)
	v.RegisterAlias("adminrole", "oneof=viewer editor super_admin")
}

// notBlank rejects strings that are empty after trimming.
func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(f.String()) != ""
}

// hasCorrect passes when at least one element of a slice of structs has a
// true IsCorrect field.
func hasCorrect(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Slice && f.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < f.Len(); i++ {
		el := reflect.Indirect(f.Index(i))
		if el.Kind() != reflect.Struct {
			continue
		}
		flag := el.FieldByName("IsCorrect")
		if flag.IsValid() && flag.Kind() == reflect.Bool && flag.Bool() {
			return true
		}
	}
	return false
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
// Nested fields are keyed by their path, e.g. questions[1].options.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fieldPath(fe)] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()

	switch tag {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "hascorrect":
		return "must mark at least one correct option"
	case "email":
		return "must be a valid email"
	case "url", "http_url":
		return "must be a valid URL"
	case "oneof", "adminrole":
		if param == "" {
			param = "viewer editor super_admin"
		}
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "min":
		switch {
		case isNumberKind(kind):
			return "must be at least " + param
		case kind == reflect.Slice || kind == reflect.Array:
			return "must have at least " + param + " items"
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(kind) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", param)
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
