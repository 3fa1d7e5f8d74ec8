// Package form implements the form side of every feature screen: binding the
// submitted body, schema validation, field descriptors for rendering and slugs.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate checks payload against its `validate` tags. It returns nil when the
// payload is valid, otherwise one message per failed field rule keyed by the
// field's `form` name.
func Validate(payload any) Errors {
	err := validatorInstance().Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"_": {err.Error()}}
	}

	labels := labelsOf(payload)
	out := Errors{}
	for _, fe := range verrs {
		out.Add(fe.Field(), message(fe, labels))
	}
	return out
}

func message(fe validator.FieldError, labels map[string]string) string {
	label := labels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}
	unit := ""
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice:
		unit = " items"
	}

	switch fe.Tag() {
	case "required", "required_if", "required_with", "required_without":
		return label + " is required"
	case "email":
		return label + " must be a valid email address"
	case "url", "http_url":
		return label + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", label, fe.Param(), unit)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", label, fe.Param(), unit)
	case "gte":
		return fmt.Sprintf("%s must be %s or more", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", label, fe.Param())
	case "gtefield":
		other := labels[strings.ToLower(fe.Param())]
		if other == "" {
			other = fe.Param()
		}
		return fmt.Sprintf("%s must not be less than %s", label, other)
	case "datetime":
		return label + " must be a valid date"
	case "slug":
		return label + " may only contain lowercase letters, numbers and dashes"
	case "alphanum":
		return label + " may only contain letters and numbers"
	case "numeric":
		return label + " must contain digits only"
	case "e164":
		return label + " must be a phone number in international format"
	default:
		return label + " is invalid"
	}
}

// labelsOf maps form names (and lower-cased Go field names, for cross-field
// rules) to human labels.
func labelsOf(payload any) map[string]string {
	t := reflect.TypeOf(payload)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]string{}
	if t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		label := f.Tag.Get("label")
		if label == "" {
			label = f.Name
		}
		if name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]; name != "" && name != "-" {
			out[name] = label
		}
		out[strings.ToLower(f.Name)] = label
	}
	return out
}
