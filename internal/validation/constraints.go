package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// FieldIssue is one failed input-level constraint
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator returns the shared constraint validator.
// Field names come from the `form` tag so issues point at page field names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(fld.Name)
			}
			return name
		})
		// Registration only fails on an empty tag or nil func
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return clockPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("html5email", func(fl validator.FieldLevel) bool {
			return IsInputEmail(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// CheckValidity runs the input-level constraints declared on fields.
// It returns nil when every constraint holds.
func CheckValidity(fields any) []FieldIssue {
	err := Validator().Struct(fields)
	if err == nil {
		return nil
	}
	return ParseValidationErrors(err)
}

// ParseValidationErrors converts validator errors to user-facing messages
func ParseValidationErrors(err error) []FieldIssue {
	var issues []FieldIssue

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			issues = append(issues, FieldIssue{
				Field:   fieldError.Field(),
				Message: getErrorMessage(fieldError),
			})
		}
		return issues
	}

	if err != nil {
		issues = append(issues, FieldIssue{Message: err.Error()})
	}
	return issues
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Заполните это поле."
	case "html5email":
		return "Введите адрес электронной почты."
	case "oneof":
		return "Выберите один из вариантов."
	case "hhmm":
		return "Укажите время в формате ЧЧ:ММ."
	default:
		return "Некорректное значение."
	}
}
