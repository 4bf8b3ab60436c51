package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/company-records-api/internal/domain"
	"github.com/company-records-api/internal/dto"
)

// newValidator возвращает валидатор, который называет поля по тегам json
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrors собирает ошибки проверки по именам полей
type fieldErrors map[string]string

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: f}
}

// validateStruct проверяет запрос по тегам validate
func validateStruct(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := fieldErrors{}
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields.err()
}

// checkRequired проверяет переданное обязательное поле частичного обновления
func checkRequired[T any](v *validator.Validate, fields fieldErrors, name string, opt dto.Optional[T], tag string) {
	if !opt.Set {
		return
	}
	if opt.Value == nil {
		fields[name] = "must not be null"
		return
	}
	checkVar(v, fields, name, *opt.Value, tag)
}

// checkNullable проверяет переданное необязательное поле; null допустим
func checkNullable[T any](v *validator.Validate, fields fieldErrors, name string, opt dto.Optional[T], tag string) {
	if !opt.Set || opt.Value == nil {
		return
	}
	checkVar(v, fields, name, *opt.Value, tag)
}

func checkVar(v *validator.Validate, fields fieldErrors, name string, value any, tag string) {
	err := v.Var(value, tag)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields[name] = fieldMessage(verrs[0])
		return
	}
	fields[name] = "is invalid"
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
