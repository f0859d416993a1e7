package response

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// BindJSON разбирает тело запроса и проверяет его по тегам validate.
func BindJSON(ctx fiber.Ctx, out any) error {
	if err := ctx.Bind().WithoutAutoHandling().JSON(out); err != nil {
		return NewValidationError(err, FieldError{Field: "body", Message: "malformed JSON body"})
	}
	return Validate(out)
}

// Validate проверяет структуру по тегам validate.
func Validate(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewValidationError(err)
	}

	fields := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return NewValidationError(err, fields...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}

// ParamID читает положительный числовой идентификатор из пути.
func ParamID(ctx fiber.Ctx, name string) (int64, error) {
	raw := ctx.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errors.New("non-positive id")
		}
		return 0, NewValidationError(err, FieldError{Field: name, Message: "must be a positive integer"})
	}
	return id, nil
}

// InvalidField оборачивает ошибку разбора значения поля или пути в ошибку проверки запроса.
func InvalidField(name string, err error) error {
	return NewValidationError(err, FieldError{Field: name, Message: err.Error()})
}

// RequiredQuery возвращает непустой query-параметр.
func RequiredQuery(ctx fiber.Ctx, name string) (string, error) {
	value := ctx.Query(name)
	if value == "" {
		return "", &MissingParameterError{Name: name}
	}
	return value, nil
}
