// Package service
package service

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	. "github.com/half-nothing/simple-hrm/internal/interfaces/service"
	"strings"
	"unicode/utf8"
)

type FieldValidator struct {
	Min, Max          int
	ErrShort, ErrLong *ApiStatus
}

func (v *FieldValidator) CheckString(value string) *ApiStatus {
	length := utf8.RuneCountInString(value)
	if length > v.Max {
		return v.ErrLong
	}
	if length < v.Min {
		return v.ErrShort
	}
	return nil
}

var (
	usernameValidator *FieldValidator
	passwordValidator *FieldValidator
	emailValidator    *FieldValidator
	structValidator   = validator.New(validator.WithRequiredStructEnabled())
)

func InitValidator(config *config.HttpServerLimit) {
	usernameValidator = &FieldValidator{
		Min:      config.UsernameLengthMin,
		Max:      config.UsernameLengthMax,
		ErrShort: &ApiStatus{StatusName: "USERNAME_TOO_SHORT", Description: "El nombre de usuario es demasiado corto", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "USERNAME_TOO_LONG", Description: "El nombre de usuario es demasiado largo", HttpCode: BadRequest},
	}
	passwordValidator = &FieldValidator{
		Min:      config.PasswordLengthMin,
		Max:      config.PasswordLengthMax,
		ErrShort: &ApiStatus{StatusName: "PASSWORD_TOO_SHORT", Description: "La contraseña es demasiado corta", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "PASSWORD_TOO_LONG", Description: "La contraseña es demasiado larga", HttpCode: BadRequest},
	}
	emailValidator = &FieldValidator{
		Min:      config.EmailLengthMin,
		Max:      config.EmailLengthMax,
		ErrShort: &ApiStatus{StatusName: "EMAIL_TOO_SHORT", Description: "El correo es demasiado corto", HttpCode: BadRequest},
		ErrLong:  &ApiStatus{StatusName: "EMAIL_TOO_LONG", Description: "El correo es demasiado largo", HttpCode: BadRequest},
	}
}

// checkStruct runs the validate tags of req, the failing fields are listed in the description
func checkStruct(req interface{}) *ApiStatus {
	err := structValidator.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &ErrIllegalParam
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s(%s)", fieldError.Field(), fieldError.Tag()))
	}
	return &ApiStatus{
		StatusName:  ErrIllegalParam.StatusName,
		Description: fmt.Sprintf("%s: %s", ErrIllegalParam.Description, strings.Join(fields, ", ")),
		HttpCode:    BadRequest,
	}
}
