// Package validate проверяет поля формы регистрации.
//
// Проверки построены на go-playground/validator с двумя собственными тегами:
// username_chars и loose_email.
package validate

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// MaxUsernameLen — предел длины имени пользователя в символах.
const MaxUsernameLen = 40

var (
	ErrTooLong           = errors.New("username is too long")
	ErrInvalidCharacters = errors.New("username contains invalid characters")
	ErrInvalidFormat     = errors.New("invalid email format")
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]*$`)
	// Намеренно нестрогий шаблон; это не RFC 5322.
	emailRe = regexp.MustCompile(`^[a-z0-9]+[._]?[a-z0-9]+[@]\w+[.]\w{2,3}$`)
)

const (
	usernameRules = "max=40,username_chars"
	emailRules    = "loose_email"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	// теги регистрируются один раз при старте, ошибка здесь — ошибка программиста
	if err := val.RegisterValidation("username_chars", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := val.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return val
}

// Username проверяет длину, затем набор символов.
// Если имя слишком длинное, набор символов не проверяется.
func Username(s string) error {
	return translate(v.Var(s, usernameRules))
}

// Email проверяет адрес по упрощённому шаблону.
func Email(s string) error {
	return translate(v.Var(s, emailRules))
}

// translate переводит ошибку валидатора в ошибку пакета.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].Tag() {
	case "max":
		return ErrTooLong
	case "username_chars":
		return ErrInvalidCharacters
	case "loose_email":
		return ErrInvalidFormat
	default:
		return err
	}
}
