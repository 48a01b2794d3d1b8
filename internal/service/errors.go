package service

import (
	"errors"
	"strings"
)

var (
	ErrUsernameTaken  = errors.New("username is not unique")
	ErrNoSuchUser     = errors.New("no such user")
	ErrWrongPassword  = errors.New("wrong password")
	ErrSessionInvalid = errors.New("session refers to a missing user")
	ErrNoSuchDeck     = errors.New("no such deck")
)

// FormError собирает ошибки по полям формы. Пустые поля — nil.
type FormError struct {
	Username error
	Email    error
	Password error
}

func (e *FormError) Error() string {
	parts := make([]string, 0, 3)
	if e.Username != nil {
		parts = append(parts, "username: "+e.Username.Error())
	}
	if e.Email != nil {
		parts = append(parts, "email: "+e.Email.Error())
	}
	if e.Password != nil {
		parts = append(parts, "password: "+e.Password.Error())
	}
	return strings.Join(parts, "; ")
}

// HasErrors сообщает, есть ли хотя бы одна ошибка поля.
func (e *FormError) HasErrors() bool {
	return e.Username != nil || e.Email != nil || e.Password != nil
}

// Unwrap позволяет проверять ошибки полей через errors.Is.
func (e *FormError) Unwrap() []error {
	var errs []error
	for _, err := range []error{e.Username, e.Email, e.Password} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
