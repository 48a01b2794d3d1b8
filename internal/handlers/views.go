package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"flashcards/internal/model"
	"flashcards/internal/service"
	"flashcards/internal/validate"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Данные шаблонов
type homeView struct {
	User *model.User
}

type userCreateView struct {
	Username      string
	Email         string
	Password      string
	UsernameError string
	EmailError    string
	NextPage      string
}

type loginView struct {
	Username      string
	Password      string
	UsernameError string
	PasswordError string
	NextPage      string
}

// Тексты ошибок полей, которые видит пользователь
var fieldMessages = []struct {
	err error
	msg string
}{
	{validate.ErrTooLong, "Username is too long (limit is 40 chars)"},
	{validate.ErrInvalidCharacters, "Username may only contain letters, digits and underscores"},
	{validate.ErrInvalidFormat, "Not a valid email address"},
	{service.ErrUsernameTaken, "Username is not unique"},
	{service.ErrNoSuchUser, "No such user exists."},
	{service.ErrWrongPassword, "Wrong password."},
}

// fieldMessage возвращает текст ошибки поля; nil — пустая строка.
func fieldMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, fm := range fieldMessages {
		if errors.Is(err, fm.err) {
			return fm.msg
		}
	}
	return err.Error()
}

// render исполняет шаблон в буфер, чтобы при ошибке не отдать клиенту половину страницы.
func render(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	return nil
}
