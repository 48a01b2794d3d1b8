package handlers

import (
	"errors"
	"net/http"
	"strings"

	"flashcards/internal/middleware"
	"flashcards/internal/service"

	"go.uber.org/zap"
)

// UserHandler обслуживает главную страницу, регистрацию, вход и выход.
type UserHandler struct {
	UserService *service.UserService
	Session     *middleware.Session
	Logger      *zap.SugaredLogger
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, session *middleware.Session, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Session: session, Logger: logger}
}

// Home показывает главную страницу с текущим пользователем, если он вошёл.
func (h *UserHandler) Home(w http.ResponseWriter, r *http.Request) {
	view := homeView{}

	if pk, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		user, err := h.UserService.Current(r.Context(), pk)
		switch {
		case errors.Is(err, service.ErrSessionInvalid):
			// пользователь удалён после входа: сбрасываем сессию и продолжаем анонимно
			h.Logger.Warnw("Home: session refers to missing user", "user_pk", pk)
			h.Session.Clear(w)
		case err != nil:
			h.Logger.Errorw("Home: load user", "user_pk", pk, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		default:
			view.User = user
		}
	}

	h.render(w, "home", view)
}

// UserCreateForm отдаёт пустую форму регистрации.
func (h *UserHandler) UserCreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "usercreate", userCreateView{NextPage: r.URL.Query().Get("next")})
}

// UserCreate регистрирует пользователя и сразу выполняет вход.
func (h *UserHandler) UserCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Warnw("UserCreate: invalid form", "error", err)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	view := userCreateView{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		NextPage: r.PostFormValue("next"),
	}

	user, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Username: view.Username,
		Email:    view.Email,
		Password: view.Password,
	})
	var fe *service.FormError
	if errors.As(err, &fe) {
		view.UsernameError = fieldMessage(fe.Username)
		view.EmailError = fieldMessage(fe.Email)
		h.render(w, "usercreate", view)
		return
	}
	if err != nil {
		h.Logger.Errorw("UserCreate: service error", "username", view.Username, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.Logger.Infow("user registered", "user_pk", user.PK, "username", user.Username)
	h.loginAndRedirect(w, r, user.PK, view.NextPage)
}

// LoginForm отдаёт пустую форму входа.
func (h *UserHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login", loginView{NextPage: r.URL.Query().Get("next")})
}

// Login проверяет имя и пароль; при ошибке форма возвращается с введёнными значениями.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Warnw("Login: invalid form", "error", err)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	view := loginView{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
		NextPage: r.PostFormValue("next"),
	}

	user, err := h.UserService.Login(r.Context(), view.Username, view.Password)
	var fe *service.FormError
	if errors.As(err, &fe) {
		view.UsernameError = fieldMessage(fe.Username)
		view.PasswordError = fieldMessage(fe.Password)
		h.render(w, "login", view)
		return
	}
	if err != nil {
		h.Logger.Errorw("Login: service error", "username", view.Username, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.loginAndRedirect(w, r, user.PK, view.NextPage)
}

// Logout всегда сбрасывает сессию и перенаправляет на next или на главную.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Session.Clear(w)
	redirectNext(w, r, r.URL.Query().Get("next"))
}

func (h *UserHandler) loginAndRedirect(w http.ResponseWriter, r *http.Request, pk uint, next string) {
	if err := h.Session.SetIdentity(w, pk); err != nil {
		h.Logger.Errorw("session: set identity", "user_pk", pk, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	redirectNext(w, r, next)
}

func (h *UserHandler) render(w http.ResponseWriter, name string, data any) {
	if err := render(w, name, data); err != nil {
		h.Logger.Errorw("render", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// redirectNext перенаправляет на next. Пустое значение и адреса вне сайта — на главную.
func redirectNext(w http.ResponseWriter, r *http.Request, next string) {
	if !isLocalPath(next) {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusFound)
}

// isLocalPath допускает только пути этого сайта: "/..." без "//" и "/\" в начале.
func isLocalPath(next string) bool {
	if next == "" || next[0] != '/' {
		return false
	}
	if len(next) > 1 && (next[1] == '/' || next[1] == '\\') {
		return false
	}
	return !strings.ContainsAny(next, "\r\n")
}
