package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName — имя cookie с подписанной сессией.
const SessionCookieName = "session"

type ctxKey int

const userPKKey ctxKey = iota

var errInvalidSession = errors.New("invalid session token")

// sessionClaims — содержимое токена: только первичный ключ пользователя.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserPK uint `json:"user_pk"`
}

// Session хранит идентичность вошедшего пользователя в подписанной cookie на клиенте.
// Серверного хранилища сессий нет.
type Session struct {
	secret []byte
	secure bool
}

// NewSession создаёт менеджер сессий. secure выставляет флаг Secure у cookie.
func NewSession(secret string, secure bool) *Session {
	return &Session{secret: []byte(secret), secure: secure}
}

// SetIdentity записывает pk пользователя в cookie сессии.
func (s *Session) SetIdentity(w http.ResponseWriter, userPK uint) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(time.Now())},
		UserPK:           userPK,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear удаляет cookie сессии. Повторный вызов безопасен.
func (s *Session) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// WithAuth проверяет cookie сессии и кладёт pk пользователя в контекст запроса.
// Неподписанная, подделанная или битая cookie игнорируется: запрос считается анонимным.
func (s *Session) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(SessionCookieName)
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}
		pk, err := s.parse(c.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserPK(r.Context(), pk)))
	})
}

func (s *Session) parse(value string) (uint, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	if !token.Valid || claims.UserPK == 0 {
		return 0, errInvalidSession
	}
	return claims.UserPK, nil
}

// WithUserPK возвращает контекст с pk пользователя.
func WithUserPK(ctx context.Context, pk uint) context.Context {
	return context.WithValue(ctx, userPKKey, pk)
}

// GetUserIDFromContext достаёт pk вошедшего пользователя, если он есть.
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	pk, ok := ctx.Value(userPKKey).(uint)
	return pk, ok
}
