package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

// cookiesFrom переносит Set-Cookie из ответа в запрос
func cookiesFrom(rr *httptest.ResponseRecorder, req *http.Request) {
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// echoPK отвечает pk из контекста или 401
var echoPK = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if pk, ok := GetUserIDFromContext(r.Context()); ok {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(strconv.FormatUint(uint64(pk), 10)))
		return
	}
	w.WriteHeader(http.StatusUnauthorized)
})

// Тест: SetIdentity + WithAuth — pk попадает в контекст
func TestWithAuth_ValidCookieSetsUserPK(t *testing.T) {
	s := NewSession("test-secret", false)
	h := s.WithAuth(echoPK)

	rrCookie := httptest.NewRecorder()
	if err := s.SetIdentity(rrCookie, 77); err != nil {
		t.Fatalf("SetIdentity: %v", err)
	}
	cookies := rrCookie.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookieName || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	cookiesFrom(rrCookie, req)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "77" {
		t.Fatalf("expected 200 and pk 77, got %d %q", rr.Code, rr.Body.String())
	}
}

// Тест: отсутствие cookie — запрос анонимный
func TestWithAuth_NoCookieLeavesAnonymous(t *testing.T) {
	h := NewSession("any-secret", false).WithAuth(echoPK)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected anonymous request, got %d", rr.Code)
	}
}

// Тест: токен подписан другим секретом — pk не устанавливается
func TestWithAuth_InvalidSignature(t *testing.T) {
	rrCookie := httptest.NewRecorder()
	_ = NewSession("secret-A", false).SetIdentity(rrCookie, 5)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	cookiesFrom(rrCookie, req)
	rr := httptest.NewRecorder()
	NewSession("secret-B", false).WithAuth(echoPK).ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("token with foreign signature must be ignored, got %d", rr.Code)
	}
}

// Тест: мусор и неподписанный токен (alg=none) игнорируются
func TestWithAuth_GarbageAndUnsigned(t *testing.T) {
	s := NewSession("secret", false)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_pk": 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	for _, v := range []string{"garbage", "a.b.c", unsigned} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: v})
		rr := httptest.NewRecorder()
		s.WithAuth(echoPK).ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("cookie %q must be ignored, got %d", v, rr.Code)
		}
	}
}

// Тест: Clear выставляет истёкшую cookie, Secure берётся из настроек
func TestSession_Clear(t *testing.T) {
	s := NewSession("secret", true)
	rr := httptest.NewRecorder()
	s.Clear(rr)
	s.Clear(rr) // повторный вызов безопасен

	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected Set-Cookie")
	}
	c := cookies[0]
	if c.Name != SessionCookieName || c.Value != "" || c.MaxAge >= 0 || !c.Secure {
		t.Fatalf("unexpected clear cookie: %+v", c)
	}
}
