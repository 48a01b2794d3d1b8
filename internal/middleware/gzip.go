package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithGzip сжимает HTML и текстовые ответы, если клиент принимает gzip.
func WithGzip(next http.Handler) http.Handler {
	return chimw.Compress(5, "text/html", "text/plain")(next)
}
