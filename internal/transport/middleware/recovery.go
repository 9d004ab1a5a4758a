package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/viovio/pkg/ctxutil"
)

// Recovery turns a handler panic into a 500 that quotes the request id, and
// logs the panic value with its stack under the same id.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					attrs := []slog.Attr{
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					}
					logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)
					msg := "internal server error"
					if id := ctxutil.RequestIDFromCtx(r.Context()); id != "" {
						msg += " (request " + id + ")"
					}
					writeError(w, http.StatusInternalServerError, "INTERNAL", msg)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
