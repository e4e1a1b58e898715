package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/api/handlers"
)

type Logger interface {
	Error(format string, v ...interface{})
}

// Recover отвечает 500 вместо обрыва соединения при панике в обработчике
func Recover(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("%s %s - panic: %v", r.Method, r.URL.Path, rec)
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
