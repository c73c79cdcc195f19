package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// LogRequest logs one line per request with the remote address, method and
// path.
func LogRequest(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(logrus.Fields{
				"remote": r.RemoteAddr,
				"method": r.Method,
				"path":   r.URL.RequestURI(),
			}).Info("request")
			next.ServeHTTP(w, r)
		})
	}
}

// RecoverPanic converts handler panics into 500 responses instead of
// tearing down the connection.
func RecoverPanic(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					w.Header().Set("Connection", "close")
					log.WithField("panic", err).Error("handler panic")
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
