package middleware

import (
	"bufio"
	"log"
	"net"
	"net/http"
	"time"
)

// statusRecorder captures the response status for the access log. It
// passes Hijacker through so the websocket upgrade works behind it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rec.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

func LoggerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{
				ResponseWriter: w,
				status:         http.StatusOK,
			}

			next.ServeHTTP(rec, r)

			userID := GetUserID(r)
			if userID == "" {
				userID = "anonymous"
			}

			log.Printf("%s %s from %s - %d in %v (user: %s)",
				r.Method,
				r.URL.Path,
				r.RemoteAddr,
				rec.status,
				time.Since(start),
				userID,
			)
		})
	}
}
