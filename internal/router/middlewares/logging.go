package middlewares

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// WithLogging logs every request at debug level, and at warn level when the response
// status is an error.
func WithLogging(h http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: rw, status: http.StatusOK}
		h.ServeHTTP(sw, req)

		level := zerolog.DebugLevel
		if sw.status >= http.StatusBadRequest {
			level = zerolog.WarnLevel
		}
		log.Ctx(req.Context()).WithLevel(level).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", sw.status).
			Dur("latency", time.Since(start)).
			Msg("served request")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
