package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/blackwell-systems/codecommenter/internal/server/respond"
)

// Logging emits one structured log line per request.
func Logging(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}
		ev = ev.
			Str("request_id", RequestIDFromContext(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP())
		if code := c.GetString(respond.ErrorCodeKey); code != "" {
			ev = ev.Str("error_code", code)
		}
		if l := c.GetString(LanguageKey); l != "" {
			ev = ev.Str("language", l)
		}
		ev.Msg("request.complete")
	}
}

// LanguageKey is set by handlers that classify code so the access log can
// report it.
const LanguageKey = "language"
