package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/blackwell-systems/codecommenter/internal/server/respond"
)

// Recovery turns a panic into a 500 analysis_failed response. Clients are
// not expected to retry.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("request_id", RequestIDFromContext(c)).
					Str("path", c.Request.URL.Path).
					Interface("panic", rec).
					Str("stack", string(debug.Stack())).
					Msg("panic")
				respond.Error(c, http.StatusInternalServerError, respond.CodeAnalysisFailed,
					"There was an error analyzing your code. Please try again.")
			}
		}()
		c.Next()
	}
}
