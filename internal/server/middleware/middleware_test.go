package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/codecommenter/internal/server/respond"
)

func TestRequestID_Generated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/x", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusNoContent)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.NotEmpty(t, seen)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, resp.Header().Get(HeaderRequestID))
}

func TestRequestID_ClientSupplied(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, "abc-123", resp.Header().Get(HeaderRequestID))
}

func TestRequestIDFromContext_Nil(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(nil))
}

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestID(), Logging(log))
	router.GET("/test", func(c *gin.Context) {
		c.Set(LanguageKey, "Python")
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "bad")
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/test", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &payload))

	for _, key := range []string{"request_id", "method", "path", "status", "duration", "error_code", "language"} {
		assert.Contains(t, payload, key)
	}
	assert.Equal(t, "warn", payload["level"])
	assert.Equal(t, float64(http.StatusBadRequest), payload["status"])
	assert.Equal(t, respond.CodeValidation, payload["error_code"])
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer

	router := gin.New()
	router.Use(RequestID(), Recovery(zerolog.New(&buf)))
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	var body respond.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, respond.CodeAnalysisFailed, body.Error.Code)
	assert.Contains(t, buf.String(), `"panic":"boom"`)
}
