package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Logger(zerolog.New(buf)), Recovery())
	r.GET("/ok", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var entry map[string]any
		require.NoError(t, dec.Decode(&entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		requestID     string
		expectedCode  int
		expectedLevel string
		expectedLines int
	}{
		{name: "generated request id", path: "/ok", expectedCode: http.StatusNoContent, expectedLevel: "info", expectedLines: 2},
		{name: "propagated request id", path: "/ok", requestID: "abc-123", expectedCode: http.StatusNoContent, expectedLevel: "info", expectedLines: 2},
		{name: "client error", path: "/missing", expectedCode: http.StatusNotFound, expectedLevel: "warn", expectedLines: 1},
		{name: "panic", path: "/panic", expectedCode: http.StatusInternalServerError, expectedLevel: "error", expectedLines: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			var buf bytes.Buffer
			r := newEngine(&buf)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.requestID != "" {
				req.Header.Set(RequestIDHeader, tt.requestID)
			}
			w := httptest.NewRecorder()

			// Execute
			r.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.expectedCode, w.Code)

			requestID := w.Header().Get(RequestIDHeader)
			require.NotEmpty(t, requestID)
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, requestID)
			}

			lines := decodeLines(t, &buf)
			require.Len(t, lines, tt.expectedLines)
			for _, line := range lines {
				assert.Equal(t, requestID, line["request_id"])
			}

			access := lines[len(lines)-1]
			assert.Equal(t, "request completed", access["message"])
			assert.Equal(t, tt.expectedLevel, access["level"])
			assert.Equal(t, tt.path, access["path"])
			assert.EqualValues(t, tt.expectedCode, access["status"])
		})
	}
}
