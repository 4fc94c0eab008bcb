package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/people-api/internal/config"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhanceContext_StoresLoggerInRequestContext(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	s, err := server.New(config.DefaultConfig(), &log, nil)
	require.NoError(t, err)

	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())
	e.GET("/", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from context")
		GetLogger(c).Info().Msg("from echo")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := buf.String()
	assert.Contains(t, out, `"message":"from context"`)
	assert.Contains(t, out, `"message":"from echo"`)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(`"request_id":"req-7"`)))
}

func TestGetLogger_WithoutEnhancerIsNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
}
