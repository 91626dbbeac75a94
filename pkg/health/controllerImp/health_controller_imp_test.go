package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"morafo/database/dbtest"
)

func TestHealth(t *testing.T) {
	e := echo.New()
	e.GET("/health", NewHealthCtrl(dbtest.New(t), "offline").Health)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mode":"offline"`)
}

func TestHealth_NoDB(t *testing.T) {
	e := echo.New()
	e.GET("/health", NewHealthCtrl(nil, "gemini").Health)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "gorm db is nil")
}

func TestHealth_OfflineInferenceIsDegradedNotDown(t *testing.T) {
	e := echo.New()
	e.GET("/health", NewHealthCtrl(dbtest.New(t), "offline").Health)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":{"ok":true}`)
	assert.Contains(t, body, `"inference":{"ok":false,"mode":"offline"}`)
	assert.Contains(t, body, `"database":{"ok":true}`)
}
