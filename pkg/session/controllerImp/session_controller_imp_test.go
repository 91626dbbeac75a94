package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morafo/entities"
	"morafo/pkg/middleware"
)

type fakeProfiles map[string]*entities.FarmerProfile

func (f fakeProfiles) Profile(sid string) (*entities.FarmerProfile, error) { return f[sid], nil }

func TestWhoAmI(t *testing.T) {
	sid := uuid.NewString()
	e := echo.New()
	e.Use(middleware.Session(), middleware.Language())
	e.GET("/session", NewSessionController(fakeProfiles{sid: {Name: "Lerato"}}).WhoAmI)

	req := httptest.NewRequest(http.MethodGet, "/session?lang=st", nil)
	req.Header.Set(middleware.SessionHeader, sid)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		SessionID  string `json:"session_id"`
		Lang       string `json:"lang"`
		Registered bool   `json:"registered"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, sid, body.SessionID)
	assert.Equal(t, "st", body.Lang)
	assert.True(t, body.Registered)
}
