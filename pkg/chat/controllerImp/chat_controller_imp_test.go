package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morafo/entities"
	"morafo/pkg/chat/service"
	"morafo/pkg/middleware"
)

type fakeSvc struct {
	lang entities.Language
	sid  string
	send []entities.ChatMessage
	err  error
}

func (f *fakeSvc) History(sid string, lang entities.Language) ([]entities.ChatMessage, error) {
	f.sid, f.lang = sid, lang
	return []entities.ChatMessage{{ID: service.GreetingID, Role: entities.RoleModel, Text: service.Greeting(lang)}}, nil
}

func (f *fakeSvc) Send(_ context.Context, sid string, lang entities.Language, _ service.SendInput) ([]entities.ChatMessage, error) {
	f.sid, f.lang = sid, lang
	return f.send, f.err
}

func newEcho(svc service.ChatService) *echo.Echo {
	e := echo.New()
	g := e.Group("/api/v1", middleware.Session(), middleware.Language())
	noop := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	New(svc).Register(g, noop)
	return e
}

func TestHistory(t *testing.T) {
	svc := &fakeSvc{}
	e := newEcho(svc)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/chat/messages?lang=st", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Messages []entities.ChatMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Messages, 1)
	assert.Equal(t, entities.Sesotho, svc.lang)
	assert.NotEmpty(t, svc.sid)
}

func TestSend_StatusCodes(t *testing.T) {
	post := func(e *echo.Echo, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, post(newEcho(&fakeSvc{}), `{"text":""}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(newEcho(&fakeSvc{err: service.ErrBadImage}), `{"text":"x","image":"bad"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(newEcho(&fakeSvc{}), `{`).Code)

	ok := post(newEcho(&fakeSvc{send: []entities.ChatMessage{{Role: entities.RoleUser}, {Role: entities.RoleModel}}}), `{"text":"hi"}`)
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Contains(t, ok.Body.String(), `"messages"`)
}
