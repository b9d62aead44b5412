package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docbot/web/internal/model"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIStatusEndpoints(t *testing.T) {
	app := newTestApp(t)

	w := app.get(t, "/api/v1/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DocBot backend is running")

	w = app.get(t, "/api/v1/rag-status")
	require.Equal(t, http.StatusOK, w.Code)
	var status model.RAGStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.RetrieverReady)

	app.backend.fail("/", http.StatusInternalServerError, `{}`)
	w = app.get(t, "/api/v1/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"Unable to connect to server","kind":"service_unavailable"}`, w.Body.String())
}

func TestAPIAnalyzeSymptoms(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		failStatus int
		failBody   string
		wantCode   int
		wantCalls  int
	}{
		{name: "ok", body: `{"symptoms":"headache","age":34}`, wantCode: http.StatusOK, wantCalls: 1},
		{name: "missing-symptoms", body: `{"age":34}`, wantCode: http.StatusBadRequest},
		{name: "blank-symptoms", body: `{"symptoms":"   "}`, wantCode: http.StatusBadRequest},
		{name: "bad-gender", body: `{"symptoms":"cough","gender":"x"}`, wantCode: http.StatusBadRequest},
		{name: "backend-rejects", body: `{"symptoms":"a"}`, failStatus: 400, failBody: `{"detail":"Too short"}`, wantCode: http.StatusBadRequest, wantCalls: 1},
		{name: "backend-down", body: `{"symptoms":"a"}`, failStatus: 500, failBody: `{}`, wantCode: http.StatusServiceUnavailable, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			if tt.failStatus != 0 {
				app.backend.fail("/analyze-symptoms", tt.failStatus, tt.failBody)
			}

			w := app.postJSON(t, "/api/v1/analyze-symptoms", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Len(t, app.backend.Calls(), tt.wantCalls)
		})
	}
}

func TestAPIAnalyzeSymptomsDetailMessage(t *testing.T) {
	app := newTestApp(t)
	app.backend.fail("/analyze-symptoms", http.StatusBadRequest, `{"detail":"Too short"}`)

	w := app.postJSON(t, "/api/v1/analyze-symptoms", `{"symptoms":"a"}`)
	assert.JSONEq(t, `{"error":"Too short","kind":"validation"}`, w.Body.String())
}

func TestAPIChatAssignsConversationID(t *testing.T) {
	app := newTestApp(t)

	w := app.postJSON(t, "/api/v1/chat", `{"message":"hi"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ChatAPIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Drink plenty of fluids.", resp.Response)
	assert.True(t, strings.HasPrefix(resp.ConversationID, "conv-"))
	assert.Equal(t, resp.ConversationID, app.backend.Calls()[0].Body["conversation_id"])

	w = app.postJSON(t, "/api/v1/chat", `{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, app.backend.Calls(), 1)
}

func TestAPIMedicalInfo(t *testing.T) {
	app := newTestApp(t)

	w := app.get(t, "/api/v1/medical-info/Asthma")
	require.Equal(t, http.StatusOK, w.Code)
	var info model.ConditionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "Asthma", info.Condition)
	assert.Equal(t, "## Overview\nAsthma is common.\n\n1. Rest\n\n2. Fluids", info.Information)

	app.backend.fail("/medical-info/", http.StatusNotFound, `{"detail":"Condition not found"}`)
	w = app.get(t, "/api/v1/medical-info/Nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Condition not found")
}

func TestAPIMedicalInfoKeepsEncodedSlash(t *testing.T) {
	app := newTestApp(t)

	w := app.get(t, "/api/v1/medical-info/HIV%2FAIDS")
	require.Equal(t, http.StatusOK, w.Code)
	var info model.ConditionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "HIV/AIDS", info.Condition)

	calls := app.backend.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/medical-info/HIV/AIDS", calls[0].Path)

	w = app.get(t, "/api/v1/medical-info/")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, app.backend.Calls(), 1)
}

func TestAPICORS(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := app.serve(t, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = app.serve(t, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestChatWebsocket(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.router)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/chat/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	read := func() model.ChatEvent {
		var ev model.ChatEvent
		require.NoError(t, conn.ReadJSON(&ev))
		return ev
	}

	connected := read()
	assert.Equal(t, EventConnected, connected.Type)
	assert.True(t, strings.HasPrefix(connected.ConversationID, "conv-"))

	require.NoError(t, conn.WriteJSON(model.ChatInbound{Text: "  "}))
	ev := read()
	assert.Equal(t, EventError, ev.Type)
	require.NotNil(t, ev.Notice)
	assert.Equal(t, "Please enter a message", ev.Notice.Message)

	require.NoError(t, conn.WriteJSON(model.ChatInbound{Text: "hello"}))

	user := read()
	assert.Equal(t, EventMessage, user.Type)
	require.NotNil(t, user.Message)
	assert.Equal(t, model.RoleUser, user.Message.Role)
	assert.Equal(t, "hello", user.Message.Content)

	busy := read()
	assert.Equal(t, EventBusy, busy.Type)
	assert.True(t, busy.Busy)

	reply := read()
	assert.Equal(t, EventMessage, reply.Type)
	require.NotNil(t, reply.Message)
	assert.Equal(t, "Drink plenty of fluids.", reply.Message.Content)
	assert.Contains(t, reply.HTML, `<p class="md-paragraph">`)

	idle := read()
	assert.Equal(t, EventBusy, idle.Type)
	assert.False(t, idle.Busy)

	calls := app.backend.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, connected.ConversationID, calls[0].Body["conversation_id"])
}

func TestChatWebsocketRejectsForeignOrigin(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.router)
	t.Cleanup(srv.Close)

	header := http.Header{"Origin": {"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/chat/ws", header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
