package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mtgsim/internal/catalog"
	"mtgsim/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	reg := catalog.NewRegistry(catalog.StarterCards)
	return SetupRouter(session.NewManager(reg))
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, r *gin.Engine) createResponse {
	t.Helper()
	seed := int64(42)
	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions", createRequest{
		Opponent: "random", PlayerDeck: "red-aggro", OpponentDeck: "red-aggro", Seed: &seed,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp createResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestCreateAndStep(t *testing.T) {
	r := newTestRouter()
	created := createSession(t, r)
	assert.NotEmpty(t, created.SessionID)
	assert.Equal(t, int64(42), created.Seed)
	assert.Len(t, created.InitialStepResponse.ActionMask, 200)
	assert.NotEmpty(t, created.InitialStepResponse.LegalActions)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+created.SessionID+"/step", stepRequest{ActionIndex: 0})
	require.Equal(t, http.StatusOK, w.Code)
	var resp stepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Positive(t, resp.Info.StepCount)
}

func TestStep_UnknownSessionIs404(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/nope/step", stepRequest{ActionIndex: 0})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReset(t *testing.T) {
	r := newTestRouter()
	created := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+created.SessionID+"/reset", resetRequest{})
	require.Equal(t, http.StatusOK, w.Code)
	var resp stepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Info.StepCount)
}

func TestGetStateAndLegalActions(t *testing.T) {
	r := newTestRouter()
	created := createSession(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions/"+created.SessionID+"/state", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/sessions/"+created.SessionID+"/legal-actions?perspective=player", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var actions []legalActionDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actions))
	assert.NotEmpty(t, actions)
}

func TestQueryExpert(t *testing.T) {
	r := newTestRouter()
	created := createSession(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions/"+created.SessionID+"/query-expert?kind=random", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp queryExpertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, resp.ActionIndex, 0)
}

func TestDelete(t *testing.T) {
	r := newTestRouter()
	created := createSession(t, r)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/sessions/"+created.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")

	w = doJSON(t, r, http.MethodDelete, "/api/v1/sessions/"+created.SessionID, nil)
	assert.Contains(t, w.Body.String(), "false")
}

func TestBatchCreateAndDelete(t *testing.T) {
	r := newTestRouter()
	seed := int64(7)
	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/batch", []createRequest{
		{Opponent: "random", PlayerDeck: "red-aggro", OpponentDeck: "red-aggro", Seed: &seed},
		{Opponent: "random", PlayerDeck: "blue-control", OpponentDeck: "green-ramp", Seed: &seed},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created []createResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created, 2)

	ids := []string{created[0].SessionID, created[1].SessionID}
	w = doJSON(t, r, http.MethodPost, "/api/v1/sessions/batch/delete", ids)
	require.Equal(t, http.StatusOK, w.Code)
	var deleted map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	assert.True(t, deleted[ids[0]])
	assert.True(t, deleted[ids[1]])
}

func TestOpponentStep_RequiresExternalOpponent(t *testing.T) {
	r := newTestRouter()
	created := createSession(t, r) // opponent kind "random"

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/"+created.SessionID+"/opponent-step", stepRequest{ActionIndex: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDebugRouter_SessionCount(t *testing.T) {
	r := newTestRouter()
	createSession(t, r)

	w := doJSON(t, r, http.MethodGet, "/debug/sessions/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}
