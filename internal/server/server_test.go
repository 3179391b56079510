package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/metrics"
	"github.com/abhisek/ksa/internal/phase"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() Config {
	return Config{
		StartRate:      100,
		DefaultSectors: []string{"Cloud Computing", "Soft Skills"},
		CORSOrigins:    []string{"http://localhost:5173"},
	}
}

func newTestServer(t *testing.T, cfg Config, provider llm.Provider) (*Server, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	acfg := assessment.DefaultConfig()
	manager := session.NewManager(session.Deps{
		Generator: assessment.NewGenerator(provider, acfg),
		Evaluator: assessment.NewEvaluator(provider, acfg, nil),
		Observer:  m,
	})
	return New(cfg, manager, m, nil), m
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, s *Server, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	assert.Equal(t, w.Code, env.Code)
	return w.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func createDemoSession(t *testing.T, s *Server) string {
	t.Helper()
	code, env := do(t, s, http.MethodPost, "/api/sessions", map[string]any{"demo": true})
	require.Equal(t, http.StatusCreated, code)
	return decode[sessionView](t, env.Data).SessionID
}

func TestFullAssessmentCycle(t *testing.T) {
	s, m := newTestServer(t, testConfig(), assessment.NewDemoProvider())
	id := createDemoSession(t, s)
	base := "/api/sessions/" + id

	code, env := do(t, s, http.MethodPost, base+"/assessment", map[string]any{"sector": "Cloud Computing"})
	require.Equal(t, http.StatusCreated, code, env.Message)
	quiz := decode[quizView](t, env.Data)
	require.Len(t, quiz.Questions, assessment.QuizSize)
	assert.Equal(t, phase.Beginner, quiz.Phase)
	assert.NotContains(t, string(env.Data), "correctAnswer", "answer key must not leak")

	// The demo quiz rotates the correct option by position; answer 8 right.
	for i, q := range quiz.Questions {
		opt := i % assessment.OptionCount
		if i >= 8 {
			opt = (opt + 1) % assessment.OptionCount
		}
		code, env = do(t, s, http.MethodPut, base+"/assessment/answers", map[string]any{"questionId": q.ID, "option": opt})
		require.Equal(t, http.StatusOK, code, env.Message)
	}

	code, env = do(t, s, http.MethodPost, base+"/assessment/finish", nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	sc := decode[scorecardView](t, env.Data)
	assert.Equal(t, 80, sc.Score)
	assert.True(t, sc.Passed)
	assert.NotEmpty(t, sc.AssessmentID)
	assert.NotEmpty(t, sc.GapAnalysis)
	assert.Len(t, sc.Questions, assessment.QuizSize)

	code, env = do(t, s, http.MethodPost, base+"/assessment/acknowledge", nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	view := decode[sessionView](t, env.Data)
	assert.Equal(t, "idle", view.State)
	assert.Equal(t, phase.Basic, view.User.CurrentPhases["Cloud Computing"])
	assert.Equal(t, 1450, view.User.Points)
	assert.Contains(t, view.User.Badges, "Beginner Cloud Computing Badge")

	code, env = do(t, s, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1450, decode[sessionView](t, env.Data).User.Points)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Assessments.WithLabelValues("Cloud Computing", "Beginner", "passed")))
}

func TestCreateSession(t *testing.T) {
	s, _ := newTestServer(t, testConfig(), assessment.NewDemoProvider())

	code, env := do(t, s, http.MethodPost, "/api/sessions", map[string]any{"name": "Jo", "role": "hr"})
	require.Equal(t, http.StatusCreated, code)
	view := decode[sessionView](t, env.Data)
	assert.Equal(t, progress.RoleHR, view.User.Role)
	assert.Equal(t, []string{"Cloud Computing", "Soft Skills"}, view.User.Sectors())
	assert.Equal(t, view.SessionID, view.User.ID)

	code, _ = do(t, s, http.MethodPost, "/api/sessions", map[string]any{"role": "hr"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, s, http.MethodPost, "/api/sessions", map[string]any{"name": "Jo", "role": "root"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestErrorMapping(t *testing.T) {
	s, _ := newTestServer(t, testConfig(), assessment.NewDemoProvider())
	id := createDemoSession(t, s)
	base := "/api/sessions/" + id

	code, _ := do(t, s, http.MethodGet, "/api/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, s, http.MethodPost, base+"/assessment/finish", nil)
	assert.Equal(t, http.StatusConflict, code, "finish without an attempt")

	code, _ = do(t, s, http.MethodPost, base+"/assessment/acknowledge", nil)
	assert.Equal(t, http.StatusConflict, code, "acknowledge without a result")

	code, _ = do(t, s, http.MethodPost, base+"/assessment", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, code, "missing sector")

	code, _ = do(t, s, http.MethodPost, base+"/assessment", map[string]any{"sector": "Soft Skills"})
	require.Equal(t, http.StatusCreated, code)

	code, _ = do(t, s, http.MethodPost, base+"/assessment", map[string]any{"sector": "Soft Skills"})
	assert.Equal(t, http.StatusConflict, code, "second attempt")

	code, _ = do(t, s, http.MethodPut, base+"/assessment/answers", map[string]any{"questionId": 1, "option": 7})
	assert.Equal(t, http.StatusBadRequest, code, "option out of range")

	code, _ = do(t, s, http.MethodPut, base+"/assessment/answers", map[string]any{"questionId": 1})
	assert.Equal(t, http.StatusBadRequest, code, "missing option")

	code, _ = do(t, s, http.MethodDelete, base+"/assessment", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = do(t, s, http.MethodGet, base+"/assessment", nil)
	assert.Equal(t, http.StatusConflict, code, "cancelled attempt is gone")

	code, _ = do(t, s, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = do(t, s, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, s, http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGenerationFailureIs503(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	s, _ := newTestServer(t, testConfig(), provider)
	id := createDemoSession(t, s)

	code, env := do(t, s, http.MethodPost, "/api/sessions/"+id+"/assessment", map[string]any{"sector": "Cloud Computing"})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.NotContains(t, env.Message, "down", "provider details stay in the logs")

	code, env = do(t, s, http.MethodGet, "/api/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "idle", decode[sessionView](t, env.Data).State)
}

func TestStartRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.StartRate = 1
	s, _ := newTestServer(t, cfg, assessment.NewDemoProvider())
	id := createDemoSession(t, s)
	path := "/api/sessions/" + id + "/assessment"

	code, _ := do(t, s, http.MethodPost, path, map[string]any{"sector": "Cloud Computing"})
	require.Equal(t, http.StatusCreated, code)
	code, _ = do(t, s, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, s, http.MethodPost, path, map[string]any{"sector": "Cloud Computing"})
	assert.Equal(t, http.StatusTooManyRequests, code)
}

func TestPhasesAndHealth(t *testing.T) {
	s, _ := newTestServer(t, testConfig(), assessment.NewDemoProvider())

	code, env := do(t, s, http.MethodGet, "/api/phases", nil)
	require.Equal(t, http.StatusOK, code)
	body := decode[struct {
		Phases        []phase.Phase `json:"phases"`
		PassThreshold int           `json:"passThreshold"`
	}](t, env.Data)
	assert.Equal(t, phase.All(), body.Phases)
	assert.Equal(t, 70, body.PassThreshold)

	code, _ = do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t, testConfig(), assessment.NewDemoProvider())

	req := httptest.NewRequest(http.MethodOptions, "/api/sessions", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("KSA_DEFAULT_SECTORS", "Marketing,Finance")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10, cfg.StartRate)
	assert.Equal(t, []string{"Marketing", "Finance"}, cfg.DefaultSectors)

	t.Setenv("KSA_START_RATE", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}
