package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/phase"
)

func TestObserveLLMCall(t *testing.T) {
	m := New()

	m.ObserveLLMCall(llm.PurposeAssessmentGen, "gemini-2.5-flash", true, 2*time.Second, llm.Usage{InputTokens: 300, OutputTokens: 1500})
	m.ObserveLLMCall(llm.PurposeAssessmentGen, "gemini-2.5-flash", false, time.Second, llm.Usage{})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LLMCalls.WithLabelValues(llm.PurposeAssessmentGen, "gemini-2.5-flash", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LLMCalls.WithLabelValues(llm.PurposeAssessmentGen, "gemini-2.5-flash", "failure")))
	assert.Equal(t, 1500.0, testutil.ToFloat64(m.LLMTokens.WithLabelValues(llm.PurposeAssessmentGen, "gemini-2.5-flash", "output")))
}

func TestObserveAssessment(t *testing.T) {
	m := New()

	m.ObserveAssessment("Cloud Computing", phase.Beginner, 70, true)
	m.ObserveAssessment("Cloud Computing", phase.Beginner, 40, false)
	m.ObserveAssessment("Cloud Computing", phase.Beginner, 90, true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Assessments.WithLabelValues("Cloud Computing", "Beginner", "passed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Assessments.WithLabelValues("Cloud Computing", "Beginner", "failed")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/phases", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", m.Handler())

	for range 3 {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/phases", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues("GET", "/api/phases", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues("GET", "unmatched", "404")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{endpoint="/api/phases",method="GET",status="200"} 3`), body)
	assert.Contains(t, body, "go_goroutines")
}
