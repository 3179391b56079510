package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDBCounter int

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// A distinct shared-cache name per test keeps the in-memory databases apart.
	testDBCounter++
	s, err := Open(fmt.Sprintf("file:ksa_test_%d?mode=memory&cache=shared", testDBCounter))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	assert.NotNil(t, s.Client())
	assert.NotNil(t, s.EventRepo())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	// journal_mode reports "memory" for in-memory databases, so it is not checked.
	for pragma, want := range map[string]string{"foreign_keys": "1", "synchronous": "1"} {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+pragma).Scan(&got))
		assert.Equal(t, want, got, "PRAGMA %s", pragma)
	}
}

func TestSequenceIsGlobalAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: SessionStart, UserName: "Alex Rivera"}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "assessment-gen", Success: true}))
	require.NoError(t, repo.AppendAssessmentEvent(ctx, sampleAssessment("Cloud Computing", 80, true)))

	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, llmEvents, 1)
	assessments, err := repo.QueryAssessmentEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, assessments, 1)

	assert.Equal(t, int64(2), llmEvents[0].Sequence)
	assert.Equal(t, int64(3), assessments[0].Sequence)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "gemini-2.5-flash", Model: "gemini-2.5-flash", Purpose: "assessment-gen", InputTokens: 300, OutputTokens: 1200, LatencyMs: 900, Success: true, RequestBody: "[user]\nquiz", ResponseBody: `{"questions":[]}`},
		{Provider: "gemini-2.5-flash", Model: "gemini-2.5-flash", Purpose: "assessment-eval", InputTokens: 200, OutputTokens: 100, LatencyMs: 300, Success: true},
		{Provider: "gemini-2.5-flash", Model: "gemini-2.5-flash", Purpose: "assessment-eval", LatencyMs: 100, Success: false, ErrorMessage: "rate limited"},
	}
	for _, c := range calls {
		require.NoError(t, repo.AppendLLMRequest(ctx, c))
	}

	t.Run("newest first", func(t *testing.T) {
		events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.False(t, events[0].Success)
		assert.Equal(t, "rate limited", events[0].ErrorMessage)
	})

	t.Run("purpose filter and limit", func(t *testing.T) {
		events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "assessment-eval", Limit: 1})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "assessment-eval", events[0].Purpose)
	})

	t.Run("get by id", func(t *testing.T) {
		events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "assessment-gen"})
		require.NoError(t, err)
		require.Len(t, events, 1)

		e, err := repo.GetLLMEvent(ctx, events[0].ID)
		require.NoError(t, err)
		require.NotNil(t, e)
		assert.Equal(t, "[user]\nquiz", e.RequestBody)
		assert.Equal(t, `{"questions":[]}`, e.ResponseBody)

		missing, err := repo.GetLLMEvent(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("usage by purpose", func(t *testing.T) {
		usage, err := repo.LLMUsageByPurpose(ctx)
		require.NoError(t, err)
		require.Len(t, usage, 2)
		assert.Equal(t, LLMPurposeUsage{Purpose: "assessment-eval", Calls: 2, Failures: 1, InputTokens: 200, OutputTokens: 100, AvgLatencyMs: 200}, usage[0])
		assert.Equal(t, "assessment-gen", usage[1].Purpose)
	})

	t.Run("usage by model skips failures", func(t *testing.T) {
		usage, err := repo.LLMUsageByModel(ctx)
		require.NoError(t, err)
		require.Len(t, usage, 1)
		assert.Equal(t, LLMModelUsage{Model: "gemini-2.5-flash", Calls: 2, InputTokens: 500, OutputTokens: 1300}, usage[0])
	})
}

func sampleAssessment(sector string, score int, passed bool) AssessmentEventData {
	data := AssessmentEventData{
		AssessmentID: "a-" + sector,
		SessionID:    "s1",
		UserName:     "Alex Rivera",
		Sector:       sector,
		Phase:        "Beginner",
		NextPhase:    "Beginner",
		Score:        score,
		Correct:      score / 10,
		Total:        10,
		Passed:       passed,
	}
	if passed {
		data.NextPhase = "Basic"
		data.PointsAwarded = 200
		data.Badge = "Beginner " + sector + " Badge"
	}
	return data
}

func TestAssessmentStatsBySector(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAssessmentEvent(ctx, sampleAssessment("Cloud Computing", 60, false)))
	require.NoError(t, repo.AppendAssessmentEvent(ctx, sampleAssessment("Cloud Computing", 90, true)))
	require.NoError(t, repo.AppendAssessmentEvent(ctx, sampleAssessment("Soft Skills", 70, true)))

	stats, err := repo.AssessmentStatsBySector(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	cloud := stats[0]
	assert.Equal(t, "Cloud Computing", cloud.Sector)
	assert.Equal(t, 2, cloud.Attempts)
	assert.Equal(t, 1, cloud.Passes)
	assert.Equal(t, 90, cloud.BestScore)
	assert.InDelta(t, 75.0, cloud.AvgScore, 0.001)
	assert.Equal(t, "Basic", cloud.HighestPhase)

	// A new user failing at Beginner does not lower the furthest phase reached.
	require.NoError(t, repo.AppendAssessmentEvent(ctx, sampleAssessment("Cloud Computing", 40, false)))
	stats, err = repo.AssessmentStatsBySector(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Basic", stats[0].HighestPhase)
	assert.Equal(t, 3, stats[0].Attempts)

	filtered, err := repo.QueryAssessmentEvents(ctx, QueryOpts{Sector: "Soft Skills"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Beginner Soft Skills Badge", filtered[0].Badge)
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: SessionStart}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: SessionEnd, Points: 1450}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s2", Action: SessionStart}))
	assert.Error(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s3", Action: "pause"}))

	n, err := repo.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("KSA_DB", filepath.Join(dir, "custom", "my.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom", "my.db"), p)
	assert.DirExists(t, filepath.Join(dir, "custom"))

	t.Setenv("KSA_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ksa", "ksa.db"), p)
}
