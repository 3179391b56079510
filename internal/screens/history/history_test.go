package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ksa/internal/store"
)

// fakeRepo serves canned assessment history. Unused methods panic via the
// nil embedded interface.
type fakeRepo struct {
	store.EventRepo
	attempts []store.AssessmentEventRecord
	stats    []store.SectorStats
	err      error
}

func (f *fakeRepo) QueryAssessmentEvents(context.Context, store.QueryOpts) ([]store.AssessmentEventRecord, error) {
	return f.attempts, f.err
}

func (f *fakeRepo) AssessmentStatsBySector(context.Context) ([]store.SectorStats, error) {
	return f.stats, nil
}

func sampleRepo() *fakeRepo {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return &fakeRepo{
		attempts: []store.AssessmentEventRecord{
			{Sequence: 2, Timestamp: ts, AssessmentEventData: store.AssessmentEventData{
				Sector: "Cloud Computing", Phase: "Beginner", NextPhase: "Basic",
				Score: 80, Correct: 8, Total: 10, Passed: true, PointsAwarded: 200,
				Badge: "Beginner Cloud Computing Badge",
			}},
			{Sequence: 1, Timestamp: ts, AssessmentEventData: store.AssessmentEventData{
				Sector: "Soft Skills", Phase: "Basic", NextPhase: "Basic",
				Score: 40, Correct: 4, Total: 10, RemediationFallback: true,
			}},
		},
		stats: []store.SectorStats{
			{Sector: "Cloud Computing", Attempts: 1, Passes: 1, AvgScore: 80, BestScore: 80, HighestPhase: "Basic"},
		},
	}
}

func load(s *HistoryScreen) {
	s.Update(s.Init()())
}

func TestHistoryLists(t *testing.T) {
	s := New(sampleRepo())
	if !strings.Contains(s.View(120, 40), "Loading") {
		t.Error("expected loading state")
	}

	load(s)
	view := s.View(120, 40)
	for _, want := range []string{"Mar 14, 2026", "Cloud Computing", "not passed", "1 passed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryExpand(t *testing.T) {
	s := New(sampleRepo())
	load(s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(120, 40)
	if !strings.Contains(view, "8 of 10 correct") || !strings.Contains(view, "Beginner Cloud Computing Badge") {
		t.Error("expanded row should show details")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 40), "general guidance shown") {
		t.Error("fallback attempts should be flagged")
	}
}

func TestHistoryEmptyAndError(t *testing.T) {
	s := New(&fakeRepo{})
	load(s)
	if !strings.Contains(s.View(120, 40), "No assessments yet") {
		t.Error("expected empty state")
	}

	s = New(&fakeRepo{err: errors.New("db locked")})
	load(s)
	if !strings.Contains(s.View(120, 40), "db locked") {
		t.Error("expected error state")
	}
}
