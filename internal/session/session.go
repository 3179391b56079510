// Package session runs one user's assessment cycle: start, answer, finish,
// acknowledge. It is the boundary both the TUI and the HTTP API drive.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/logger"
	"github.com/abhisek/ksa/internal/phase"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/store"
)

// EventRecorder persists session and assessment audit events.
// store.EventRepo satisfies it.
type EventRecorder interface {
	AppendAssessmentEvent(ctx context.Context, data store.AssessmentEventData) error
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
}

// Observer receives acknowledged assessment outcomes.
type Observer interface {
	ObserveAssessment(sector string, p phase.Phase, score int, passed bool)
}

// Deps are the collaborators shared by every session.
type Deps struct {
	Generator assessment.Generator
	Evaluator assessment.Evaluator

	// Events and Observer are optional.
	Events   EventRecorder
	Observer Observer

	// Logger may be nil.
	Logger *logger.Logger
}

// Session owns one user's progress and at most one assessment attempt.
// All methods are safe for concurrent use. Provider calls run without the
// lock held.
type Session struct {
	id   string
	deps Deps
	log  *logger.Logger

	mu         sync.Mutex
	user       progress.UserProgress
	state      State
	quiz       *assessment.Quiz
	answers    assessment.AnswerSet
	scorecard  *assessment.Scorecard
	attempt    uint64
	lastActive time.Time
}

// New creates an idle session for user.
func New(id string, user progress.UserProgress, deps Deps) *Session {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		id:         id,
		deps:       deps,
		log:        log.With("session_id", id),
		user:       user.Clone(),
		lastActive: time.Now(),
	}
}

func (s *Session) ID() string { return s.id }

// StartAssessment generates a quiz for sector at the user's current phase.
// On a generation failure the session stays idle and the error wraps both
// ErrNoQuestions and the *assessment.GenerationError.
func (s *Session) StartAssessment(ctx context.Context, sector string) (*assessment.Quiz, error) {
	sector = strings.TrimSpace(sector)

	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return nil, ErrAttemptInProgress
	}
	p := s.user.PhaseFor(sector)
	s.state = StateGenerating
	s.attempt++
	attempt := s.attempt
	s.touch()
	s.mu.Unlock()

	questions, err := s.deps.Generator.Generate(ctx, sector, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt != attempt || s.state != StateGenerating {
		return nil, ErrCancelled
	}
	if err != nil {
		s.state = StateIdle
		s.log.Warn("assessment generation failed", "sector", sector, "phase", p, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrNoQuestions, err)
	}

	s.quiz = &assessment.Quiz{Sector: sector, Phase: p, Questions: questions}
	s.answers = assessment.AnswerSet{}
	s.scorecard = nil
	s.state = StateAnswering
	s.touch()
	s.log.Info("assessment started", "sector", sector, "phase", p, "questions", len(questions))

	return s.quiz.Clone(), nil
}

// SubmitAnswer records option for questionID, replacing any earlier choice.
// Unknown question IDs are ignored.
func (s *Session) SubmitAnswer(questionID, option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateAnswering:
	case StateEvaluating:
		return ErrBusy
	default:
		return ErrNoActiveAssessment
	}

	q, ok := s.quiz.Question(questionID)
	if !ok {
		return nil
	}
	if option < 0 || option >= len(q.Options) {
		return fmt.Errorf("%w: %d", ErrInvalidOption, option)
	}
	s.answers[questionID] = option
	s.touch()
	return nil
}

// FinishAssessment grades the answers. Once scored, repeated calls return
// the same scorecard without contacting the provider again.
func (s *Session) FinishAssessment(ctx context.Context) (*assessment.Scorecard, error) {
	s.mu.Lock()
	switch s.state {
	case StateScored:
		sc := s.scorecard
		s.mu.Unlock()
		return sc, nil
	case StateEvaluating:
		s.mu.Unlock()
		return nil, ErrBusy
	case StateAnswering:
	default:
		s.mu.Unlock()
		return nil, ErrNoActiveAssessment
	}
	quiz := s.quiz
	answers := s.answers.Clone()
	attempt := s.attempt
	s.state = StateEvaluating
	s.touch()
	s.mu.Unlock()

	sc, err := s.deps.Evaluator.Evaluate(ctx, quiz.Sector, quiz.Phase, quiz.Questions, answers)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt != attempt || s.state != StateEvaluating {
		return nil, ErrCancelled
	}
	if err != nil {
		s.state = StateAnswering
		return nil, fmt.Errorf("evaluate assessment: %w", err)
	}

	s.scorecard = sc
	s.state = StateScored
	s.touch()
	s.log.Info("assessment scored",
		"sector", quiz.Sector, "phase", quiz.Phase,
		"score", sc.Score, "passed", sc.Passed, "remediation_fallback", sc.RemediationFallback)
	return sc, nil
}

// AcknowledgeResult applies the scorecard to the user's progress, records
// the outcome and returns the session to idle.
func (s *Session) AcknowledgeResult(ctx context.Context) (progress.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateScored {
		return progress.UserProgress{}, ErrNoResult
	}

	before := s.user
	sector := s.quiz.Sector
	after := progress.Apply(before, progress.Outcome{Sector: sector, Scorecard: s.scorecard})

	s.record(ctx, before, after)
	if s.deps.Observer != nil {
		s.deps.Observer.ObserveAssessment(sector, s.quiz.Phase, s.scorecard.Score, s.scorecard.Passed)
	}

	s.user = after
	s.reset()
	s.touch()
	return after.Clone(), nil
}

// CancelAssessment discards the current attempt without touching progress.
// An in-flight start or finish then returns ErrCancelled.
func (s *Session) CancelAssessment() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		s.log.Info("assessment cancelled", "state", s.state.String())
	}
	s.attempt++
	s.reset()
	s.touch()
}

// Progress returns a copy of the user's progress.
func (s *Session) Progress() progress.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Quiz returns the active quiz, or nil when idle or generating.
func (s *Session) Quiz() *assessment.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quiz == nil {
		return nil
	}
	return s.quiz.Clone()
}

// Answers returns a copy of the answers collected so far.
func (s *Session) Answers() assessment.AnswerSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.answers == nil {
		return assessment.AnswerSet{}
	}
	return s.answers.Clone()
}

// Scorecard returns the held scorecard, or nil before scoring.
func (s *Session) Scorecard() *assessment.Scorecard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scorecard
}

// IdleSince reports when the session was last used.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// record writes the assessment event. Failures are logged, never returned.
func (s *Session) record(ctx context.Context, before, after progress.UserProgress) {
	if s.deps.Events == nil {
		return
	}

	sc := s.scorecard
	data := store.AssessmentEventData{
		AssessmentID:        sc.AssessmentID,
		SessionID:           s.id,
		UserName:            before.Name,
		Sector:              s.quiz.Sector,
		Phase:               string(s.quiz.Phase),
		NextPhase:           string(after.PhaseFor(s.quiz.Sector)),
		Score:               sc.Score,
		Correct:             sc.Correct,
		Total:               sc.Total,
		Passed:              sc.Passed,
		PointsAwarded:       after.Points - before.Points,
		RemediationFallback: sc.RemediationFallback,
	}
	if len(after.Badges) > len(before.Badges) {
		data.Badge = after.Badges[len(after.Badges)-1]
	}

	if err := s.deps.Events.AppendAssessmentEvent(context.WithoutCancel(ctx), data); err != nil {
		s.log.Warn("failed to record assessment event", "assessment_id", sc.AssessmentID, "error", err)
	}
}

func (s *Session) reset() {
	s.state = StateIdle
	s.quiz = nil
	s.answers = nil
	s.scorecard = nil
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}
