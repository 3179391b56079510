package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/phase"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/store"
)

type fakeEvents struct {
	mu          sync.Mutex
	assessments []store.AssessmentEventData
	sessions    []store.SessionEventData
	err         error
}

func (f *fakeEvents) AppendAssessmentEvent(_ context.Context, data store.AssessmentEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assessments = append(f.assessments, data)
	return f.err
}

func (f *fakeEvents) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, data)
	return f.err
}

type observed struct {
	sector string
	phase  phase.Phase
	score  int
	passed bool
}

type fakeObserver struct{ got []observed }

func (f *fakeObserver) ObserveAssessment(sector string, p phase.Phase, score int, passed bool) {
	f.got = append(f.got, observed{sector, p, score, passed})
}

func demoDeps(events EventRecorder) Deps {
	provider := assessment.NewDemoProvider()
	cfg := assessment.DefaultConfig()
	return Deps{
		Generator: assessment.NewGenerator(provider, cfg),
		Evaluator: assessment.NewEvaluator(provider, cfg, nil),
		Events:    events,
	}
}

// answer submits k correct answers and wrong ones for the rest.
func answer(t *testing.T, s *Session, quiz *assessment.Quiz, k int) {
	t.Helper()
	for i, q := range quiz.Questions {
		opt := q.CorrectAnswer
		if i >= k {
			opt = (q.CorrectAnswer + 1) % assessment.OptionCount
		}
		require.NoError(t, s.SubmitAnswer(q.ID, opt))
	}
}

func TestFullCycle_Pass(t *testing.T) {
	events := &fakeEvents{}
	obs := &fakeObserver{}
	deps := demoDeps(events)
	deps.Observer = obs
	s := New("s1", progress.Demo(), deps)
	ctx := context.Background()

	quiz, err := s.StartAssessment(ctx, "Cloud Computing")
	require.NoError(t, err)
	assert.Equal(t, phase.Beginner, quiz.Phase)
	assert.Len(t, quiz.Questions, assessment.QuizSize)
	assert.Equal(t, StateAnswering, s.State())

	answer(t, s, quiz, 7)

	sc, err := s.FinishAssessment(ctx)
	require.NoError(t, err)
	assert.Equal(t, 70, sc.Score)
	assert.True(t, sc.Passed)
	assert.Equal(t, StateScored, s.State())

	// Progress is not applied until acknowledged.
	assert.Equal(t, 1250, s.Progress().Points)

	user, err := s.AcknowledgeResult(ctx)
	require.NoError(t, err)
	assert.Equal(t, phase.Basic, user.CurrentPhases["Cloud Computing"])
	assert.Equal(t, 1450, user.Points)
	assert.Contains(t, user.Badges, "Beginner Cloud Computing Badge")
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Quiz())

	require.Len(t, events.assessments, 1)
	ev := events.assessments[0]
	assert.Equal(t, sc.AssessmentID, ev.AssessmentID)
	assert.Equal(t, "s1", ev.SessionID)
	assert.Equal(t, "Beginner", ev.Phase)
	assert.Equal(t, "Basic", ev.NextPhase)
	assert.Equal(t, 200, ev.PointsAwarded)
	assert.Equal(t, "Beginner Cloud Computing Badge", ev.Badge)

	assert.Equal(t, []observed{{"Cloud Computing", phase.Beginner, 70, true}}, obs.got)

	// The next attempt is at the new phase.
	quiz, err = s.StartAssessment(ctx, "Cloud Computing")
	require.NoError(t, err)
	assert.Equal(t, phase.Basic, quiz.Phase)
}

func TestFullCycle_Fail(t *testing.T) {
	events := &fakeEvents{}
	s := New("s1", progress.Demo(), demoDeps(events))
	ctx := context.Background()

	quiz, err := s.StartAssessment(ctx, "Soft Skills")
	require.NoError(t, err)
	answer(t, s, quiz, 6)

	sc, err := s.FinishAssessment(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, sc.Score)
	assert.False(t, sc.Passed)

	before := s.Progress()
	user, err := s.AcknowledgeResult(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, user)

	require.Len(t, events.assessments, 1)
	assert.Zero(t, events.assessments[0].PointsAwarded)
	assert.Empty(t, events.assessments[0].Badge)
	assert.Equal(t, "Basic", events.assessments[0].NextPhase)
}

func TestStartAssessment_RejectsSecondAttempt(t *testing.T) {
	s := New("s1", progress.Demo(), demoDeps(nil))
	ctx := context.Background()

	_, err := s.StartAssessment(ctx, "Cloud Computing")
	require.NoError(t, err)

	_, err = s.StartAssessment(ctx, "Soft Skills")
	assert.ErrorIs(t, err, ErrAttemptInProgress)

	_, err = s.FinishAssessment(ctx)
	require.NoError(t, err)
	_, err = s.StartAssessment(ctx, "Soft Skills")
	assert.ErrorIs(t, err, ErrAttemptInProgress, "a scored result must be acknowledged first")
}

func TestStartAssessment_GenerationFailureStaysIdle(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	deps := Deps{
		Generator: assessment.NewGenerator(provider, assessment.DefaultConfig()),
		Evaluator: assessment.NewEvaluator(provider, assessment.DefaultConfig(), nil),
	}
	s := New("s1", progress.Demo(), deps)

	quiz, err := s.StartAssessment(context.Background(), "Cloud Computing")
	assert.Nil(t, quiz)
	assert.ErrorIs(t, err, ErrNoQuestions)
	var genErr *assessment.GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, StateIdle, s.State())

	// Nothing to evaluate against.
	_, err = s.FinishAssessment(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveAssessment)
}

func TestSubmitAnswer(t *testing.T) {
	s := New("s1", progress.Demo(), demoDeps(nil))

	assert.ErrorIs(t, s.SubmitAnswer(1, 0), ErrNoActiveAssessment)

	_, err := s.StartAssessment(context.Background(), "Cloud Computing")
	require.NoError(t, err)

	assert.NoError(t, s.SubmitAnswer(1, 2))
	assert.NoError(t, s.SubmitAnswer(1, 3), "re-submitting overwrites")
	assert.Equal(t, assessment.AnswerSet{1: 3}, s.Answers())

	assert.NoError(t, s.SubmitAnswer(42, 0), "unknown question ids are ignored")
	assert.Len(t, s.Answers(), 1)

	assert.ErrorIs(t, s.SubmitAnswer(2, 4), ErrInvalidOption)
	assert.ErrorIs(t, s.SubmitAnswer(2, -1), ErrInvalidOption)
	assert.Len(t, s.Answers(), 1)
}

func TestFinishAssessment_Idempotent(t *testing.T) {
	s := New("s1", progress.Demo(), demoDeps(nil))
	ctx := context.Background()

	_, err := s.FinishAssessment(ctx)
	assert.ErrorIs(t, err, ErrNoActiveAssessment)

	_, err = s.StartAssessment(ctx, "Cloud Computing")
	require.NoError(t, err)

	first, err := s.FinishAssessment(ctx)
	require.NoError(t, err)
	second, err := s.FinishAssessment(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 0, first.Score, "no answers means nothing correct")

	assert.ErrorIs(t, s.SubmitAnswer(1, 0), ErrNoActiveAssessment)
}

func TestAcknowledgeResult_RequiresScore(t *testing.T) {
	s := New("s1", progress.Demo(), demoDeps(nil))
	ctx := context.Background()

	_, err := s.AcknowledgeResult(ctx)
	assert.ErrorIs(t, err, ErrNoResult)

	_, err = s.StartAssessment(ctx, "Cloud Computing")
	require.NoError(t, err)
	_, err = s.AcknowledgeResult(ctx)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestAcknowledgeResult_EventFailureIsNotFatal(t *testing.T) {
	events := &fakeEvents{err: errors.New("disk full")}
	s := New("s1", progress.Demo(), demoDeps(events))
	ctx := context.Background()

	quiz, err := s.StartAssessment(ctx, "Cloud Computing")
	require.NoError(t, err)
	answer(t, s, quiz, 10)
	_, err = s.FinishAssessment(ctx)
	require.NoError(t, err)

	user, err := s.AcknowledgeResult(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1450, user.Points)
}

func TestCancelAssessment(t *testing.T) {
	s := New("s1", progress.Demo(), demoDeps(nil))
	ctx := context.Background()

	quiz, err := s.StartAssessment(ctx, "Cloud Computing")
	require.NoError(t, err)
	answer(t, s, quiz, 10)

	before := s.Progress()
	s.CancelAssessment()
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, before, s.Progress())
	assert.Empty(t, s.Answers())

	_, err = s.StartAssessment(ctx, "Cloud Computing")
	assert.NoError(t, err)
}

// blockingGenerator holds Generate until release is closed.
type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
	inner   assessment.Generator
}

func (g *blockingGenerator) Generate(ctx context.Context, sector string, p phase.Phase) ([]assessment.Question, error) {
	close(g.started)
	<-g.release
	return g.inner.Generate(ctx, sector, p)
}

func TestCancelAssessment_DuringGeneration(t *testing.T) {
	deps := demoDeps(nil)
	gen := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{}), inner: deps.Generator}
	deps.Generator = gen
	s := New("s1", progress.Demo(), deps)

	errc := make(chan error, 1)
	go func() {
		_, err := s.StartAssessment(context.Background(), "Cloud Computing")
		errc <- err
	}()

	<-gen.started
	assert.Equal(t, StateGenerating, s.State())
	_, err := s.StartAssessment(context.Background(), "Soft Skills")
	assert.ErrorIs(t, err, ErrAttemptInProgress)

	s.CancelAssessment()
	close(gen.release)

	assert.ErrorIs(t, <-errc, ErrCancelled)
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Quiz())
}

func TestProgress_IsACopy(t *testing.T) {
	s := New("s1", progress.Demo(), demoDeps(nil))
	p := s.Progress()
	p.Points = 0
	p.CurrentPhases["Cloud Computing"] = phase.Champ

	assert.Equal(t, 1250, s.Progress().Points)
	assert.Equal(t, phase.Beginner, s.Progress().PhaseFor("Cloud Computing"))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "scored", StateScored.String())
	assert.Equal(t, "unknown", State(99).String())
}

// blockingEvaluator holds Evaluate until release is closed.
type blockingEvaluator struct {
	started chan struct{}
	release chan struct{}
	inner   assessment.Evaluator
}

func (e *blockingEvaluator) Evaluate(ctx context.Context, sector string, p phase.Phase, questions []assessment.Question, answers assessment.AnswerSet) (*assessment.Scorecard, error) {
	close(e.started)
	<-e.release
	return e.inner.Evaluate(ctx, sector, p, questions, answers)
}

func startBlockedFinish(t *testing.T, events EventRecorder) (*Session, *blockingEvaluator, chan error) {
	t.Helper()
	deps := demoDeps(events)
	eval := &blockingEvaluator{started: make(chan struct{}), release: make(chan struct{}), inner: deps.Evaluator}
	deps.Evaluator = eval
	s := New("s1", progress.Demo(), deps)

	quiz, err := s.StartAssessment(context.Background(), "Cloud Computing")
	require.NoError(t, err)
	answer(t, s, quiz, 10)

	errc := make(chan error, 1)
	go func() {
		_, err := s.FinishAssessment(context.Background())
		errc <- err
	}()
	<-eval.started
	return s, eval, errc
}

func TestFinishAssessment_BusyWhileEvaluating(t *testing.T) {
	s, eval, errc := startBlockedFinish(t, nil)
	ctx := context.Background()

	assert.Equal(t, StateEvaluating, s.State())
	assert.ErrorIs(t, s.SubmitAnswer(1, 0), ErrBusy)
	_, err := s.FinishAssessment(ctx)
	assert.ErrorIs(t, err, ErrBusy)
	_, err = s.StartAssessment(ctx, "Soft Skills")
	assert.ErrorIs(t, err, ErrAttemptInProgress)
	_, err = s.AcknowledgeResult(ctx)
	assert.ErrorIs(t, err, ErrNoResult)

	close(eval.release)
	require.NoError(t, <-errc)
	assert.Equal(t, StateScored, s.State())
	assert.Equal(t, 100, s.Scorecard().Score)
}

func TestCancelAssessment_DuringEvaluation(t *testing.T) {
	events := &fakeEvents{}
	s, eval, errc := startBlockedFinish(t, events)

	s.CancelAssessment()
	close(eval.release)

	assert.ErrorIs(t, <-errc, ErrCancelled)
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Scorecard())
	assert.Equal(t, 1250, s.Progress().Points)
	assert.Equal(t, phase.Beginner, s.Progress().PhaseFor("Cloud Computing"))
	assert.Empty(t, events.assessments)

	_, err := s.AcknowledgeResult(context.Background())
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestQuiz_IsACopy(t *testing.T) {
	s := New("s1", progress.Demo(), demoDeps(nil))
	quiz, err := s.StartAssessment(context.Background(), "Cloud Computing")
	require.NoError(t, err)

	quiz.Questions[0].Text = "changed"
	quiz.Questions[0].Options[0] = "changed"
	quiz.Questions = quiz.Questions[:1]

	got := s.Quiz()
	require.Len(t, got.Questions, assessment.QuizSize)
	assert.NotEqual(t, "changed", got.Questions[0].Text)
	assert.NotEqual(t, "changed", got.Questions[0].Options[0])

	got.Questions[1].Options[2] = "changed"
	assert.NotEqual(t, "changed", s.Quiz().Questions[1].Options[2])
}

func TestStartAssessment_AnyRole(t *testing.T) {
	for _, role := range []progress.Role{progress.RoleEndUser, progress.RoleHR, progress.RoleAdmin} {
		t.Run(string(role), func(t *testing.T) {
			s := New("s1", progress.New("u1", "Jo", role, "Cloud Computing"), demoDeps(nil))
			quiz, err := s.StartAssessment(context.Background(), "Cloud Computing")
			require.NoError(t, err)
			answer(t, s, quiz, len(quiz.Questions))

			card, err := s.FinishAssessment(context.Background())
			require.NoError(t, err)
			assert.True(t, card.Passed)
		})
	}
}
