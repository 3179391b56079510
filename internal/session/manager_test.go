package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/store"
)

func TestManager_CreateGetDelete(t *testing.T) {
	events := &fakeEvents{}
	m := NewManager(demoDeps(events))
	ctx := context.Background()

	s := m.Create(ctx, progress.New("", "Jo", progress.RoleEndUser, "Cloud Computing"))
	require.NotEmpty(t, s.ID())
	assert.Equal(t, s.ID(), s.Progress().ID, "user without id takes the session id")

	got, ok := m.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Len())

	assert.True(t, m.Delete(ctx, s.ID()))
	assert.False(t, m.Delete(ctx, s.ID()))
	_, ok = m.Get(s.ID())
	assert.False(t, ok)

	require.Len(t, events.sessions, 2)
	assert.Equal(t, store.SessionStart, events.sessions[0].Action)
	assert.Equal(t, store.SessionEnd, events.sessions[1].Action)
	assert.Equal(t, "Jo", events.sessions[1].UserName)
}

func TestManager_KeepsUserID(t *testing.T) {
	m := NewManager(demoDeps(nil))
	s := m.Create(context.Background(), progress.Demo())
	assert.Equal(t, "u1", s.Progress().ID)
	assert.NotEqual(t, "u1", s.ID())
}

func TestManager_DeleteCancelsAttempt(t *testing.T) {
	m := NewManager(demoDeps(nil))
	ctx := context.Background()
	s := m.Create(ctx, progress.Demo())

	_, err := s.StartAssessment(ctx, "Cloud Computing")
	require.NoError(t, err)
	m.Delete(ctx, s.ID())

	assert.Equal(t, StateIdle, s.State())
}

func TestManager_Sweep(t *testing.T) {
	m := NewManager(demoDeps(nil))
	ctx := context.Background()
	stale := m.Create(ctx, progress.Demo())
	fresh := m.Create(ctx, progress.Demo())

	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-2 * time.Hour)
	stale.mu.Unlock()

	assert.Equal(t, 1, m.Sweep(ctx, time.Hour))
	_, ok := m.Get(stale.ID())
	assert.False(t, ok)
	_, ok = m.Get(fresh.ID())
	assert.True(t, ok)
}

func TestManager_ConcurrentSessions(t *testing.T) {
	m := NewManager(demoDeps(nil))
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := m.Create(ctx, progress.Demo())
			quiz, err := s.StartAssessment(ctx, "Cloud Computing")
			if !assert.NoError(t, err) {
				return
			}
			for _, q := range quiz.Questions {
				assert.NoError(t, s.SubmitAnswer(q.ID, q.CorrectAnswer))
			}
			_, err = s.FinishAssessment(ctx)
			assert.NoError(t, err)
			user, err := s.AcknowledgeResult(ctx)
			assert.NoError(t, err)
			assert.Equal(t, 1450, user.Points)
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, m.Len())
}
