package store

import (
	"context"
	"fmt"

	"github.com/abhisek/ksa/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if data.Action != SessionStart && data.Action != SessionEnd {
		return fmt.Errorf("invalid session action %q", data.Action)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetUserName(data.UserName).
		SetRole(data.Role).
		SetPoints(data.Points).
		SetBadges(data.Badges).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

// CountSessions returns how many sessions were ever started.
func (r *eventRepo) CountSessions(ctx context.Context) (int, error) {
	n, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action(SessionStart)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
