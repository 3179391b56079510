package progress

import (
	"fmt"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/phase"
)

// Outcome is a scored attempt in one sector.
type Outcome struct {
	Sector    string
	Scorecard *assessment.Scorecard
}

// BadgeName is the badge earned by passing sector at phase p.
func BadgeName(p phase.Phase, sector string) string {
	return fmt.Sprintf("%s %s Badge", p, sector)
}

// Apply returns the progress that results from out. It never mutates user.
//
// A failed (or missing) scorecard leaves progress unchanged. A pass moves
// the sector one phase up the ladder, Champ staying Champ, adds
// PointsPerPass and appends the badge for the phase just passed unless the
// user already holds it.
func Apply(user UserProgress, out Outcome) UserProgress {
	next := user.Clone()
	if out.Scorecard == nil || !out.Scorecard.Passed {
		return next
	}

	passed := user.PhaseFor(out.Sector)
	advanced, _ := phase.Next(passed)
	next.CurrentPhases[out.Sector] = advanced
	next.Points += PointsPerPass

	if badge := BadgeName(passed, out.Sector); !next.HasBadge(badge) {
		next.Badges = append(next.Badges, badge)
	}
	return next
}
