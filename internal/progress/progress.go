// Package progress holds a user's per-sector standing and the rules that
// update it after an assessment.
package progress

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/abhisek/ksa/internal/phase"
)

// PointsPerPass is awarded for every passed assessment.
const PointsPerPass = 200

// Role is the user's portal role. It is shown on the profile and does not
// gate any operation.
type Role string

const (
	RoleEndUser Role = "END_USER"
	RoleHR      Role = "HR"
	RoleAdmin   Role = "ADMIN"
)

// ParseRole accepts the role names case-insensitively. Empty means END_USER.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(RoleEndUser):
		return RoleEndUser, nil
	case string(RoleHR):
		return RoleHR, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// UserProgress is a user's standing. A sector missing from CurrentPhases is
// at phase.First().
type UserProgress struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Role          Role                   `json:"role"`
	Badges        []string               `json:"badges"`
	Points        int                    `json:"points"`
	CurrentPhases map[string]phase.Phase `json:"currentPhases"`
}

// New returns a fresh user with no badges or points. Each of sectors is
// placed at the first phase.
func New(id, name string, role Role, sectors ...string) UserProgress {
	u := UserProgress{
		ID:            id,
		Name:          name,
		Role:          role,
		Badges:        []string{},
		CurrentPhases: make(map[string]phase.Phase, len(sectors)),
	}
	for _, s := range sectors {
		if s = strings.TrimSpace(s); s != "" {
			u.CurrentPhases[s] = phase.First()
		}
	}
	return u
}

// Demo returns the sample user the portal starts with when nobody signs in.
func Demo() UserProgress {
	return UserProgress{
		ID:     "u1",
		Name:   "Alex Rivera",
		Role:   RoleEndUser,
		Badges: []string{"Beginner Python", "Basic SQL"},
		Points: 1250,
		CurrentPhases: map[string]phase.Phase{
			"Cloud Computing":    phase.Beginner,
			"Project Management": phase.Intermediate,
			"Soft Skills":        phase.Basic,
		},
	}
}

// PhaseFor returns the user's phase in sector.
func (u UserProgress) PhaseFor(sector string) phase.Phase {
	if p, ok := u.CurrentPhases[sector]; ok && phase.Valid(p) {
		return p
	}
	return phase.First()
}

// HasBadge reports whether the user already holds badge.
func (u UserProgress) HasBadge(badge string) bool {
	return slices.Contains(u.Badges, badge)
}

// Sectors returns the sectors with a recorded phase, sorted.
func (u UserProgress) Sectors() []string {
	return slices.Sorted(maps.Keys(u.CurrentPhases))
}

// Clone returns a deep copy.
func (u UserProgress) Clone() UserProgress {
	out := u
	out.Badges = slices.Clone(u.Badges)
	if out.Badges == nil {
		out.Badges = []string{}
	}
	out.CurrentPhases = maps.Clone(u.CurrentPhases)
	if out.CurrentPhases == nil {
		out.CurrentPhases = map[string]phase.Phase{}
	}
	return out
}
