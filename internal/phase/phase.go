package phase

import (
	"fmt"
	"strings"
)

// Phase is one rung of the proficiency ladder. A user holds one phase per sector.
type Phase string

const (
	Beginner          Phase = "Beginner"
	Basic             Phase = "Basic"
	PreIntermediate   Phase = "Pre-intermediate"
	Intermediate      Phase = "Intermediate"
	UpperIntermediate Phase = "Upper-intermediate"
	Advance           Phase = "Advance"
	Master            Phase = "Master"
	Champ             Phase = "Champ"
)

// ladder is the fixed, totally ordered sequence of phases.
var ladder = [...]Phase{
	Beginner,
	Basic,
	PreIntermediate,
	Intermediate,
	UpperIntermediate,
	Advance,
	Master,
	Champ,
}

// Len is the number of phases on the ladder.
const Len = len(ladder)

// All returns the ladder in order. The returned slice is a copy.
func All() []Phase {
	out := make([]Phase, Len)
	copy(out, ladder[:])
	return out
}

// First returns the entry phase for a sector the user has never been assessed in.
func First() Phase {
	return ladder[0]
}

// Index returns the position of p on the ladder, or -1 if p is not a ladder entry.
func Index(p Phase) int {
	for i, l := range ladder {
		if l == p {
			return i
		}
	}
	return -1
}

// Valid reports whether p is a ladder entry.
func Valid(p Phase) bool {
	return Index(p) >= 0
}

// IsTerminal reports whether p is the last rung.
func IsTerminal(p Phase) bool {
	return p == ladder[Len-1]
}

// Next returns the phase after p. The terminal phase is absorbing: Next(Champ)
// returns (Champ, false). An invalid phase returns ("", false).
func Next(p Phase) (Phase, bool) {
	i := Index(p)
	switch {
	case i < 0:
		return "", false
	case i == Len-1:
		return p, false
	default:
		return ladder[i+1], true
	}
}

// Parse resolves a phase name case-insensitively. Spaces and underscores are
// accepted in place of hyphens ("upper intermediate", "PRE_INTERMEDIATE").
func Parse(s string) (Phase, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "-", "_", "-").Replace(norm)
	for _, p := range ladder {
		if strings.ToLower(string(p)) == norm {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown phase %q", s)
}

// String implements fmt.Stringer.
func (p Phase) String() string {
	return string(p)
}
