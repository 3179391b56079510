package session

// State is where a session is in the assessment cycle.
type State int

const (
	StateIdle       State = iota // No attempt; a new assessment may start
	StateGenerating              // Waiting for the quiz
	StateAnswering               // Quiz shown, answers being collected
	StateEvaluating              // Waiting for the scorecard
	StateScored                  // Scorecard held until acknowledged
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerating:
		return "generating"
	case StateAnswering:
		return "answering"
	case StateEvaluating:
		return "evaluating"
	case StateScored:
		return "scored"
	}
	return "unknown"
}
