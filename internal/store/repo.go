package store

import (
	"context"
	"time"
)

// QueryOpts filters and pages event queries. Zero values disable a filter.
type QueryOpts struct {
	Limit  int
	After  int64 // sequence > After
	Before int64 // sequence < Before
	From   time.Time
	To     time.Time

	// Purpose restricts LLM event queries to one purpose label.
	Purpose string

	// Sector restricts assessment event queries to one sector.
	Sector string
}

// LLMRequestEventData is one AI provider call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates calls per purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates successful token usage per served model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AssessmentEventData is an acknowledged assessment result.
type AssessmentEventData struct {
	AssessmentID        string
	SessionID           string
	UserName            string
	Sector              string
	Phase               string
	NextPhase           string
	Score               int
	Correct             int
	Total               int
	Passed              bool
	PointsAwarded       int
	Badge               string
	RemediationFallback bool
}

// AssessmentEventRecord is a stored assessment event.
type AssessmentEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AssessmentEventData
}

// SectorStats summarizes assessment history for one sector.
type SectorStats struct {
	Sector       string
	Attempts     int
	Passes       int
	AvgScore     float64
	BestScore    int
	HighestPhase string // furthest next_phase on the ladder across all attempts
}

// Session lifecycle actions.
const (
	SessionStart = "start"
	SessionEnd   = "end"
)

// SessionEventData marks a user session opening or closing.
type SessionEventData struct {
	SessionID string
	Action    string
	UserName  string
	Role      string
	Points    int
	Badges    int
}

// EventRepo is append and query access to the event log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)
	// GetLLMEvent returns nil, nil when id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error
	QueryAssessmentEvents(ctx context.Context, opts QueryOpts) ([]AssessmentEventRecord, error)
	AssessmentStatsBySector(ctx context.Context) ([]SectorStats, error)

	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	CountSessions(ctx context.Context) (int, error)
}
