package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
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

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates LLM usage for one purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// HintEventData records one hint shown to the learner.
type HintEventData struct {
	MissionID  string
	QuestionID string
	Guess      string
	HintText   string
	Source     string
	LatencyMs  int64
}

// Mission lifecycle actions.
const (
	MissionActionStart         = "start"
	MissionActionStageComplete = "stage_complete"
	MissionActionLaunch        = "launch"
	MissionActionComplete      = "complete"
	MissionActionAbort         = "abort"
)

// MissionEventData records a mission lifecycle transition. The log is an
// audit trail only; missions are never resumed from it.
type MissionEventData struct {
	MissionID  string
	Commander  string
	Action     string
	StageIndex int
	QuestionID string
	FuelLevel  float64
}

// AnswerEventData records one submitted answer.
type AnswerEventData struct {
	MissionID     string
	QuestionID    string
	LearnerAnswer string
	Correct       bool
	Attempt       int
}

// MissionSummaryRecord summarises one mission for history listings.
type MissionSummaryRecord struct {
	MissionID      string
	Commander      string
	StartedAt      time.Time
	Outcome        string // last lifecycle action
	FuelLevel      float64
	Answers        int
	CorrectAnswers int
	Hints          int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	// GetLLMEvent returns a single LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	AppendHintEvent(ctx context.Context, data HintEventData) error
	AppendMissionEvent(ctx context.Context, data MissionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// RecentMissions summarises the most recently started missions, newest
	// first.
	RecentMissions(ctx context.Context, limit int) ([]MissionSummaryRecord, error)
}
