package mission

import "github.com/google/uuid"

// Phase is the top-level game phase. It only moves forward
// (Intro -> Playing -> Completed) until a restart.
type Phase int

const (
	PhaseIntro     Phase = iota // Collecting the commander name
	PhasePlaying                // Answering questions, including the launch sequence
	PhaseCompleted              // Mission accomplished
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// State is the full session state. It is a value: transitions return a new
// State and never modify the one passed in.
type State struct {
	// MissionID identifies the current mission. Zero in Intro; stamped by
	// StartMission. Deferred transitions carry it so a restart can
	// invalidate them.
	MissionID uuid.UUID

	Phase Phase

	// StageIndex and QuestionIndex address the active question.
	StageIndex    int
	QuestionIndex int

	// FuelLevel is progress in [0, 100], kept at full precision.
	FuelLevel float64

	// Launched becomes true on the final correct answer and never reverts.
	Launched bool

	Commander string
}

// Transition names the branch RecordCorrectAnswer took.
type Transition int

const (
	TransitionNone          Transition = iota
	TransitionAdvance                  // Next question in the same stage
	TransitionStageComplete            // First question of the next stage
	TransitionLaunch                   // Final question answered; launch sequence begins
)

func (t Transition) String() string {
	switch t {
	case TransitionAdvance:
		return "advance"
	case TransitionStageComplete:
		return "stage-complete"
	case TransitionLaunch:
		return "launch"
	default:
		return "none"
	}
}
