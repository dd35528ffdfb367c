package flight

import (
	"github.com/google/uuid"

	"github.com/abhisek/algeblast/internal/hint"
)

// Deferred messages carry the mission identity and the question sequence
// they were scheduled for. A message whose token no longer matches the
// screen is stale and dropped.
type token struct {
	missionID uuid.UUID
	seq       int
}

// feedbackDoneMsg ends the "fuel cells charging" pause after a correct
// answer.
type feedbackDoneMsg struct {
	token
}

// launchDoneMsg ends the launch sequence.
type launchDoneMsg struct {
	token
}

// flameTickMsg animates the exhaust during launch.
type flameTickMsg struct {
	token
}

// hintReadyMsg delivers a flight computer analysis.
type hintReadyMsg struct {
	token
	questionID string
	result     hint.Result
}

// abortMsg confirms the abort prompt.
type abortMsg struct{}

// resumeMsg dismisses the abort prompt.
type resumeMsg struct{}
