package curriculum

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError lists every structural problem found in a catalog and
// bank. Loading refuses to proceed when any are present.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("curriculum validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validate performs all structural checks on a stage catalog and question
// bank. Returns a *ValidationError describing all problems, or nil.
func validate(stages []Stage, questions []Question) error {
	var errs []string

	if len(stages) == 0 {
		errs = append(errs, "stage catalog is empty")
	}
	if len(questions) == 0 {
		errs = append(errs, "question bank is empty")
	}

	// Distinct stage identifiers
	stageSet := make(map[StageID]bool, len(stages))
	for i, s := range stages {
		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("stage %d has an empty ID", i))
			continue
		}
		if stageSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate stage ID: %q", s.ID))
		}
		stageSet[s.ID] = true
	}

	// Questions: unique IDs, referential integrity, usable content
	idSet := make(map[string]bool, len(questions))
	perStage := make(map[StageID]int, len(stages))
	for i, q := range questions {
		label := q.ID
		if q.ID == "" {
			label = fmt.Sprintf("#%d", i)
			errs = append(errs, fmt.Sprintf("question %s has an empty ID", label))
		} else if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		if !stageSet[q.Stage] {
			errs = append(errs, fmt.Sprintf("question %q references nonexistent stage %q", label, q.Stage))
		} else {
			perStage[q.Stage]++
		}
		if strings.TrimSpace(q.Equation) == "" {
			errs = append(errs, fmt.Sprintf("question %q has an empty equation", label))
		}
		if math.IsNaN(q.Answer) || math.IsInf(q.Answer, 0) {
			errs = append(errs, fmt.Sprintf("question %q has a non-finite answer", label))
		}
	}

	// Every stage must be reachable with at least one question
	if len(questions) > 0 {
		for _, s := range stages {
			if s.ID != "" && perStage[s.ID] == 0 {
				errs = append(errs, fmt.Sprintf("stage %q has no questions", s.ID))
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
