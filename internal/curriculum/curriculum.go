// Package curriculum holds the immutable stage catalog and question bank.
//
// A Curriculum is validated once at construction and never changes
// afterwards, so the per-stage question lists are derived a single time
// and shared by every reader.
package curriculum

import (
	"fmt"
	"slices"
	"sync"
)

// Curriculum is a validated stage catalog plus question bank.
type Curriculum struct {
	stages    []Stage
	questions []Question
	byStage   [][]Question
	byID      map[string]int
}

// New validates the catalog and bank and builds a Curriculum.
// The inputs are copied; later changes by the caller have no effect.
func New(stages []Stage, questions []Question) (*Curriculum, error) {
	if err := validate(stages, questions); err != nil {
		return nil, err
	}

	c := &Curriculum{
		stages:    slices.Clone(stages),
		questions: make([]Question, len(questions)),
		byStage:   make([][]Question, len(stages)),
		byID:      make(map[string]int, len(questions)),
	}
	for i, q := range questions {
		q.Steps = slices.Clone(q.Steps)
		c.questions[i] = q
		c.byID[q.ID] = i
	}

	// Stable, order-preserving selection per stage.
	for i, s := range c.stages {
		for _, q := range c.questions {
			if q.Stage == s.ID {
				c.byStage[i] = append(c.byStage[i], q)
			}
		}
	}

	return c, nil
}

var (
	defaultOnce sync.Once
	defaultCurr *Curriculum
)

// Default returns the built-in curriculum.
func Default() *Curriculum {
	defaultOnce.Do(func() {
		c, err := New(seedStages, seedQuestions)
		if err != nil {
			panic(fmt.Sprintf("built-in curriculum is invalid: %v", err))
		}
		defaultCurr = c
	})
	return defaultCurr
}

// Stages returns the stage catalog in order.
func (c *Curriculum) Stages() []Stage {
	return slices.Clone(c.stages)
}

// StageCount returns the number of stages.
func (c *Curriculum) StageCount() int {
	return len(c.stages)
}

// Stage returns the stage at index i.
func (c *Curriculum) Stage(i int) (Stage, bool) {
	if i < 0 || i >= len(c.stages) {
		return Stage{}, false
	}
	return c.stages[i], true
}

// Questions returns the full bank in order.
func (c *Curriculum) Questions() []Question {
	return slices.Clone(c.questions)
}

// TotalQuestions returns the number of questions across all stages.
func (c *Curriculum) TotalQuestions() int {
	return len(c.questions)
}

// StageQuestions returns the questions of stage i in bank order.
// The returned slice must not be modified.
func (c *Curriculum) StageQuestions(i int) []Question {
	if i < 0 || i >= len(c.byStage) {
		return nil
	}
	return c.byStage[i]
}

// Question looks up a question by ID.
func (c *Curriculum) Question(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}
