package curriculum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCurriculum(t *testing.T) {
	c := Default()

	require.Equal(t, 4, c.StageCount())
	require.Equal(t, 12, c.TotalQuestions())

	wantOrder := []StageID{StageTwoStep, StageDistributive, StageCombiningLike, StageVariablesBoth}
	for i, id := range wantOrder {
		s, ok := c.Stage(i)
		require.True(t, ok)
		assert.Equal(t, id, s.ID)
		assert.Len(t, c.StageQuestions(i), 3, "stage %s", id)
	}
}

func TestStageQuestionsPreservesBankOrder(t *testing.T) {
	stages := []Stage{{ID: "A"}, {ID: "B"}}
	questions := []Question{
		{ID: "b1", Stage: "B", Equation: "x = 1", Answer: 1},
		{ID: "a1", Stage: "A", Equation: "x = 2", Answer: 2},
		{ID: "b2", Stage: "B", Equation: "x = 3", Answer: 3},
		{ID: "a2", Stage: "A", Equation: "x = 4", Answer: 4},
		{ID: "b3", Stage: "B", Equation: "x = 5", Answer: 5},
	}

	c, err := New(stages, questions)
	require.NoError(t, err)

	ids := func(qs []Question) []string {
		var out []string
		for _, q := range qs {
			out = append(out, q.ID)
		}
		return out
	}
	assert.Equal(t, []string{"a1", "a2"}, ids(c.StageQuestions(0)))
	assert.Equal(t, []string{"b1", "b2", "b3"}, ids(c.StageQuestions(1)))
	assert.Nil(t, c.StageQuestions(2))
	assert.Nil(t, c.StageQuestions(-1))
}

func TestNewCopiesInput(t *testing.T) {
	stages := []Stage{{ID: "A", Title: "Alpha"}}
	questions := []Question{{ID: "q", Stage: "A", Equation: "x = 1", Answer: 1, Steps: []string{"done"}}}

	c, err := New(stages, questions)
	require.NoError(t, err)

	stages[0].Title = "changed"
	questions[0].Steps[0] = "changed"

	s, _ := c.Stage(0)
	assert.Equal(t, "Alpha", s.Title)
	q, ok := c.Question("q")
	require.True(t, ok)
	assert.Equal(t, []string{"done"}, q.Steps)
}

func TestQuestionLookup(t *testing.T) {
	c := Default()

	q, ok := c.Question("4-3")
	require.True(t, ok)
	assert.Equal(t, "50 + 5.5w = 18.5 + 7.75w", q.Equation)
	assert.Equal(t, 14.0, q.Answer)
	assert.Len(t, q.Steps, 3)

	_, ok = c.Question("9-9")
	assert.False(t, ok)
}

func TestStageOutOfRange(t *testing.T) {
	c := Default()
	_, ok := c.Stage(4)
	assert.False(t, ok)
	_, ok = c.Stage(-1)
	assert.False(t, ok)
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(nil, nil)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Problems, "stage catalog is empty")
	assert.Contains(t, verr.Problems, "question bank is empty")
}
