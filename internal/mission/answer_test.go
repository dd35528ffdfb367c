package mission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/algeblast/internal/curriculum"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"  7 ", 7},
		{"-4", -4},
		{"2.5", 2.5},
		{"+3", 3},
		{"1e1", 10},
	}
	for _, tt := range tests {
		got, err := ParseAnswer(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseAnswerRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "five", "x=5", "NaN", "Inf", "-inf", "5 5"} {
		_, err := ParseAnswer(in)
		assert.ErrorIs(t, err, ErrNotNumeric, "input %q", in)
	}
}

func TestIsCorrectIsExact(t *testing.T) {
	q := curriculum.Question{ID: "t", Answer: 5}
	assert.True(t, IsCorrect(q, 5))
	assert.True(t, IsCorrect(q, 5.0))
	assert.False(t, IsCorrect(q, 5.0000001))
	assert.False(t, IsCorrect(q, -5))
}

func TestEveryDefaultAnswerParsesBackCorrect(t *testing.T) {
	for _, q := range curriculum.Default().Questions() {
		v, err := ParseAnswer(FormatAnswer(q.Answer))
		require.NoError(t, err, q.ID)
		assert.True(t, IsCorrect(q, v), q.ID)
	}
}

func TestFormatAnswer(t *testing.T) {
	assert.Equal(t, "5", FormatAnswer(5))
	assert.Equal(t, "-3", FormatAnswer(-3))
	assert.Equal(t, "2.5", FormatAnswer(2.5))
}
