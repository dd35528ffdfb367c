package mission

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/algeblast/internal/curriculum"
)

// ParseAnswer converts learner input into a number. Whitespace is trimmed;
// empty, non-numeric and non-finite input is rejected.
func ParseAnswer(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrNotNumeric
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", input, ErrNotNumeric)
	}
	return v, nil
}

// IsCorrect reports whether value is the question's answer. The comparison
// is exact; no tolerance is applied.
func IsCorrect(q curriculum.Question, value float64) bool {
	return value == q.Answer
}

// FormatAnswer renders a numeric answer without trailing zeros.
func FormatAnswer(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
