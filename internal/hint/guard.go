package hint

import (
	"regexp"

	"github.com/abhisek/algeblast/internal/mission"
)

// revealsAnswer reports whether text states the answer outright, as in
// "x = 5", "the value is 5" or "it equals 5.0". Numbers that merely contain
// the answer's digits ("15", "5.5") do not count.
func revealsAnswer(text string, answer float64) bool {
	num := regexp.QuoteMeta(mission.FormatAnswer(answer))
	re := regexp.MustCompile(`(?i)(?:=|\bis|\bequals)\s*` + num + `(?:\.0+)?(?:$|[^\d.]|\.(?:$|\D))`)
	return re.MatchString(text)
}
