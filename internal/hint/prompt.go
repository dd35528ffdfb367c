package hint

import (
	"fmt"
	"strings"

	"github.com/abhisek/algeblast/internal/llm"
	"github.com/abhisek/algeblast/internal/mission"
)

const systemPrompt = `You are a friendly 6th-grade math tutor and space mission flight computer.
Without giving away the answer directly, explain in 1 or 2 short sentences why the student's guess might be wrong or what the correct first step is.
Use space-themed terminology (e.g., "trajectory calculation error", "realign sensors").
Keep it encouraging.`

// A hint is one or two sentences; the cap leaves room for the JSON wrapper.
const (
	maxHintTokens   = 256
	hintTemperature = 0.7
)

// hintResponse is the structured reply the provider must return.
type hintResponse struct {
	Hint string `json:"hint"`
}

var responseSchema = &llm.Schema{
	Name:        "hint-response",
	Description: "A short tutoring hint for a wrong answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "One or two encouraging sentences that do not state the answer",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}

func buildRequest(req Request) llm.Request {
	guess := strings.TrimSpace(req.Guess)
	if guess == "" {
		guess = "?"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The student is trying to solve this equation: %s.\n", req.Equation)
	fmt.Fprintf(&b, "The correct answer is %s.\n", mission.FormatAnswer(req.Answer))
	fmt.Fprintf(&b, "The student guessed: %s.", guess)

	return llm.Request{
		Purpose:     Purpose,
		System:      systemPrompt,
		Prompt:      b.String(),
		Schema:      responseSchema,
		MaxTokens:   maxHintTokens,
		Temperature: hintTemperature,
	}
}
