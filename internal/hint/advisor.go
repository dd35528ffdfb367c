// Package hint asks the flight computer (an LLM) for a short tutoring hint
// after a wrong answer. Every failure path degrades to a fixed message; a
// hint is never an error.
package hint

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/algeblast/internal/curriculum"
	"github.com/abhisek/algeblast/internal/llm"
	"github.com/abhisek/algeblast/internal/store"
)

// Fallback texts shown when no model-generated hint is available.
const (
	OfflineText = "Mission Control offline. Re-check your calculations manually."
	EmptyText   = "Calculation error detected. Check your inverse operations, Commander."
	ErrorText   = "Communication link unstable. Try solving again."
)

// DefaultTimeout bounds a single hint request.
const DefaultTimeout = 5 * time.Second

// Purpose labels hint requests in the LLM event log.
const Purpose = "hint"

// Source records where a hint's text came from.
type Source string

const (
	SourceModel   Source = "model"   // generated by the provider
	SourceOffline Source = "offline" // no provider configured
	SourceEmpty   Source = "empty"   // provider answered with no text
	SourceError   Source = "error"   // provider failed or timed out
	SourceGuarded Source = "guarded" // generated text gave the answer away
)

// Request describes the wrong answer a hint is wanted for.
type Request struct {
	MissionID  string
	QuestionID string
	Equation   string
	Guess      string
	Answer     float64
}

// Result is the hint to display.
type Result struct {
	Text   string
	Source Source
}

// Advisor produces hints.
type Advisor interface {
	Hint(ctx context.Context, req Request) Result
}

// FlightComputer is the Advisor backed by an llm.Provider.
type FlightComputer struct {
	provider    llm.Provider
	timeout     time.Duration
	eventRepo   store.EventRepo
	logger      *zap.Logger
	staticHints map[string]string
}

// Option configures a FlightComputer.
type Option func(*FlightComputer)

// WithTimeout bounds each provider call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(f *FlightComputer) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithEventRepo records every hint as a hint event.
func WithEventRepo(repo store.EventRepo) Option {
	return func(f *FlightComputer) { f.eventRepo = repo }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *FlightComputer) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithStaticHints supplies the built-in question hints used when a
// generated hint has to be withheld.
func WithStaticHints(c *curriculum.Curriculum) Option {
	return func(f *FlightComputer) {
		if c == nil {
			return
		}
		for _, q := range c.Questions() {
			if q.Hint != "" {
				f.staticHints[q.ID] = q.Hint
			}
		}
	}
}

// New creates a FlightComputer. A nil provider yields an advisor that always
// answers with OfflineText.
func New(provider llm.Provider, opts ...Option) *FlightComputer {
	f := &FlightComputer{
		provider:    provider,
		timeout:     DefaultTimeout,
		logger:      zap.NewNop(),
		staticHints: make(map[string]string),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Hint asks the provider once for a hint. It never returns an empty Text.
func (f *FlightComputer) Hint(ctx context.Context, req Request) Result {
	start := time.Now()
	res := f.generate(ctx, req)
	latency := time.Since(start)

	f.logger.Debug("hint served",
		zap.String("mission_id", req.MissionID),
		zap.String("question_id", req.QuestionID),
		zap.String("hint_source", string(res.Source)),
		zap.Duration("latency", latency),
	)
	f.record(ctx, req, res, latency)
	return res
}

func (f *FlightComputer) generate(ctx context.Context, req Request) Result {
	if f.provider == nil {
		return Result{Text: OfflineText, Source: SourceOffline}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.provider.Generate(ctx, buildRequest(req))
	if err != nil {
		f.logger.Warn("hint request failed",
			zap.String("question_id", req.QuestionID),
			zap.Error(err),
		)
		return Result{Text: ErrorText, Source: SourceError}
	}

	var out hintResponse
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		f.logger.Warn("hint response not decodable",
			zap.String("question_id", req.QuestionID),
			zap.Error(err),
		)
		return Result{Text: ErrorText, Source: SourceError}
	}

	text := strings.TrimSpace(out.Hint)
	if text == "" {
		return Result{Text: EmptyText, Source: SourceEmpty}
	}

	if revealsAnswer(text, req.Answer) {
		f.logger.Info("withholding hint that states the answer",
			zap.String("question_id", req.QuestionID),
		)
		if static := f.staticHints[req.QuestionID]; static != "" {
			return Result{Text: static, Source: SourceGuarded}
		}
		return Result{Text: EmptyText, Source: SourceGuarded}
	}

	return Result{Text: text, Source: SourceModel}
}

// record appends the hint to the event log. Failures are logged only.
func (f *FlightComputer) record(ctx context.Context, req Request, res Result, latency time.Duration) {
	if f.eventRepo == nil {
		return
	}
	err := f.eventRepo.AppendHintEvent(context.WithoutCancel(ctx), store.HintEventData{
		MissionID:  req.MissionID,
		QuestionID: req.QuestionID,
		Guess:      req.Guess,
		HintText:   res.Text,
		Source:     string(res.Source),
		LatencyMs:  latency.Milliseconds(),
	})
	if err != nil {
		f.logger.Warn("failed to log hint event", zap.Error(err))
	}
}
