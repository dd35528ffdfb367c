package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/algeblast/internal/store"
)

// recorder appends every call to the LLM request log.
type recorder struct {
	inner   Provider
	backend string
	repo    store.EventRepo
	logger  *zap.Logger
}

// WithLogging records each call made through p as an LLM request event.
// backend names the provider in the record. A nil logger discards warnings.
func WithLogging(p Provider, backend string, repo store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recorder{inner: p, backend: backend, repo: repo, logger: logger}
}

func (r *recorder) ModelID() string { return r.inner.ModelID() }

func (r *recorder) Generate(ctx context.Context, req Request) (*Response, error) {
	req = req.capped()

	start := time.Now()
	resp, err := r.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		Provider:    r.backend,
		Model:       r.inner.ModelID(),
		Purpose:     req.Purpose,
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	r.logger.Debug("llm request",
		zap.String("provider", r.backend),
		zap.String("model", data.Model),
		zap.String("purpose", req.Purpose),
		zap.Int("max_tokens", req.MaxTokens),
		zap.Float64("temperature", req.Temperature),
		zap.Duration("latency", latency),
		zap.Bool("success", data.Success),
	)

	// The caller's deadline may already have passed.
	if logErr := r.repo.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		r.logger.Warn("failed to log LLM request event", zap.Error(logErr))
	}
	return resp, err
}

// transcript is the request body stored with each event.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	fmt.Fprintf(&b, "[user]\n%s\n\n", req.Prompt)
	fmt.Fprintf(&b, "[limits]\nmax_tokens=%d temperature=%.2f\n", req.MaxTokens, req.Temperature)
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
