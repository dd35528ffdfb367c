package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// Reply is one scripted answer for a Canned provider.
type Reply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// HintReply scripts a {"hint": text} answer.
func HintReply(text string) Reply {
	b, _ := json.Marshal(map[string]string{"hint": text})
	return Reply{Content: b}
}

// Canned is an offline Provider that plays back scripted replies in order.
// Once the script runs out every call fails with KindUnavailable.
type Canned struct {
	mu       sync.Mutex
	script   []Reply
	requests []Request
}

// NewCanned returns a Canned provider playing replies.
func NewCanned(replies ...Reply) *Canned {
	return &Canned{script: replies}
}

func (c *Canned) Generate(_ context.Context, req Request) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = append(c.requests, req)
	if len(c.script) == 0 {
		return nil, &Error{Backend: ProviderMock, Kind: KindUnavailable}
	}
	next := c.script[0]
	c.script = c.script[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: ProviderMock}, nil
}

func (c *Canned) ModelID() string { return ProviderMock }

// Requests returns a copy of every request received so far.
func (c *Canned) Requests() []Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Request(nil), c.requests...)
}
