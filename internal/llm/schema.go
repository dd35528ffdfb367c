package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is the JSON shape a reply must have.
type Schema struct {
	// Name is sent as the structured output name. Kebab-case.
	Name        string
	Description string
	Definition  map[string]any
}

var compiled sync.Map // schema name -> *jsonschema.Schema

func (s *Schema) compile() (*jsonschema.Schema, error) {
	if c, ok := compiled.Load(s.Name); ok {
		return c.(*jsonschema.Schema), nil
	}

	// The compiler wants plain decoded JSON, not arbitrary Go values.
	raw, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	url := "mem://schemas/" + s.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	compiled.Store(s.Name, sch)
	return sch, nil
}

// checkReply turns a backend's raw reply into a Response, failing with
// KindTruncated or KindInvalid when the reply cannot be used.
func checkReply(backend string, req Request, content string, truncated bool, usage Usage, model string) (*Response, error) {
	raw := json.RawMessage(content)
	if truncated {
		return nil, &Error{Backend: backend, Kind: KindTruncated, Content: raw}
	}
	if req.Schema != nil {
		if err := req.Schema.check(raw); err != nil {
			return nil, &Error{Backend: backend, Kind: KindInvalid, Content: raw, Err: err}
		}
	}
	return &Response{Content: raw, Usage: usage, Model: model}, nil
}

func (s *Schema) check(raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("not JSON: %w", err)
	}
	sch, err := s.compile()
	if err != nil {
		return fmt.Errorf("schema %q: %w", s.Name, err)
	}
	return sch.Validate(v)
}
