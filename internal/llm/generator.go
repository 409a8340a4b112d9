// Package llm generates comprehension questions from code diffs.
//
// The gate depends only on the Generator interface; one implementation
// exists per model provider.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Request carries everything a provider needs to produce one question.
type Request struct {
	DiffText          string
	Difficulty        string // e.g. "easy", "medium", "hard"
	SystemPrompt      string // full override of the default prompt, optional
	ExtraInstructions string // appended to the default prompt, optional
}

// Options holds the three candidate answers as the model returns them.
type Options struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
}

// Response is the model's question. CorrectAnswer is consumed exactly
// once, to compute the answer commitment; callers must not store or log
// it.
type Response struct {
	Question      string  `json:"question"`
	Options       Options `json:"options"`
	CorrectAnswer string  `json:"correct_answer"`
}

// Generator produces a multiple-choice question for a diff.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// parseResponse decodes and validates raw model output. Providers are
// asked for bare JSON but occasionally wrap it in a code fence anyway.
func parseResponse(raw string) (*Response, error) {
	raw = stripFence(strings.TrimSpace(raw))

	var resp Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}
	if err := resp.validate(); err != nil {
		return nil, err
	}
	resp.CorrectAnswer = strings.ToUpper(strings.TrimSpace(resp.CorrectAnswer))
	return &resp, nil
}

func (r *Response) validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("model response missing question text")
	}
	if r.Options.A == "" || r.Options.B == "" || r.Options.C == "" {
		return fmt.Errorf("model response must provide all three options A, B, C")
	}
	switch strings.ToUpper(strings.TrimSpace(r.CorrectAnswer)) {
	case "A", "B", "C":
		return nil
	default:
		return fmt.Errorf("model response correct_answer %q is not one of A, B, C", r.CorrectAnswer)
	}
}

// stripFence removes a single surrounding Markdown code fence, with or
// without a language tag.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:] // drop the fence line, including any language tag
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
