package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// TestSystemPromptDefault verifies the default template interpolation.
func TestSystemPromptDefault(t *testing.T) {
	got := systemPrompt(Request{Difficulty: "hard", ExtraInstructions: "avoid trivia questions"})

	if !strings.Contains(got, "Generate a hard multiple-choice question") {
		t.Errorf("prompt missing difficulty, got:\n%s", got)
	}
	if !strings.Contains(got, "- avoid trivia questions") {
		t.Errorf("prompt missing extra instructions, got:\n%s", got)
	}
	if !strings.Contains(got, `"correct_answer"`) {
		t.Errorf("prompt missing JSON contract, got:\n%s", got)
	}
}

// TestSystemPromptDefaultDifficulty verifies a medium question is asked
// for when none is configured.
func TestSystemPromptDefaultDifficulty(t *testing.T) {
	got := systemPrompt(Request{})
	if !strings.Contains(got, "Generate a medium multiple-choice question") {
		t.Errorf("prompt difficulty default wrong, got:\n%s", got)
	}
}

// TestSystemPromptOverride verifies a full override wins wholesale.
func TestSystemPromptOverride(t *testing.T) {
	got := systemPrompt(Request{SystemPrompt: "custom prompt", Difficulty: "hard"})
	if got != "custom prompt" {
		t.Errorf("systemPrompt = %q, want override verbatim", got)
	}
}

// TestUserPromptFramesDiff verifies the diff framing line.
func TestUserPromptFramesDiff(t *testing.T) {
	got := userPrompt(Request{DiffText: "File: a.go\n+x := 1\n"})
	if !strings.HasPrefix(got, "Here is the code diff:\n\n") {
		t.Errorf("userPrompt = %q, missing framing", got)
	}
	if !strings.Contains(got, "+x := 1") {
		t.Errorf("userPrompt = %q, missing diff", got)
	}
}

const validJSON = `{
  "question": "What timeout was introduced?",
  "options": {"A": "10s", "B": "30s", "C": "60s"},
  "correct_answer": "b"
}`

// TestParseResponseValid verifies decoding, validation, and answer
// normalization, with and without a code fence.
func TestParseResponseValid(t *testing.T) {
	for _, raw := range []string{
		validJSON,
		"```json\n" + validJSON + "\n```",
		"```\n" + validJSON + "\n```",
		"  " + validJSON + "  ",
	} {
		resp, err := parseResponse(raw)
		if err != nil {
			t.Fatalf("parseResponse(%q) error: %v", raw, err)
		}
		if resp.CorrectAnswer != "B" {
			t.Errorf("CorrectAnswer = %q, want normalized B", resp.CorrectAnswer)
		}
		if resp.Options.C != "60s" {
			t.Errorf("Options.C = %q, want 60s", resp.Options.C)
		}
	}
}

// TestParseResponseInvalid verifies malformed or incomplete model output
// is rejected rather than half-used.
func TestParseResponseInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "the answer is B"},
		{"empty", ""},
		{"missing question", `{"options":{"A":"a","B":"b","C":"c"},"correct_answer":"A"}`},
		{"missing option", `{"question":"q","options":{"A":"a","B":"b"},"correct_answer":"A"}`},
		{"answer outside label set", `{"question":"q","options":{"A":"a","B":"b","C":"c"},"correct_answer":"D"}`},
		{"empty answer", `{"question":"q","options":{"A":"a","B":"b","C":"c"},"correct_answer":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseResponse(tt.raw); err == nil {
				t.Errorf("parseResponse(%q) succeeded, want error", tt.raw)
			}
		})
	}
}

// TestMockGenerator verifies the test double's behavior.
func TestMockGenerator(t *testing.T) {
	want := &Response{Question: "q", Options: Options{A: "a", B: "b", C: "c"}, CorrectAnswer: "A"}
	m := &MockGenerator{Resp: want}

	got, err := m.Generate(context.Background(), Request{Difficulty: "easy"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != want {
		t.Error("Generate did not return the canned response")
	}
	if m.LastRequest.Difficulty != "easy" {
		t.Errorf("LastRequest.Difficulty = %q, want easy", m.LastRequest.Difficulty)
	}

	m.Err = errors.New("boom")
	if _, err := m.Generate(context.Background(), Request{}); err == nil {
		t.Error("Generate with Err set succeeded, want error")
	}
}
