package llm

import (
	"fmt"
	"strings"
)

const defaultSystemPrompt = `You are a code reviewer designed to ensure developers have read their changes.
Generate a %s multiple-choice question based on the provided code diff.
The question should verify that the developer understands the specific logic changes.
Focus on:
- Validating new values (timeouts, constants).
- Understanding control flow changes.
- Identifying security implications if applicable.
%s
Return ONLY a valid JSON object with this structure:
{
    "question": "The question text",
    "options": {
        "A": "Option A",
        "B": "Option B",
        "C": "Option C"
    },
    "correct_answer": "B"
}`

// systemPrompt returns the prompt a provider should send. An explicit
// override wins wholesale; otherwise the default template is filled in
// with the difficulty and any extra instructions.
func systemPrompt(req Request) string {
	if req.SystemPrompt != "" {
		return req.SystemPrompt
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	var extra string
	if req.ExtraInstructions != "" {
		extra = fmt.Sprintf("- %s\n", req.ExtraInstructions)
	}
	return fmt.Sprintf(defaultSystemPrompt, difficulty, extra)
}

// userPrompt frames the diff for the model.
func userPrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString("Here is the code diff:\n\n")
	sb.WriteString(req.DiffText)
	return sb.String()
}
