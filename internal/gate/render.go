package gate

import (
	"fmt"
	"strings"

	"github.com/readguard/readguard/internal/quiz"
)

// RenderQuestion builds the visible part of a challenge comment.
func RenderQuestion(question string, opts quiz.Options) string {
	var sb strings.Builder
	sb.WriteString("## 🛡️ ReadGuard Verification\n\n")
	sb.WriteString("**Proof-of-Reading Required**\n")
	sb.WriteString("The following question has been generated based on the changes in this PR.\n\n")
	fmt.Fprintf(&sb, "**%s**\n\n", question)
	fmt.Fprintf(&sb, "- **A)** %s\n", opts.A)
	fmt.Fprintf(&sb, "- **B)** %s\n", opts.B)
	fmt.Fprintf(&sb, "- **C)** %s\n\n", opts.C)
	sb.WriteString("Reply with `/answer A`, `/answer B`, or `/answer C` to unlock the merge.\n")
	return sb.String()
}

// RenderChallenge builds the full challenge comment: the question text
// followed by the hidden metadata record.
func RenderChallenge(ch quiz.Challenge) string {
	return RenderQuestion(ch.Question, ch.Options) + "\n" + quiz.EncodeMetadata(ch.Meta) + "\n"
}

// RenderVerified builds the confirmation comment naming the accepted
// label. No metadata is embedded; the challenge is retired by the next
// generate, not by this comment.
func RenderVerified(label string) string {
	return fmt.Sprintf("✅ Correct! The answer was **%s**. Verification successful.", label)
}

// RenderFailed builds the rejection comment inviting a retry.
func RenderFailed() string {
	return "❌ Incorrect. Please try again."
}
