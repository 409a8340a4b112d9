package quiz

import (
	"regexp"
	"strings"
)

// Reply attempts are a literal "/answer" command followed by one of the
// three labels. The letter is case-insensitive; anything else in a
// comment is unrelated conversation, not an error.
var replyPattern = regexp.MustCompile(`^/answer\s+([A-Ca-c])`)

// ParseReply extracts the claimed answer label from a comment body.
// The second return is false when the body is not a reply attempt.
func ParseReply(body string) (string, bool) {
	m := replyPattern.FindStringSubmatch(strings.TrimSpace(body))
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}

// FindOpenChallenge scans comment bodies newest-first and returns the
// metadata of the most recently issued quiz challenge, or nil if none is
// found. Bodies that carry no metadata, malformed metadata, or a record
// of a different mode are skipped silently; a later challenge always
// supersedes earlier ones.
func FindOpenChallenge(bodies []string) *Metadata {
	for _, body := range bodies {
		if m := DecodeMetadata(body); m != nil && m.Mode == ModeQuiz {
			return m
		}
	}
	return nil
}
