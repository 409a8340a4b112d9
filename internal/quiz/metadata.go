package quiz

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// The metadata record travels inside an HTML comment, which Markdown
// renderers treat as non-printing, prefixed with a namespaced marker so
// unrelated hidden comments are never mistaken for ours.
const metadataMarker = "readguard_meta:"

var metadataPattern = regexp.MustCompile(`<!--\s*` + metadataMarker + `\s*(.*?)\s*-->`)

// EncodeMetadata serializes a metadata record into an invisible snippet
// suitable for appending to a Markdown comment body.
func EncodeMetadata(m Metadata) string {
	data, err := json.Marshal(m)
	if err != nil {
		// Metadata is three plain strings; this cannot fail.
		return ""
	}
	return "<!-- " + metadataMarker + " " + string(data) + " -->"
}

// DecodeMetadata extracts the first embedded metadata record from a
// block of text. It returns nil if no marker is present or the payload
// does not parse; malformed input is never an error. Extraction walks
// the Markdown AST so only genuine raw-HTML regions are considered.
func DecodeMetadata(body string) *Metadata {
	raw := findMarkerPayload(body)
	if raw == "" {
		return nil
	}
	var m Metadata
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil
	}
	return &m
}

// findMarkerPayload returns the JSON payload of the first marker
// occurrence in document order, or "".
func findMarkerPayload(body string) string {
	source := []byte(body)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var payload string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || payload != "" {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.HTMLBlock:
			var sb strings.Builder
			for i := 0; i < v.Lines().Len(); i++ {
				seg := v.Lines().At(i)
				sb.Write(seg.Value(source))
			}
			if v.HasClosure() {
				sb.Write(v.ClosureLine.Value(source))
			}
			if m := metadataPattern.FindStringSubmatch(sb.String()); m != nil {
				payload = m[1]
			}
		case *ast.RawHTML:
			var sb strings.Builder
			for i := 0; i < v.Segments.Len(); i++ {
				seg := v.Segments.At(i)
				sb.Write(seg.Value(source))
			}
			if m := metadataPattern.FindStringSubmatch(sb.String()); m != nil {
				payload = m[1]
			}
		}
		return ast.WalkContinue, nil
	})
	return payload
}
