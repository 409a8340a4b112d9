package quiz

import (
	"strings"
	"testing"
)

// TestMetadataRoundTrip verifies decode(encode(r)) == r.
func TestMetadataRoundTrip(t *testing.T) {
	in := Metadata{Mode: ModeQuiz, Salt: "aabbccddeeff00112233445566778899", Hash: "deadbeef"}

	got := DecodeMetadata(EncodeMetadata(in))
	if got == nil {
		t.Fatal("DecodeMetadata returned nil for encoded record")
	}
	if *got != in {
		t.Errorf("round trip = %+v, want %+v", *got, in)
	}
}

// TestEncodeMetadataIsHidden verifies the snippet is a single-line HTML
// comment, which Markdown renderers do not display.
func TestEncodeMetadataIsHidden(t *testing.T) {
	s := EncodeMetadata(Metadata{Mode: ModeQuiz, Salt: "s", Hash: "h"})

	if !strings.HasPrefix(s, "<!--") || !strings.HasSuffix(s, "-->") {
		t.Errorf("snippet %q is not wrapped in an HTML comment", s)
	}
	if strings.Contains(s, "\n") {
		t.Errorf("snippet %q spans multiple lines", s)
	}
	if !strings.Contains(s, metadataMarker) {
		t.Errorf("snippet %q missing namespaced marker", s)
	}
}

// TestDecodeMetadataInCommentBody verifies extraction from a realistic
// challenge comment where the marker trails ordinary Markdown.
func TestDecodeMetadataInCommentBody(t *testing.T) {
	meta := Metadata{Mode: ModeQuiz, Salt: "0123", Hash: "4567"}
	body := "## Quiz\n\n**What changed?**\n\n- **A)** one\n- **B)** two\n- **C)** three\n\n" +
		EncodeMetadata(meta) + "\n"

	got := DecodeMetadata(body)
	if got == nil {
		t.Fatal("DecodeMetadata returned nil")
	}
	if *got != meta {
		t.Errorf("decoded %+v, want %+v", *got, meta)
	}
}

// TestDecodeMetadataInline verifies a marker embedded mid-paragraph is
// still found.
func TestDecodeMetadataInline(t *testing.T) {
	meta := Metadata{Mode: ModeQuiz, Salt: "s1", Hash: "h1"}
	body := "thanks for the review " + EncodeMetadata(meta) + " much appreciated"

	got := DecodeMetadata(body)
	if got == nil || got.Salt != "s1" {
		t.Errorf("DecodeMetadata = %+v, want salt s1", got)
	}
}

// TestDecodeMetadataFirstWins verifies the first occurrence is taken
// when the delimiter appears multiple times.
func TestDecodeMetadataFirstWins(t *testing.T) {
	first := Metadata{Mode: ModeQuiz, Salt: "first", Hash: "h"}
	second := Metadata{Mode: ModeQuiz, Salt: "second", Hash: "h"}
	body := EncodeMetadata(first) + "\n\nsome text\n\n" + EncodeMetadata(second)

	got := DecodeMetadata(body)
	if got == nil || got.Salt != "first" {
		t.Errorf("DecodeMetadata = %+v, want the first record", got)
	}
}

// TestDecodeMetadataAbsentOrMalformed verifies decode returns nil, and
// never panics, on text without a well-formed record.
func TestDecodeMetadataAbsentOrMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"plain text", "looks good, thanks"},
		{"empty", ""},
		{"bare open delimiter", "<!--"},
		{"bare close delimiter", "-->"},
		{"truncated marker", "<!-- readguard_meta: {\"mode\":\"quiz\"}"},
		{"malformed json", "<!-- readguard_meta: {not json} -->"},
		{"foreign html comment", "<!-- coverage-bot: 81% -->"},
		{"marker without payload", "<!-- readguard_meta: -->"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeMetadata(tt.body); got != nil {
				t.Errorf("DecodeMetadata(%q) = %+v, want nil", tt.body, got)
			}
		})
	}
}

// TestDecodeMetadataIgnoresUnknownFields verifies forward compatibility
// with records that carry extra payload fields.
func TestDecodeMetadataIgnoresUnknownFields(t *testing.T) {
	body := `<!-- readguard_meta: {"mode":"quiz","salt":"s","hash":"h","version":2,"extra":"x"} -->`

	got := DecodeMetadata(body)
	if got == nil {
		t.Fatal("DecodeMetadata returned nil")
	}
	if got.Mode != ModeQuiz || got.Salt != "s" || got.Hash != "h" {
		t.Errorf("decoded %+v, want mode=quiz salt=s hash=h", got)
	}
}
