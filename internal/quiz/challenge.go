// Package quiz implements the challenge-response verification protocol:
// salted answer commitments, the hidden metadata record embedded in
// comment bodies, and the matching of free-text replies against the
// latest open challenge.
package quiz

// ModeQuiz tags metadata records that carry a multiple-choice challenge.
// Records with any other mode are ignored by the matcher, which leaves
// room for future challenge types.
const ModeQuiz = "quiz"

// Labels is the fixed answer space. Exactly these three labels are valid.
var Labels = []string{"A", "B", "C"}

// Options holds the candidate answers keyed by label.
type Options struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
}

// Metadata is the durable record embedded in a challenge comment. It
// commits to the correct answer without revealing it: only someone who
// knows the answer letter and the salt can reproduce Hash.
type Metadata struct {
	Mode string `json:"mode"`
	Salt string `json:"salt"`
	Hash string `json:"hash"`
}

// Challenge is a generated comprehension question plus its answer
// commitment. The plaintext correct answer is never part of it.
type Challenge struct {
	Question string
	Options  Options
	Meta     Metadata
}
