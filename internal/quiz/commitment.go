package quiz

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// saltBytes is the entropy of a challenge salt. The salt keeps the
// answer out of the comment in readable form and makes commitments
// unlinkable across challenges; it is not a secret.
const saltBytes = 16

// NewSalt returns a fresh hex-encoded salt from a cryptographically
// secure source. Each challenge gets its own salt.
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Commit computes the one-way commitment for an answer label under a
// salt. The answer is normalized (trimmed, uppercased) and joined to the
// salt with ":", which cannot appear in a normalized label, so distinct
// (answer, salt) pairs never collide into the same pre-hash string.
func Commit(answer, salt string) string {
	normalized := strings.ToUpper(strings.TrimSpace(answer))
	sum := sha256.Sum256([]byte(normalized + ":" + salt))
	return hex.EncodeToString(sum[:])
}

// VerifyCommitment reports whether the claimed label reproduces the
// stored hash under the challenge's salt. The hash is always compared
// against a freshly recomputed value.
func VerifyCommitment(claimed, salt, hash string) bool {
	return Commit(claimed, salt) == hash
}
