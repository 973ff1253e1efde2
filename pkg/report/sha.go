package report

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256 returns the hex encoded SHA256 of s.
func Sha256(s string) string {
	h := sha256.New()
	_, _ = h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}
