package ident

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// StableID derives a deterministic identifier from the given parts.
// Parts are trimmed and joined with "|" (a character that does not occur in
// source names or URLs) before hashing, so the same (source, url) pair always
// maps to the same 64-char hex digest.
func StableID(parts ...string) string {
	trimmed := make([]string, len(parts))
	for i, p := range parts {
		trimmed[i] = strings.TrimSpace(p)
	}
	sum := sha256.Sum256([]byte(strings.Join(trimmed, "|")))
	return hex.EncodeToString(sum[:])
}
