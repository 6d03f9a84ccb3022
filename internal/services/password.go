package services

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// PasswordToken derives the stored credential token from a plaintext
// password: SHA-256 over the UTF-8 bytes, then BLAKE2b with a 16 byte
// digest, rendered as lowercase hex. The derivation is deterministic and
// salt-free; stored tokens are verified by recomputing and comparing.
//
// Kept byte-for-byte compatible with existing stored tokens. A scheme with
// per-record salt and an iterated derivation would be stronger but would
// invalidate every existing credential.
func PasswordToken(password string) string {
	digest := sha256.Sum256([]byte(password))

	h, err := blake2b.New(16, nil)
	if err != nil {
		// blake2b.New only fails on oversized keys; none is passed.
		panic(err)
	}
	h.Write(digest[:])
	return hex.EncodeToString(h.Sum(nil))
}
