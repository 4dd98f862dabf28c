// Package reqid generates short prefixed identifiers for approval requests.
package reqid

import "math/rand/v2"

const (
	alphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLen = 6
)

// New returns "<prefix>_" followed by a 6-character lowercase
// alphanumeric suffix. The 36^6 space is only statistically unique;
// callers must treat a store-level collision as retryable.
func New(prefix string) string {
	buf := make([]byte, suffixLen)
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return prefix + "_" + string(buf)
}
