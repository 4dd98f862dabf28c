package reqid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^req_[a-z0-9]{6}$`)
	for i := 0; i < 100; i++ {
		require.Regexp(t, pattern, New("req"))
	}
}

func TestNewMostlyDistinct(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		seen[New("req")] = struct{}{}
	}
	// Collisions in 1000 draws from a 36^6 space would indicate a
	// broken generator, not bad luck.
	require.Len(t, seen, 1000)
}
