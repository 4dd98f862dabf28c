package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	c := NewTTLCache[string, int]()

	_, ok := c.Get("absent")
	require.False(t, ok)
}

func TestSetAndGet(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("k", 42, time.Minute)
	got, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, 42, got)
}

func TestExpiry(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("k", 42, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get("k")
	require.False(t, ok)
}

func TestZeroTTLNotStored(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("k", 42, 0)
	_, ok := c.Get("k")
	require.False(t, ok)
}

func TestDelete(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("k", 42, time.Minute)
	c.Delete("k")

	_, ok := c.Get("k")
	require.False(t, ok)
}
