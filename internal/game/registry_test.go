package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Create(t *testing.T) {
	t.Run("Issues six-character codes from the room alphabet", func(t *testing.T) {
		// Given: an empty registry
		registry := NewRegistry()

		// When: creating a batch of sessions
		for i := 0; i < 50; i++ {
			session := registry.Create()

			// Then: every code has the right shape
			require.Len(t, session.Code(), roomCodeLength)
			for _, char := range session.Code() {
				assert.Contains(t, roomCodeAlphabet, string(char))
			}
		}
	})

	t.Run("Never reuses a live code", func(t *testing.T) {
		// Given: an empty registry
		registry := NewRegistry()

		// When: creating many sessions
		codes := make(map[string]bool)
		for i := 0; i < 200; i++ {
			codes[registry.Create().Code()] = true
		}

		// Then: all codes are distinct
		assert.Len(t, codes, 200)
	})
}

func TestRegistry_Find(t *testing.T) {
	t.Run("Resolves codes case-insensitively", func(t *testing.T) {
		// Given: a registered session
		registry := NewRegistry()
		session := registry.Create()

		// When: looking it up in lower case
		found, ok := registry.Find(strings.ToLower(session.Code()))

		// Then: the same session is returned
		require.True(t, ok)
		assert.Same(t, session, found)
	})

	t.Run("Misses an unknown code", func(t *testing.T) {
		// Given: an empty registry
		registry := NewRegistry()

		// When: looking up a code that was never issued
		_, ok := registry.Find("NOSUCH")

		// Then: nothing is found
		assert.False(t, ok)
	})
}

func TestRegistry_Destroy(t *testing.T) {
	t.Run("Removes the session and tolerates repeats", func(t *testing.T) {
		// Given: a registered session
		registry := NewRegistry()
		session := registry.Create()

		// When: destroying it twice
		registry.Destroy(session.Code())
		registry.Destroy(session.Code())

		// Then: the code no longer resolves
		_, ok := registry.Find(session.Code())
		assert.False(t, ok)
	})
}
