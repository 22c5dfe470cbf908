package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHandle(t *testing.T) {
	for i := 0; i < 100; i++ {
		handle := GenerateHandle()

		var color string
		for _, c := range handleColors {
			if strings.HasPrefix(handle, c) {
				color = c
				break
			}
		}
		assert.NotEmpty(t, color, "handle %q starts with a known color", handle)
		assert.Contains(t, handleAnimals, strings.TrimPrefix(handle, color))
		assert.NotContains(t, handle, " ")
	}
}

// Handles are not identities; repeated calls may collide and that is fine.
// This only checks the generator actually varies.
func TestGenerateHandleVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[GenerateHandle()] = true
	}
	assert.Greater(t, len(seen), 1)
}
