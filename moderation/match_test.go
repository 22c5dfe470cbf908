package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsAny(t *testing.T) {
	assert := assert.New(t)

	terms := []string{"doxx", "address is", "kys"}

	assert.True(ContainsAny("do not doxx people", terms))
	assert.True(ContainsAny("my ADDRESS IS 123 Main St", terms))
	assert.False(ContainsAny("a perfectly fine message", terms))
	assert.False(ContainsAny("", terms))
	assert.False(ContainsAny("anything", nil))
}

func TestContainsAnyCaseFolding(t *testing.T) {
	assert := assert.New(t)

	terms := []string{"suicide"}

	assert.True(ContainsAny("Suicide", terms))
	assert.True(ContainsAny("SUICIDE", terms))
	assert.True(ContainsAny("thinking about sUiCiDe a lot", terms))
	// combining marks are stripped before matching
	assert.True(ContainsAny("suícide", terms))
}

func TestContainsAnySubstringSemantics(t *testing.T) {
	assert := assert.New(t)

	// pure substring containment, no word boundaries: "skys" hits "kys"
	assert.True(ContainsAny("the skys are grey", []string{"kys"}))
	assert.True(ContainsAny("whatever", []string{"hate"}))
	assert.False(ContainsAny("what ever", []string{"hate"}))
}

func TestFoldText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "KILL Myself", "kill myself"},
		{"strips accents", "Café", "cafe"},
		{"empty", "", ""},
		{"already folded", "end it", "end it"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldText(tt.in))
		})
	}
}
