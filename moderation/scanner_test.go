package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/provsupport/feedcore/config"
)

func TestScanCrisisTerms(t *testing.T) {
	cfg := config.Default()
	scanner := NewScanner(cfg, nil)

	res := scanner.Scan("I want to kill myself")
	assert.Equal(t, cfg.CrisisMessage, res.Crisis)
	assert.Empty(t, res.Moderation)
	assert.False(t, res.Blocked())
}

func TestScanBannedTerms(t *testing.T) {
	cfg := config.Default()
	scanner := NewScanner(cfg, nil)

	res := scanner.Scan("my address is 123 Main St")
	assert.Empty(t, res.Crisis)
	assert.Equal(t, cfg.ModerationWarning, res.Moderation)
	assert.True(t, res.Blocked())
}

func TestScanBlankText(t *testing.T) {
	scanner := NewScanner(config.Default(), nil)

	for _, text := range []string{"", "   ", "\n\t "} {
		res := scanner.Scan(text)
		assert.Empty(t, res.Crisis, "text %q", text)
		assert.Empty(t, res.Moderation, "text %q", text)
	}
}

func TestScanBothChecksFire(t *testing.T) {
	cfg := config.Default()
	scanner := NewScanner(cfg, nil)

	// "kys" is banned and "kill myself" is a crisis term
	res := scanner.Scan("kys, I might just kill myself")
	assert.Equal(t, cfg.CrisisMessage, res.Crisis)
	assert.Equal(t, cfg.ModerationWarning, res.Moderation)
}

func TestScanCaseInsensitive(t *testing.T) {
	cfg := config.Default()
	scanner := NewScanner(cfg, nil)

	tests := []struct {
		name       string
		text       string
		crisis     bool
		moderation bool
	}{
		{"upper crisis", "OVERDOSE", true, false},
		{"mixed crisis", "I can't Go On", true, false},
		{"upper banned", "DOXX them", false, true},
		{"mixed banned", "his Phone Is 555-0100", false, true},
		{"clean", "had a great day at the library", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := scanner.Scan(tt.text)
			assert.Equal(t, tt.crisis, res.Crisis != "")
			assert.Equal(t, tt.moderation, res.Moderation != "")
		})
	}
}

func TestScanCustomTermLists(t *testing.T) {
	cfg := config.Default()
	cfg.CrisisTerms = []string{"ennui"}
	cfg.BannedTerms = []string{"spam"}
	scanner := NewScanner(cfg, nil)

	assert.NotEmpty(t, scanner.Scan("deep ennui today").Crisis)
	assert.Empty(t, scanner.Scan("I want to kill myself").Crisis)
	assert.NotEmpty(t, scanner.Scan("buy my spam").Moderation)
	assert.Empty(t, scanner.Scan("doxx").Moderation)
}

func TestScanDeterministic(t *testing.T) {
	scanner := NewScanner(config.Default(), nil)

	first := scanner.Scan("feeling hurt myself levels of tired")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, scanner.Scan("feeling hurt myself levels of tired"))
	}
}
