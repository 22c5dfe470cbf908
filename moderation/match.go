package moderation

import (
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldText lower-cases text and strips combining marks (NFD, remove Mn,
// NFC) so that accented or mixed-case spellings still match plain-ASCII
// terms.
func FoldText(text string) string {
	// the transform chain is per-call to prevent a race condition
	normFunc := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	lower := strings.ToLower(text)
	folded, _, err := transform.String(normFunc, lower)
	if err != nil {
		slog.Warn("unicode normalization error", "err", err)
		return lower
	}
	return folded
}

// ContainsAny reports whether any term occurs as a contiguous substring of
// the folded text. No tokenization and no word-boundary checks: "skys"
// matches the term "kys". Deliberately high recall; a missed crisis signal
// costs far more than a false advisory.
func ContainsAny(text string, terms []string) bool {
	folded := FoldText(text)
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(folded, FoldText(term)) {
			return true
		}
	}
	return false
}
