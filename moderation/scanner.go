// Package moderation holds the content-safety core: a case-folded term
// matcher and the scanner that turns draft text into the crisis/moderation
// advisory pair shown by the composer.
package moderation

import (
	"log/slog"
	"strings"

	"github.com/provsupport/feedcore/config"
	"github.com/provsupport/feedcore/model"
)

// Scanner classifies drafted text against two independent term lists. The
// crisis list yields a support message that never blocks submission; the
// banned list yields a warning that does. Scan is synchronous and has no
// caching, so callers can (and should) invoke it on every text change.
type Scanner struct {
	crisisTerms       []string
	bannedTerms       []string
	crisisMessage     string
	moderationWarning string
	log               *slog.Logger
}

// NewScanner builds a scanner from the configured term lists and messages.
// A nil logger falls back to slog.Default.
func NewScanner(cfg *config.Config, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{
		crisisTerms:       append([]string(nil), cfg.CrisisTerms...),
		bannedTerms:       append([]string(nil), cfg.BannedTerms...),
		crisisMessage:     cfg.CrisisMessage,
		moderationWarning: cfg.ModerationWarning,
		log:               log,
	}
}

// Scan classifies text. Blank text clears both advisories; otherwise the
// two checks run independently and can both fire on the same text.
func (s *Scanner) Scan(text string) model.ScanResult {
	if strings.TrimSpace(text) == "" {
		return model.ScanResult{}
	}
	var res model.ScanResult
	if ContainsAny(text, s.crisisTerms) {
		res.Crisis = s.crisisMessage
		s.log.Debug("crisis terms detected in draft")
	}
	if ContainsAny(text, s.bannedTerms) {
		res.Moderation = s.moderationWarning
		s.log.Debug("banned terms detected in draft")
	}
	return res
}
