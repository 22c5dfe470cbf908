package model

// ScanResult is the advisory pair produced by scanning draft text. An empty
// field means no advisory. Crisis is informational only; Moderation blocks
// submission.
type ScanResult struct {
	Crisis     string `json:"crisis,omitempty"`
	Moderation string `json:"moderation,omitempty"`
}

// Blocked reports whether the result carries the blocking moderation flag.
func (r ScanResult) Blocked() bool {
	return r.Moderation != ""
}

// Draft is the caller-owned composer state. It is transient: nothing here
// reaches the feed store until a submission succeeds. CrisisFlag and
// ModerationFlag hold the advisories from the most recent scan of Text.
type Draft struct {
	Text           string `json:"text"`
	Tag            string `json:"tag,omitempty"`
	Location       string `json:"location"`
	CrisisFlag     string `json:"crisisFlag,omitempty"`
	ModerationFlag string `json:"moderationFlag,omitempty"`
}

// WithScan returns a copy of the draft carrying the advisories from res.
// Call it after every text change so the flags never go stale.
func (d Draft) WithScan(res ScanResult) Draft {
	d.CrisisFlag = res.Crisis
	d.ModerationFlag = res.Moderation
	return d
}

// Blocked reports whether the draft's last scan raised the moderation flag.
func (d Draft) Blocked() bool {
	return d.ModerationFlag != ""
}
