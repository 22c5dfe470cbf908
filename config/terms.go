package config

import (
	"encoding/json"
	"io"
	"os"
)

// Term-list file keys.
const (
	TermListCrisis = "crisis"
	TermListBanned = "banned"
)

// LoadTermsFromFileJSON replaces the crisis and/or banned term lists with
// the contents of a JSON file of the form {"crisis": [...], "banned": [...]}.
// Lists absent from the file are left untouched.
func (c *Config) LoadTermsFromFileJSON(p string) error {
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	raw, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	var lists map[string][]string
	if err := json.Unmarshal(raw, &lists); err != nil {
		return err
	}

	if terms, ok := lists[TermListCrisis]; ok {
		c.CrisisTerms = terms
	}
	if terms, ok := lists[TermListBanned]; ok {
		c.BannedTerms = terms
	}
	return nil
}
