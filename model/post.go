package model

import "time"

// Comment is owned by its parent post and is immutable once created; the
// only permitted change to a comment sequence is appending to it.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a single anonymous feed entry. Votes only ever increases and
// CreatedAt is assigned once at creation. Handle is decoration, not
// identity: the same handle may show up on unrelated posts.
type Post struct {
	ID        string    `json:"id"`
	Handle    string    `json:"handle"`
	Text      string    `json:"text"`
	Tag       string    `json:"tag,omitempty"` // empty means untagged
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"createdAt"`
	Comments  []Comment `json:"comments"`
	Location  string    `json:"location"`
}
