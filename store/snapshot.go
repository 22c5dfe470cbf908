// Package store is the authoritative post/comment collection. Every
// mutation produces a new immutable Snapshot; callers holding an older
// snapshot observe no change.
package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/provsupport/feedcore/model"
)

// Snapshot is the feed at one point in logical time: posts in creation
// order (newest first) with a monotonically increasing version. The zero
// value is an empty feed. All operations are pure; the receiver is never
// modified.
type Snapshot struct {
	version int64
	posts   []model.Post
}

// Version returns the snapshot's logical version, starting at 0 for the
// empty feed and incremented by every successful mutation.
func (s Snapshot) Version() int64 {
	return s.version
}

// Len returns the number of posts.
func (s Snapshot) Len() int {
	return len(s.posts)
}

// Posts returns the posts in creation order, newest first. The returned
// slice is the caller's to keep; treat the post values as read-only.
func (s Snapshot) Posts() []model.Post {
	out := make([]model.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Get returns the post with the given id, if present.
func (s Snapshot) Get(postID string) (model.Post, bool) {
	idx := s.indexOf(postID)
	if idx < 0 {
		return model.Post{}, false
	}
	return s.posts[idx], true
}

// CreatePost returns a new snapshot with a freshly allocated post at the
// front of the creation order. It fails with a ValidationError when the
// trimmed text is empty or the draft still carries a moderation flag; the
// receiver is returned unchanged on failure.
func (s Snapshot) CreatePost(draft model.Draft, handle string, now time.Time) (Snapshot, error) {
	text := strings.TrimSpace(draft.Text)
	if text == "" {
		return s, &model.ValidationError{Message: "post text is empty"}
	}
	if draft.Blocked() {
		return s, &model.ValidationError{Message: draft.ModerationFlag}
	}

	post := model.Post{
		ID:        uuid.NewString(),
		Handle:    handle,
		Text:      text,
		Tag:       draft.Tag,
		Votes:     0,
		CreatedAt: now,
		Location:  draft.Location,
	}
	posts := make([]model.Post, 0, len(s.posts)+1)
	posts = append(posts, post)
	posts = append(posts, s.posts...)
	return Snapshot{version: s.version + 1, posts: posts}, nil
}

// Upvote returns a new snapshot with the target post's vote counter
// incremented by exactly 1. Not a toggle: n calls add n. Fails with a
// NotFoundError when the id is absent.
func (s Snapshot) Upvote(postID string) (Snapshot, error) {
	idx := s.indexOf(postID)
	if idx < 0 {
		return s, &model.NotFoundError{PostID: postID}
	}
	posts := make([]model.Post, len(s.posts))
	copy(posts, s.posts)
	posts[idx].Votes++
	return Snapshot{version: s.version + 1, posts: posts}, nil
}

// AddComment returns a new snapshot with a fresh comment appended to the
// target post's sequence, leaving every other post untouched. Fails with a
// NotFoundError for an unknown id and a ValidationError for blank text.
func (s Snapshot) AddComment(postID, text string, now time.Time) (Snapshot, error) {
	idx := s.indexOf(postID)
	if idx < 0 {
		return s, &model.NotFoundError{PostID: postID}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return s, &model.ValidationError{Message: "comment text is empty"}
	}

	posts := make([]model.Post, len(s.posts))
	copy(posts, s.posts)

	// copy the comment sequence so the post published in the old snapshot
	// never sees the append
	target := posts[idx]
	comments := make([]model.Comment, 0, len(target.Comments)+1)
	comments = append(comments, target.Comments...)
	comments = append(comments, model.Comment{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: now,
	})
	posts[idx].Comments = comments
	return Snapshot{version: s.version + 1, posts: posts}, nil
}

func (s Snapshot) indexOf(postID string) int {
	for i, p := range s.posts {
		if p.ID == postID {
			return i
		}
	}
	return -1
}
