package app

import (
	"github.com/provsupport/feedcore/model"
	"github.com/provsupport/feedcore/store"
)

// DefaultPageSize is used when a cursor is built with a non-positive size.
const DefaultPageSize = 20

// FeedCursor walks a view in fixed-size pages for incremental rendering.
// It captures the view at construction time, so pages stay consistent even
// if the store moves on to newer snapshots.
type FeedCursor struct {
	posts    []model.Post
	offset   int
	pageSize int
}

// NewFeedCursor evaluates the query against the snapshot and returns a
// cursor over the result.
func NewFeedCursor(snap store.Snapshot, q ViewQuery, pageSize int) *FeedCursor {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &FeedCursor{
		posts:    View(snap, q),
		pageSize: pageSize,
	}
}

// Next returns the next page, or nil once the view is exhausted.
func (fc *FeedCursor) Next() []model.Post {
	if fc.offset >= len(fc.posts) {
		return nil
	}
	end := fc.offset + fc.pageSize
	if end > len(fc.posts) {
		end = len(fc.posts)
	}
	page := fc.posts[fc.offset:end]
	fc.offset = end
	return page
}

// Remaining reports how many posts have not been returned yet.
func (fc *FeedCursor) Remaining() int {
	return len(fc.posts) - fc.offset
}
