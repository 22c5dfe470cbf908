package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provsupport/feedcore/model"
)

func TestFeedCursorPagination(t *testing.T) {
	posts := make([]model.Post, 5)
	for i := range posts {
		posts[i] = model.Post{
			ID:        string(rune('a' + i)),
			Handle:    "h",
			Text:      "t",
			CreatedAt: time.Unix(int64(1000-i), 0),
			Location:  "l",
		}
	}
	snap := seededStore(t, posts)

	cursor := NewFeedCursor(snap, ViewQuery{}, 2)
	assert.Equal(t, 5, cursor.Remaining())

	first := cursor.Next()
	require.Len(t, first, 2)
	assert.Equal(t, []string{"a", "b"}, postIDs(first))

	second := cursor.Next()
	assert.Equal(t, []string{"c", "d"}, postIDs(second))

	third := cursor.Next()
	assert.Equal(t, []string{"e"}, postIDs(third))
	assert.Zero(t, cursor.Remaining())

	assert.Nil(t, cursor.Next())
	assert.Nil(t, cursor.Next())
}

func TestFeedCursorEmptyView(t *testing.T) {
	snap := twoPostSnapshot(t)

	cursor := NewFeedCursor(snap, ViewQuery{Tag: "#Gratitude"}, 10)
	assert.Nil(t, cursor.Next())
	assert.Zero(t, cursor.Remaining())
}

func TestFeedCursorDefaultPageSize(t *testing.T) {
	snap := twoPostSnapshot(t)

	cursor := NewFeedCursor(snap, ViewQuery{}, 0)
	assert.Len(t, cursor.Next(), 2)
}
