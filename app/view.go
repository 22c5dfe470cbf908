// Package app derives read-only views of a feed snapshot for rendering.
package app

import (
	"sort"
	"strings"

	"github.com/provsupport/feedcore/model"
	"github.com/provsupport/feedcore/store"
)

// ViewQuery narrows a view. An empty Tag keeps every post; a blank Query
// (empty or whitespace-only) is treated as no filter.
type ViewQuery struct {
	Tag   string
	Query string
}

// View runs the fixed pipeline over the snapshot: exact tag filter, then
// case-insensitive free-text search, then a stable sort by CreatedAt
// descending. Pure and deterministic; the snapshot is never touched, and
// posts whose timestamps tie keep their snapshot order.
func View(snap store.Snapshot, q ViewQuery) []model.Post {
	query := strings.ToLower(strings.TrimSpace(q.Query))

	posts := snap.Posts()
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if q.Tag != "" && p.Tag != q.Tag {
			continue
		}
		if query != "" && !strings.Contains(searchText(p), query) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// searchText joins the searchable fields with single spaces: text, handle,
// tag when present, location.
func searchText(p model.Post) string {
	fields := make([]string, 0, 4)
	fields = append(fields, p.Text, p.Handle)
	if p.Tag != "" {
		fields = append(fields, p.Tag)
	}
	fields = append(fields, p.Location)
	return strings.ToLower(strings.Join(fields, " "))
}
