package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/provsupport/feedcore/model"
)

// SeedPosts returns the demo feed: three posts with comments, timestamped
// relative to now so the sort order matches a live feed.
func SeedPosts(now time.Time) []model.Post {
	return []model.Post{
		{
			ID:        uuid.NewString(),
			Handle:    "TealOtter",
			Text:      "First midterms hitting hard. Anyone else juggling DWC and FIN 113? Tips for staying sane?",
			Tag:       "#Stress",
			Votes:     12,
			CreatedAt: now.Add(-2 * time.Hour),
			Comments: []model.Comment{
				{
					ID:        uuid.NewString(),
					Text:      "Block 50-minute focus + 10 min walk. Helps a ton.",
					CreatedAt: now.Add(-90 * time.Minute),
				},
			},
			Location: "PC Campus (Geofence Mock)",
		},
		{
			ID:        uuid.NewString(),
			Handle:    "IndigoFox",
			Text:      "Shoutout to anyone taking a mental health walk on the Riverwalk tonight. DM-less solidarity \U0001F60A",
			Tag:       "#ProvidenceLife",
			Votes:     7,
			CreatedAt: now.Add(-6 * time.Hour),
			Location:  "Providence City (Geofence Mock)",
		},
		{
			ID:        uuid.NewString(),
			Handle:    "AmberHeron",
			Text:      "Athletes—how do you balance lift + practice + sleep? My brain's cooked by 10pm.",
			Tag:       "#Athletes",
			Votes:     5,
			CreatedAt: now.Add(-12 * time.Hour),
			Comments: []model.Comment{
				{
					ID:        uuid.NewString(),
					Text:      "Coach let us nap slots post-lift. Ask for it!",
					CreatedAt: now.Add(-10 * time.Hour),
				},
			},
			Location: "PC Campus (Geofence Mock)",
		},
	}
}
