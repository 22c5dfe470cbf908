package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/provsupport/feedcore/config"
	"github.com/provsupport/feedcore/model"
	"github.com/provsupport/feedcore/moderation"
	"github.com/provsupport/feedcore/util"
)

// Opts tunes a Store. Zero values fall back to slog.Default and time.Now.
type Opts struct {
	Logger *slog.Logger
	Now    func() time.Time
}

// Store owns the current snapshot and serializes mutations behind a mutex,
// so the single-logical-writer discipline survives even if a future caller
// embeds it somewhere concurrent. Every mutation revalidates its input,
// runs the moderation gate, and swaps in the snapshot produced by the pure
// operation; failed operations leave the current snapshot untouched.
type Store struct {
	cfg     *config.Config
	scanner *moderation.Scanner
	log     *slog.Logger
	now     func() time.Time

	mu      sync.Mutex
	current Snapshot
}

// New builds an empty store. scanner may be nil, in which case the store
// only enforces the caller-supplied draft flags and skips comment scanning.
func New(cfg *config.Config, scanner *moderation.Scanner, opts *Opts) *Store {
	if opts == nil {
		opts = &Opts{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		cfg:     cfg,
		scanner: scanner,
		log:     log,
		now:     now,
	}
}

// Snapshot returns the current snapshot.
func (st *Store) Snapshot() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.current
}

// CreatePost validates the draft, applies the moderation gate, and
// publishes a new post under the given handle. The store re-scans the text
// itself, so a caller with stale (or missing) draft flags cannot slip a
// banned post through. Returns the snapshot the store holds afterwards.
func (st *Store) CreatePost(draft model.Draft, handle string) (Snapshot, error) {
	if err := validateDraft(st.cfg, draft); err != nil {
		return st.Snapshot(), err
	}
	draft.Text = util.SanitizeText(draft.Text)
	if st.scanner != nil {
		if res := st.scanner.Scan(draft.Text); res.Blocked() {
			draft = draft.WithScan(res)
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	next, err := st.current.CreatePost(draft, handle, st.now())
	if err != nil {
		return st.current, err
	}
	st.current = next
	st.log.Info("post created",
		"post_id", next.posts[0].ID,
		"handle", handle,
		"tag", draft.Tag,
		"location", draft.Location,
		"version", next.version)
	return next, nil
}

// Upvote increments the target post's vote counter by 1.
func (st *Store) Upvote(postID string) (Snapshot, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, err := st.current.Upvote(postID)
	if err != nil {
		return st.current, err
	}
	st.current = next
	st.log.Info("post upvoted", "post_id", postID, "version", next.version)
	return next, nil
}

// AddComment appends a comment to the target post. When ScanComments is
// set, comment text goes through the banned-terms check and a hit fails
// with a ValidationError carrying the moderation warning; crisis advisories
// on comments remain the composer's concern.
func (st *Store) AddComment(postID, text string) (Snapshot, error) {
	text = util.SanitizeText(text)
	if st.cfg.ScanComments && st.scanner != nil {
		if res := st.scanner.Scan(text); res.Blocked() {
			return st.Snapshot(), &model.ValidationError{Message: res.Moderation}
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	next, err := st.current.AddComment(postID, text, st.now())
	if err != nil {
		return st.current, err
	}
	st.current = next
	st.log.Info("comment added", "post_id", postID, "version", next.version)
	return next, nil
}

// Seed replaces the store contents with the given posts, bypassing the
// moderation gate. Meant for fixtures and the demo caller.
func (st *Store) Seed(posts []model.Post) Snapshot {
	copied := make([]model.Post, len(posts))
	copy(copied, posts)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = Snapshot{version: st.current.version + 1, posts: copied}
	st.log.Debug("store seeded", "posts", len(copied), "version", st.current.version)
	return st.current
}
