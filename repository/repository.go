// Package repository is the offline-first synchronization boundary between the catalog, the cache and the UI.
package repository

import (
	"context"
	"strings"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/jikan"
	"github.com/anidex-cli/anidex/log"
	"github.com/anidex-cli/anidex/network"
	"github.com/anidex-cli/anidex/store"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Remote is the catalog source.
type Remote interface {
	Top(ctx context.Context, page int) (*jikan.Page, error)
	Details(ctx context.Context, id int) (anime.Anime, error)
	Search(ctx context.Context, query string, page int) (*jikan.Page, error)
}

// Cache is the local store.
type Cache interface {
	Get(id int) (mo.Option[anime.Anime], error)
	Merge(items []anime.Anime, fn store.MergeFunc) error
	SetFavorite(id int, favorite bool) error
	Clear() error
	Watch(view store.View) *store.Subscription
}

// History remembers search queries.
type History interface {
	Remember(query string) error
}

// Repository applies the cache-or-fetch policy. Every returned error is a *Error.
type Repository struct {
	remote  Remote
	cache   Cache
	checker network.Checker
	history History
}

// Option customizes a Repository.
type Option func(*Repository)

// WithHistory records every search query in h.
func WithHistory(h History) Option {
	return func(r *Repository) { r.history = h }
}

func New(remote Remote, cache Cache, checker network.Checker, opts ...Option) *Repository {
	r := &Repository{remote: remote, cache: cache, checker: checker}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func fail(op Op, err error) *Error {
	e := Classify(err, op)
	log.With(log.Fields{"kind": e.Kind.String(), "op": op}).Warn(e.Err)
	return e
}

// Refresh fetches the first page of top anime and merges it into the cache.
// Cached favorites survive. On failure the cache is untouched.
func (r *Repository) Refresh(ctx context.Context) (int, error) {
	if !r.checker.Online(ctx) {
		return 0, offline(OpRefresh)
	}

	page, err := r.remote.Top(ctx, 1)
	if err != nil {
		return 0, fail(OpRefresh, err)
	}

	if err = r.cache.Merge(page.Items, store.PreserveFavorite); err != nil {
		return 0, fail(OpRefresh, err)
	}

	log.Infof("refreshed %d anime", len(page.Items))
	return len(page.Items), nil
}

// Details returns the cached record, fetching and caching it only on a miss.
func (r *Repository) Details(ctx context.Context, id int) (anime.Anime, error) {
	cached, err := r.cache.Get(id)
	if err != nil {
		return anime.Anime{}, fail(OpDetails, err)
	}

	if a, ok := cached.Get(); ok {
		return a, nil
	}

	if !r.checker.Online(ctx) {
		return anime.Anime{}, offline(OpDetails)
	}

	a, err := r.remote.Details(ctx, id)
	if err != nil {
		return anime.Anime{}, fail(OpDetails, err)
	}

	if err = r.cache.Merge([]anime.Anime{a}, store.PreserveFavorite); err != nil {
		return anime.Anime{}, fail(OpDetails, err)
	}

	if fresh, err := r.cache.Get(id); err == nil && fresh.IsPresent() {
		return fresh.MustGet(), nil
	}
	return a, nil
}

// ToggleFavorite flips the favorite flag of a cached record and returns the new value.
func (r *Repository) ToggleFavorite(ctx context.Context, id int) (bool, error) {
	cached, err := r.cache.Get(id)
	if err != nil {
		return false, fail(OpToggleFavorite, err)
	}

	a, ok := cached.Get()
	if !ok {
		return false, &Error{Kind: NotFound, Message: msgNotFound}
	}

	favorite := !a.Favorite
	if err = r.cache.SetFavorite(id, favorite); err != nil {
		return false, fail(OpToggleFavorite, err)
	}

	return favorite, nil
}

// Search queries the catalog directly. Results are not cached
// but carry the favorite flag of cached records with the same id.
func (r *Repository) Search(ctx context.Context, query string) ([]anime.Anime, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &Error{Kind: Unclassified, Message: msgEmptyQuery}
	}

	if !r.checker.Online(ctx) {
		return nil, offline(OpSearch)
	}

	if r.history != nil {
		if err := r.history.Remember(query); err != nil {
			log.Warnf("remember query %q: %s", query, err)
		}
	}

	page, err := r.remote.Search(ctx, query, 1)
	if err != nil {
		return nil, fail(OpSearch, err)
	}

	return lo.Map(page.Items, func(a anime.Anime, _ int) anime.Anime {
		if cached, err := r.cache.Get(a.ID); err == nil {
			if c, ok := cached.Get(); ok {
				a.Favorite = c.Favorite
			}
		}
		return a
	}), nil
}

// Clear removes every cached record.
func (r *Repository) Clear(_ context.Context) error {
	if err := r.cache.Clear(); err != nil {
		return fail(OpClear, err)
	}
	return nil
}

// WatchAll subscribes to every cached anime.
func (r *Repository) WatchAll() *store.Subscription {
	return r.cache.Watch(store.ViewAll)
}

// WatchFavorites subscribes to cached favorites.
func (r *Repository) WatchFavorites() *store.Subscription {
	return r.cache.Watch(store.ViewFavorites)
}
