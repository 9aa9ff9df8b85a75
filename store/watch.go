package store

import (
	"sync"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/log"
	"github.com/samber/lo"
)

// View selects which snapshot a subscription receives.
type View int

const (
	ViewAll View = iota
	ViewFavorites
)

func (v View) String() string {
	if v == ViewFavorites {
		return "favorites"
	}
	return "all"
}

// Subscription delivers snapshots of one view.
// C holds at most the latest snapshot: an unread one is replaced by a newer one.
type Subscription struct {
	C <-chan []anime.Anime

	ch       chan []anime.Anime
	view     View
	registry *registry
	once     sync.Once
}

// Close unregisters the subscription and closes C. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.registry.remove(s)
	})
}

// offer replaces any unread snapshot with items. Callers hold the registry lock.
func (s *Subscription) offer(items []anime.Anime) {
	for {
		select {
		case s.ch <- items:
			return
		default:
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

type registry struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	closed bool
}

func newRegistry() *registry {
	return &registry{subs: make(map[*Subscription]struct{})}
}

func (r *registry) watched(view View) bool {
	return lo.SomeBy(lo.Keys(r.subs), func(s *Subscription) bool { return s.view == view })
}

func (r *registry) deliver(view View, items []anime.Anime) {
	for s := range r.subs {
		if s.view == view {
			s.offer(cloneAll(items))
		}
	}
}

func (r *registry) remove(s *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[s]; !ok {
		return
	}
	delete(r.subs, s)
	close(s.ch)
}

func (r *registry) close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for s := range r.subs {
		close(s.ch)
	}
	r.subs = make(map[*Subscription]struct{})
	r.closed = true
}

func cloneAll(items []anime.Anime) []anime.Anime {
	return lo.Map(items, func(a anime.Anime, _ int) anime.Anime { return a.Clone() })
}

// Watch subscribes to a view. The current snapshot is delivered immediately.
func (s *Store) Watch(view View) *Subscription {
	ch := make(chan []anime.Anime, 1)
	sub := &Subscription{C: ch, ch: ch, view: view, registry: s.registry}

	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	if s.registry.closed {
		close(ch)
		return sub
	}

	s.registry.subs[sub] = struct{}{}

	items, err := s.load(view)
	if err != nil {
		log.Errorf("store: initial snapshot %s: %s", view, err)
		return sub
	}
	sub.offer(items)

	return sub
}
