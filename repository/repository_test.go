package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"syscall"
	"testing"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/jikan"
	"github.com/anidex-cli/anidex/network"
	"github.com/anidex-cli/anidex/store"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeRemote struct {
	top     []anime.Anime
	details map[int]anime.Anime
	search  []anime.Anime
	err     error

	calls atomic.Int32
}

func (f *fakeRemote) Top(_ context.Context, _ int) (*jikan.Page, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &jikan.Page{Items: f.top}, nil
}

func (f *fakeRemote) Details(_ context.Context, id int) (anime.Anime, error) {
	f.calls.Add(1)
	if f.err != nil {
		return anime.Anime{}, f.err
	}
	a, ok := f.details[id]
	if !ok {
		return anime.Anime{}, &jikan.StatusError{StatusCode: 404, URL: "/anime/" + strconv.Itoa(id)}
	}
	return a, nil
}

func (f *fakeRemote) Search(_ context.Context, _ string, _ int) (*jikan.Page, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &jikan.Page{Items: f.search}, nil
}

type fakeHistory []string

func (h *fakeHistory) Remember(q string) error {
	*h = append(*h, q)
	return nil
}

func scored(id int, score float64) anime.Anime {
	return anime.Anime{ID: id, Title: "Anime " + strconv.Itoa(id), Score: anime.Ptr(score), Genres: []string{}}
}

func newFixture(t *testing.T) (*Repository, *fakeRemote, *store.Store, *atomic.Bool, *fakeHistory) {
	cache, err := store.Open(filepath.Join(t.TempDir(), "anidex.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { cache.Close() })

	online := &atomic.Bool{}
	online.Store(true)

	remote := &fakeRemote{details: map[int]anime.Anime{}}
	history := &fakeHistory{}
	repo := New(remote, cache, network.CheckerFunc(func(context.Context) bool { return online.Load() }), WithHistory(history))

	return repo, remote, cache, online, history
}

func TestRefresh(t *testing.T) {
	Convey("Given a repository", t, func() {
		repo, remote, cache, online, _ := newFixture(t)
		ctx := context.Background()
		remote.top = []anime.Anime{scored(1, 8.5), scored(2, 9.0), scored(3, 7.2)}

		Convey("a refresh fills the cache in score order", func() {
			n, err := repo.Refresh(ctx)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 3)

			all, _ := cache.All()
			So(anime.IDs(all), ShouldResemble, []int{2, 1, 3})

			Convey("and repeating it changes nothing visible", func() {
				_, err := repo.Refresh(ctx)
				So(err, ShouldBeNil)
				again, _ := cache.All()
				So(len(again), ShouldEqual, len(all))
				for i := range all {
					So(again[i].Equal(all[i]), ShouldBeTrue)
				}
			})

			Convey("and favorites survive it", func() {
				_, err := repo.ToggleFavorite(ctx, 1)
				So(err, ShouldBeNil)
				_, err = repo.Refresh(ctx)
				So(err, ShouldBeNil)

				favs, _ := cache.Favorites()
				So(anime.IDs(favs), ShouldResemble, []int{1})
			})
		})

		Convey("subscribers see the refreshed set", func() {
			sub := repo.WatchAll()
			defer sub.Close()
			So(<-sub.C, ShouldBeEmpty)

			_, err := repo.Refresh(ctx)
			So(err, ShouldBeNil)
			So(anime.IDs(<-sub.C), ShouldResemble, []int{2, 1, 3})
		})

		Convey("offline short-circuits without a network call", func() {
			online.Store(false)
			_, err := repo.Refresh(ctx)
			So(KindOf(err), ShouldEqual, Connectivity)
			So(err.Error(), ShouldEqual, "No internet connection. Showing cached data.")
			So(remote.calls.Load(), ShouldEqual, 0)
		})

		Convey("a failed fetch leaves the cache untouched", func() {
			So(cache.Put(scored(9, 1)), ShouldBeNil)
			remote.err = &url.Error{Op: "Get", URL: "https://api.jikan.moe/v4/top/anime", Err: context.DeadlineExceeded}

			_, err := repo.Refresh(ctx)
			So(KindOf(err), ShouldEqual, Timeout)
			So(err.Error(), ShouldEqual, "Connection timeout. Please check your internet connection.")

			all, _ := cache.All()
			So(anime.IDs(all), ShouldResemble, []int{9})
		})
	})
}

func TestDetails(t *testing.T) {
	Convey("Given a repository", t, func() {
		repo, remote, cache, online, _ := newFixture(t)
		ctx := context.Background()

		Convey("a cached id never touches the network", func() {
			So(cache.Put(scored(5, 7)), ShouldBeNil)
			online.Store(false)

			a, err := repo.Details(ctx, 5)
			So(err, ShouldBeNil)
			So(a.ID, ShouldEqual, 5)
			So(remote.calls.Load(), ShouldEqual, 0)
		})

		Convey("a miss is fetched and cached", func() {
			remote.details[7] = scored(7, 6)

			a, err := repo.Details(ctx, 7)
			So(err, ShouldBeNil)
			So(a.ID, ShouldEqual, 7)
			So(remote.calls.Load(), ShouldEqual, 1)

			_, err = repo.Details(ctx, 7)
			So(err, ShouldBeNil)
			So(remote.calls.Load(), ShouldEqual, 1)
		})

		Convey("a miss while offline fails without substitution", func() {
			online.Store(false)
			_, err := repo.Details(ctx, 7)
			So(KindOf(err), ShouldEqual, Connectivity)
			So(err.Error(), ShouldEqual, "No internet connection and anime not found in cache")
		})

		Convey("a 404 is not found", func() {
			_, err := repo.Details(ctx, 404)
			So(KindOf(err), ShouldEqual, NotFound)
			So(err.Error(), ShouldEqual, "Anime not found")

			got, _ := cache.Get(404)
			So(got.IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestToggleFavorite(t *testing.T) {
	Convey("Given a repository", t, func() {
		repo, _, cache, _, _ := newFixture(t)
		ctx := context.Background()

		Convey("toggling flips the flag both ways", func() {
			So(cache.Put(scored(1, 5)), ShouldBeNil)

			fav, err := repo.ToggleFavorite(ctx, 1)
			So(err, ShouldBeNil)
			So(fav, ShouldBeTrue)

			fav, err = repo.ToggleFavorite(ctx, 1)
			So(err, ShouldBeNil)
			So(fav, ShouldBeFalse)
		})

		Convey("an unknown id is not found and the cache is unchanged", func() {
			So(cache.Put(scored(1, 5)), ShouldBeNil)
			before, _ := cache.All()

			_, err := repo.ToggleFavorite(ctx, 2)
			So(KindOf(err), ShouldEqual, NotFound)
			So(errors.Is(err, &Error{Kind: NotFound}), ShouldBeTrue)

			after, _ := cache.All()
			So(len(after), ShouldEqual, len(before))
			So(after[0].Equal(before[0]), ShouldBeTrue)
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a repository", t, func() {
		repo, remote, cache, online, history := newFixture(t)
		ctx := context.Background()
		remote.search = []anime.Anime{scored(1, 8), scored(2, 7)}

		Convey("results carry cached favorites and are not cached", func() {
			fav := scored(2, 7)
			fav.Favorite = true
			So(cache.Put(fav), ShouldBeNil)

			items, err := repo.Search(ctx, "  bebop ")
			So(err, ShouldBeNil)
			So(anime.IDs(items), ShouldResemble, []int{1, 2})
			So(items[0].Favorite, ShouldBeFalse)
			So(items[1].Favorite, ShouldBeTrue)
			So([]string(*history), ShouldResemble, []string{"bebop"})

			got, _ := cache.Get(1)
			So(got.IsAbsent(), ShouldBeTrue)
		})

		Convey("an empty query never reaches the network", func() {
			_, err := repo.Search(ctx, "   ")
			So(KindOf(err), ShouldEqual, Unclassified)
			So(remote.calls.Load(), ShouldEqual, 0)
		})

		Convey("offline search needs a connection", func() {
			online.Store(false)
			_, err := repo.Search(ctx, "bebop")
			So(KindOf(err), ShouldEqual, Connectivity)
			So(err.Error(), ShouldEqual, "Internet connection required for search")
		})
	})
}

func TestClear(t *testing.T) {
	Convey("Clear empties the cache", t, func() {
		repo, _, cache, _, _ := newFixture(t)
		So(cache.Put(scored(1, 1)), ShouldBeNil)
		So(repo.Clear(context.Background()), ShouldBeNil)
		all, _ := cache.All()
		So(all, ShouldBeEmpty)
	})
}

func TestClassify(t *testing.T) {
	Convey("Given failures from below the boundary", t, func() {
		Convey("nil stays nil", func() {
			So(Classify(nil, OpRefresh), ShouldBeNil)
		})

		Convey("DNS and refused connections are connectivity", func() {
			dns := &url.Error{Op: "Get", URL: "x", Err: &net.OpError{Op: "dial", Err: &net.DNSError{Err: "no such host", Name: "api.jikan.moe"}}}
			So(Classify(dns, OpSearch).Kind, ShouldEqual, Connectivity)
			So(Classify(dns, OpSearch).Message, ShouldEqual, "No internet connection")

			refused := &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}
			So(Classify(refused, OpDetails).Kind, ShouldEqual, Connectivity)
		})

		Convey("timeouts use the op-specific message", func() {
			So(Classify(context.DeadlineExceeded, OpDetails).Message, ShouldEqual, "Connection timeout")
			So(Classify(context.DeadlineExceeded, OpRefresh).Message, ShouldEqual, "Connection timeout. Please check your internet connection.")
		})

		Convey("transport failures are generic network errors", func() {
			err := fmt.Errorf("%w: /top/anime: unexpected EOF", jikan.ErrMalformedResponse)
			So(Classify(err, OpRefresh).Kind, ShouldEqual, TransportIO)
			So(Classify(err, OpRefresh).Message, ShouldEqual, "Network error occurred")

			reset := &url.Error{Op: "Get", URL: "x", Err: errors.New("connection reset by peer")}
			So(Classify(reset, OpRefresh).Kind, ShouldEqual, TransportIO)
		})

		Convey("a 404 is not found only for details", func() {
			notFound := &jikan.StatusError{StatusCode: 404}
			So(Classify(notFound, OpDetails).Kind, ShouldEqual, NotFound)
			So(Classify(notFound, OpRefresh).Kind, ShouldEqual, Unclassified)
		})

		Convey("other errors keep their text", func() {
			So(Classify(errors.New("disk full"), OpClear).Message, ShouldEqual, "disk full")
			So(Classify(errors.New(""), OpClear).Message, ShouldEqual, "Unknown error occurred")
		})

		Convey("repository errors pass through", func() {
			e := &Error{Kind: NotFound, Message: "Anime not found"}
			So(Classify(fmt.Errorf("wrapped: %w", e), OpDetails), ShouldEqual, e)
		})
	})
}
