package jikan

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

const topPayload = `{
  "pagination": {"last_visible_page": 1094, "has_next_page": true},
  "data": [
    {
      "mal_id": 5114,
      "title": "Fullmetal Alchemist: Brotherhood",
      "images": {"jpg": {"image_url": "https://cdn.example.com/small.jpg", "large_image_url": "https://cdn.example.com/large.jpg"}},
      "trailer": {"youtube_id": "--IcmZkvL0Q", "embed_url": "https://www.youtube.com/embed/--IcmZkvL0Q?enablejsapi=1"},
      "score": 9.1,
      "episodes": 64,
      "status": "Finished Airing",
      "synopsis": "Two brothers search for the Philosopher's Stone.",
      "genres": [{"mal_id": 1, "name": "Action"}, {"mal_id": 8, "name": "Drama"}]
    },
    {
      "mal_id": 59978,
      "title": "Unaired",
      "images": {"jpg": {"image_url": "https://cdn.example.com/only-small.jpg", "large_image_url": null}},
      "trailer": {"youtube_id": null, "embed_url": null},
      "score": null,
      "episodes": null,
      "status": "Not yet aired",
      "synopsis": null,
      "genres": []
    }
  ]
}`

const detailPayload = `{"data": {"mal_id": 1, "title": "Cowboy Bebop", "score": 8.75, "episodes": 26, "genres": [{"name": "Sci-Fi"}]}}`

func TestClient(t *testing.T) {
	Convey("Given a catalog server", t, func() {
		var (
			hits     atomic.Int32
			lastPath string
			lastQ    string
			lastUA   string
		)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			lastPath, lastQ, lastUA = r.URL.Path, r.URL.RawQuery, r.UserAgent()

			switch r.URL.Path {
			case "/v4/top/anime", "/v4/anime":
				_, _ = w.Write([]byte(topPayload))
			case "/v4/anime/1":
				_, _ = w.Write([]byte(detailPayload))
			case "/v4/anime/2":
				_, _ = w.Write([]byte(`{"data": `))
			case "/v4/anime/429":
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"status": 429}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		client := New(srv.URL+"/v4/", WithHTTPClient(srv.Client()), WithRateLimit(0), WithPageSize(25))
		ctx := context.Background()

		Convey("Top maps the page", func() {
			page, err := client.Top(ctx, 0)
			So(err, ShouldBeNil)
			So(lastPath, ShouldEqual, "/v4/top/anime")
			So(lastQ, ShouldEqual, "limit=25&page=1")
			So(lastUA, ShouldNotBeEmpty)

			So(page.Pagination.HasNextPage, ShouldBeTrue)
			So(page.Pagination.LastVisiblePage, ShouldEqual, 1094)
			So(page.Items, ShouldHaveLength, 2)

			fma := page.Items[0]
			So(fma.ID, ShouldEqual, 5114)
			So(*fma.ImageURL, ShouldEqual, "https://cdn.example.com/large.jpg")
			So(*fma.TrailerURL, ShouldEqual, "https://www.youtube.com/embed/--IcmZkvL0Q?enablejsapi=1")
			So(*fma.Score, ShouldEqual, 9.1)
			So(*fma.Episodes, ShouldEqual, 64)
			So(fma.Genres, ShouldResemble, []string{"Action", "Drama"})
			So(fma.Favorite, ShouldBeFalse)

			Convey("missing optional values stay nil", func() {
				unaired := page.Items[1]
				So(*unaired.ImageURL, ShouldEqual, "https://cdn.example.com/only-small.jpg")
				So(unaired.Score, ShouldBeNil)
				So(unaired.Episodes, ShouldBeNil)
				So(unaired.Synopsis, ShouldBeNil)
				So(unaired.TrailerURL, ShouldBeNil)
				So(unaired.Genres, ShouldBeEmpty)
			})
		})

		Convey("Search passes the query", func() {
			page, err := client.Search(ctx, "bebop", 2)
			So(err, ShouldBeNil)
			So(lastPath, ShouldEqual, "/v4/anime")
			So(lastQ, ShouldEqual, "limit=25&page=2&q=bebop")
			So(page.Items, ShouldHaveLength, 2)
		})

		Convey("Search limit caps the requested page size", func() {
			limited := New(srv.URL+"/v4", WithHTTPClient(srv.Client()), WithRateLimit(0), WithSearchLimit(10))
			_, err := limited.Search(ctx, "bebop", 1)
			So(err, ShouldBeNil)
			So(lastQ, ShouldEqual, "limit=10&page=1&q=bebop")
		})

		Convey("Details maps a single object", func() {
			a, err := client.Details(ctx, 1)
			So(err, ShouldBeNil)
			So(a.ID, ShouldEqual, 1)
			So(a.Title, ShouldEqual, "Cowboy Bebop")
			So(a.ImageURL, ShouldBeNil)
			So(a.Genres, ShouldResemble, []string{"Sci-Fi"})
		})

		Convey("a 404 is a not-found status error", func() {
			_, err := client.Details(ctx, 404)
			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.NotFound(), ShouldBeTrue)
		})

		Convey("other statuses keep their code", func() {
			_, err := client.Details(ctx, 429)
			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.StatusCode, ShouldEqual, http.StatusTooManyRequests)
			So(statusErr.NotFound(), ShouldBeFalse)
			So(statusErr.Error(), ShouldContainSubstring, "429")
		})

		Convey("a truncated body is malformed", func() {
			_, err := client.Details(ctx, 2)
			So(errors.Is(err, ErrMalformedResponse), ShouldBeTrue)
		})

		Convey("a cancelled context never reaches the server", func() {
			throttled := New(srv.URL+"/v4", WithHTTPClient(srv.Client()), WithRateLimit(0.001))
			_, err := throttled.Details(ctx, 1)
			So(err, ShouldBeNil)

			before := hits.Load()
			short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
			defer cancel()
			_, err = throttled.Details(short, 1)
			So(err, ShouldNotBeNil)
			So(hits.Load(), ShouldEqual, before)
		})
	})
}
