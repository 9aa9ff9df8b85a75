package anime

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAnime(t *testing.T) {
	Convey("Given a fully populated anime", t, func() {
		a := Anime{
			ID:         5114,
			Title:      "Fullmetal Alchemist: Brotherhood",
			ImageURL:   Ptr("https://cdn.myanimelist.net/images/anime/1208/94745l.jpg"),
			Score:      Ptr(9.1),
			Episodes:   Ptr(64),
			Status:     Ptr("Finished Airing"),
			Synopsis:   Ptr("Two brothers..."),
			TrailerURL: Ptr("https://www.youtube.com/embed/--IcmZkvL0Q"),
			Genres:     []string{"Action", "Adventure", "Drama"},
		}

		Convey("Clone is deep", func() {
			c := a.Clone()
			So(c.Equal(a), ShouldBeTrue)

			*c.Score = 1
			c.Genres[0] = "Comedy"
			So(*a.Score, ShouldEqual, 9.1)
			So(a.Genres[0], ShouldEqual, "Action")
		})

		Convey("Equal treats genres as a set", func() {
			b := a.Clone()
			b.Genres = []string{"Drama", "Action", "Adventure"}
			So(a.Equal(b), ShouldBeTrue)

			b.Genres = []string{"Drama"}
			So(a.Equal(b), ShouldBeFalse)
		})

		Convey("Equal notices a changed optional field", func() {
			b := a.Clone()
			b.Status = nil
			So(a.Equal(b), ShouldBeFalse)
		})

		Convey("Helpers", func() {
			So(a.HasTrailer(), ShouldBeTrue)
			So(a.ScoreOr(0), ShouldEqual, 9.1)
			So(a.String(), ShouldEqual, "Fullmetal Alchemist: Brotherhood (9.10)")
			So(a.GenreList(), ShouldEqual, "Action, Adventure, Drama")
		})
	})

	Convey("Given a sparse anime", t, func() {
		a := Anime{ID: 1, Title: "Unknown"}

		Convey("Clone normalises nil genres to an empty list", func() {
			So(a.Clone().Genres, ShouldNotBeNil)
			So(a.Clone().Genres, ShouldBeEmpty)
		})

		Convey("Missing values fall back", func() {
			So(a.HasTrailer(), ShouldBeFalse)
			So(a.ScoreOr(-1), ShouldEqual, -1)
			So(a.String(), ShouldEqual, "Unknown")
		})
	})

	Convey("IDs keeps order", t, func() {
		So(IDs([]Anime{{ID: 2}, {ID: 1}, {ID: 3}}), ShouldResemble, []int{2, 1, 3})
	})
}
