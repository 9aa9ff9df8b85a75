package query

import (
	"sync"
	"testing"

	"github.com/anidex-cli/anidex/filesystem"
	"github.com/anidex-cli/anidex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		So(Forget(), ShouldBeNil)

		Convey("When remembering queries", func() {
			So(Remember("naruto", 1), ShouldBeNil)
			So(Remember("bleach", 10), ShouldBeNil)

			Convey("Then suggestions should be sorted by rank", func() {
				s := SuggestMany("ble")
				So(s, ShouldNotBeEmpty)
				So(s[0], ShouldEqual, "bleach")
				So(Suggest("nar").MustGet(), ShouldEqual, "naruto")
			})

			Convey("Then a new query invalidates cached suggestions", func() {
				So(SuggestMany("bl"), ShouldResemble, []string{"bleach"})
				So(History{}.Remember("Blue Lock"), ShouldBeNil)
				So(SuggestMany("bl"), ShouldContain, "blue lock")
			})

			Convey("Then equal ranks prefer the closer query", func() {
				So(Remember("one piece film red", 1), ShouldBeNil)
				So(Remember("one piece", 1), ShouldBeNil)
				s := SuggestMany("one piece")
				So(s[0], ShouldEqual, "one piece")
			})

			Convey("Then forgetting drops everything", func() {
				So(Forget(), ShouldBeNil)
				So(Suggest("ble").IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("Blank queries are ignored", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(SuggestMany(""), ShouldBeEmpty)
		})

		Convey("Suggestions can be disabled", func() {
			So(Remember("monster", 1), ShouldBeNil)
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)
			So(SuggestMany("mon"), ShouldBeEmpty)
		})

		Convey("It sanitizes input", func() {
			So(sanitize("  NARUTO  "), ShouldEqual, "naruto")
		})
	})
}

func TestConcurrentRememberAndSuggest(t *testing.T) {
	Convey("Remembering while suggesting from another goroutine is safe", t, func() {
		So(Forget(), ShouldBeNil)

		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_ = History{}.Remember("naruto")
			}
		}()

		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_ = Suggest("nar")
			}
		}()

		wg.Wait()

		So(Suggest("nar").OrEmpty(), ShouldEqual, "naruto")
	})
}
