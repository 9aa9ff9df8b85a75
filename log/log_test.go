package log

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFacade(t *testing.T) {
	Convey("Given a configured logger", t, func() {
		var buf bytes.Buffer

		Convey("Text output respects the level", func() {
			So(configure(&buf, false, "warn"), ShouldBeNil)
			Info("hidden")
			Warnf("catalog returned %d", 429)
			So(buf.String(), ShouldNotContainSubstring, "hidden")
			So(buf.String(), ShouldContainSubstring, "catalog returned 429")
		})

		Convey("JSON output carries structured fields", func() {
			So(configure(&buf, true, "debug"), ShouldBeNil)
			With(Fields{"id": 42}).Info("cached")
			So(buf.String(), ShouldContainSubstring, `"id":42`)
			So(buf.String(), ShouldContainSubstring, `"msg":"cached"`)
		})

		Convey("An unknown level falls back to info", func() {
			So(configure(&buf, false, "loud"), ShouldBeNil)
			Debug("dropped")
			Info("kept")
			So(buf.String(), ShouldNotContainSubstring, "dropped")
			So(buf.String(), ShouldContainSubstring, "kept")
		})
	})
}
