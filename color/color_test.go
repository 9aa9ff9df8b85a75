package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestForStatus(t *testing.T) {
	Convey("Catalog statuses map to their colors", t, func() {
		So(ForStatus("Currently Airing"), ShouldEqual, Airing)
		So(ForStatus("Finished Airing"), ShouldEqual, Finished)
		So(ForStatus("Not yet aired"), ShouldEqual, Upcoming)
		So(ForStatus("FINISHED AIRING"), ShouldEqual, Finished)
		So(ForStatus(""), ShouldEqual, White)
	})
}
