package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/anidex-cli/anidex/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPrune(t *testing.T) {
	Convey("Given a log directory with old and fresh files", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		dir := "/logs"
		old := filepath.Join(dir, "2026-10-01.log")
		fresh := filepath.Join(dir, "2026-10-18.log")

		So(fs.WriteFile(old, []byte("old"), 0o644), ShouldBeNil)
		So(fs.WriteFile(fresh, []byte("fresh"), 0o644), ShouldBeNil)
		So(fs.Chtimes(old, now.AddDate(0, 0, -18), now.AddDate(0, 0, -18)), ShouldBeNil)
		So(fs.Chtimes(fresh, now.Add(-time.Hour), now.Add(-time.Hour)), ShouldBeNil)

		Convey("Only files older than the TTL are removed", func() {
			n, err := Prune(dir, TTL, now)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)
			So(lo.Must(fs.Exists(old)), ShouldBeFalse)
			So(lo.Must(fs.Exists(fresh)), ShouldBeTrue)
		})

		Convey("A missing directory is not an error", func() {
			n, err := Prune("/nowhere", TTL, now)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)
		})
	})
}
