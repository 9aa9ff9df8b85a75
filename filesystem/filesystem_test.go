package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Filesystem backend", t, func() {
		Convey("Defaults to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Switches to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestPurge(t *testing.T) {
	Convey("Given an in-memory tree", t, func() {
		SetMemMapFs()
		fsys := API()
		So(fsys.MkdirAll("/data/logs", 0o755), ShouldBeNil)
		So(fsys.WriteFile("/data/logs/a.log", []byte("x"), 0o644), ShouldBeNil)
		So(fsys.WriteFile("/data/queries.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("Purging a file removes only that file", func() {
			So(Purge("/data/queries.json"), ShouldBeNil)
			exists, _ := fsys.Exists("/data/queries.json")
			So(exists, ShouldBeFalse)
			exists, _ = fsys.Exists("/data/logs/a.log")
			So(exists, ShouldBeTrue)
		})

		Convey("Purging a directory removes the tree", func() {
			So(Purge("/data/logs"), ShouldBeNil)
			exists, _ := fsys.DirExists("/data/logs")
			So(exists, ShouldBeFalse)
		})

		Convey("Purging a missing path is a no-op", func() {
			So(Purge("/nope"), ShouldBeNil)
		})
	})
}
