package where

import (
	"path/filepath"
	"testing"

	"github.com/anidex-cli/anidex/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Directory resolvers create their directory", t, func() {
		for name, fn := range map[string]func() string{
			"config": Config,
			"cache":  Cache,
			"logs":   Logs,
		} {
			Convey(name, func() {
				path := fn()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}
	})

	Convey("File resolvers live under the cache directory", t, func() {
		So(filepath.Dir(Database()), ShouldEqual, Cache())
		So(filepath.Base(Database()), ShouldEqual, "anidex.db")
		So(filepath.Dir(Queries()), ShouldEqual, Cache())
	})

	Convey("ANIDEX_CONFIG_PATH overrides the config directory", t, func() {
		t.Setenv(EnvConfigPath, "/custom/anidex")
		So(Config(), ShouldEqual, "/custom/anidex")
		So(Logs(), ShouldEqual, filepath.Join("/custom/anidex", "logs"))
	})
}
