package cmd

import (
	"path/filepath"
	"testing"

	"github.com/anidex-cli/anidex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestValidateConfigValue(t *testing.T) {
	Convey("Config values are validated before they are saved", t, func() {
		So(validateConfigValue(key.CatalogBaseURL, "https://api.jikan.moe/v4"), ShouldBeNil)
		So(validateConfigValue(key.CatalogBaseURL, "api.jikan.moe"), ShouldNotBeNil)

		So(validateConfigValue(key.CatalogPageSize, 10), ShouldBeNil)
		So(validateConfigValue(key.CatalogPageSize, 0), ShouldNotBeNil)
		So(validateConfigValue(key.CatalogPageSize, 500), ShouldNotBeNil)

		So(validateConfigValue(key.PlayerYouTube, "mpv"), ShouldBeNil)
		So(validateConfigValue(key.PlayerYouTube, "vlc"), ShouldNotBeNil)

		So(validateConfigValue(key.LogsLevel, "debug"), ShouldBeNil)
		So(validateConfigValue(key.LogsLevel, "loud"), ShouldNotBeNil)

		Convey("Keys without a validator accept anything", func() {
			So(validateConfigValue("unknown.key", 42), ShouldBeNil)
		})
	})
}

func TestPersistConfig(t *testing.T) {
	Convey("Given a missing config file", t, func() {
		path := filepath.Join(t.TempDir(), "anidex.toml")
		viper.SetConfigFile(path)
		viper.Set(key.CatalogPageSize, 10)

		Convey("persistConfig creates it", func() {
			So(persistConfig(), ShouldBeNil)

			Convey("and later writes overwrite it", func() {
				viper.Set(key.CatalogPageSize, 20)
				So(persistConfig(), ShouldBeNil)

				fresh := viper.New()
				fresh.SetConfigFile(path)
				So(fresh.ReadInConfig(), ShouldBeNil)
				So(fresh.GetInt(key.CatalogPageSize), ShouldEqual, 20)
			})
		})
	})
}
