package icon

import (
	"testing"

	"github.com/anidex-cli/anidex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Favorite

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					result := Get(target)
					So(result, ShouldNotBeEmpty)
				})
			}
		})

		Convey("The variant is matched case-insensitively", func() {
			viper.Set(key.IconsVariant, " Plain ")
			So(Get(target), ShouldNotBeEmpty)
		})

		Convey("Prefix separates the icon from the text", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Prefix(target, "Steins;Gate"), ShouldEqual, Get(target)+" Steins;Gate")
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			result := Get(target)
			So(result, ShouldBeEmpty)
			So(Prefix(target, "offline"), ShouldEqual, "offline")
		})

		Convey("An unregistered icon renders empty", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon(99)), ShouldBeEmpty)
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Every icon renders in every variant", t, func() {
		for i := Fail; i <= Score; i++ {
			So(icons, ShouldContainKey, i)
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})
}
