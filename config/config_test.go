package config

import (
	"testing"

	"github.com/anidex-cli/anidex/filesystem"
	"github.com/anidex-cli/anidex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given the registered defaults", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Every key from the key package is registered", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("Viper resolves every default", func() {
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.CatalogBaseURL), ShouldEqual, "https://api.jikan.moe/v4")
			So(viper.GetInt(key.CatalogPageSize), ShouldEqual, 25)
			So(viper.GetBool(key.NetworkOffline), ShouldBeFalse)
		})

		Convey("Environment names carry the application prefix", func() {
			f := Default[key.NetworkOffline]
			So(f.Env(), ShouldEqual, "ANIDEX_NETWORK_OFFLINE")
		})

		Convey("EnvKeyReplacer converts dots to underscores", func() {
			So(EnvKeyReplacer.Replace("catalog.rate_limit"), ShouldEqual, "catalog_rate_limit")
		})
	})
}
