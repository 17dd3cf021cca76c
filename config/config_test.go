package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vireo-player/vireo/filesystem"
	"github.com/vireo-player/vireo/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Every key is registered once", func() {
			So(len(Default), ShouldEqual, len(fields))
			So(EnvExposed, ShouldHaveLength, len(fields))
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("engine.log_level"), ShouldEqual, "engine_log_level")
		})

		Convey("Env should carry the application prefix", func() {
			field := Default[key.EngineOptions]
			So(field.Env(), ShouldEqual, "VIREO_ENGINE_OPTIONS")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("It validates", func() {
			So(Validate(), ShouldBeNil)
		})

		Convey("An unknown engine log level is rejected", func() {
			viper.Set(key.EngineLogLevel, "loud")
			defer viper.Set(key.EngineLogLevel, Default[key.EngineLogLevel].Value)

			So(Validate(), ShouldNotBeNil)
		})

		Convey("A malformed log filter is rejected", func() {
			viper.Set(key.EngineLogFilters, []string{"ffmpeg"})
			defer viper.Set(key.EngineLogFilters, Default[key.EngineLogFilters].Value)

			So(Validate(), ShouldNotBeNil)
		})

		Convey("An unknown icons variant is rejected", func() {
			viper.Set(key.IconsVariant, "sparkles")
			defer viper.Set(key.IconsVariant, Default[key.IconsVariant].Value)

			So(Validate(), ShouldNotBeNil)
		})

		Convey("An enabled config file needs a path", func() {
			viper.Set(key.EngineConfigEnable, true)
			defer viper.Set(key.EngineConfigEnable, false)

			So(Validate(), ShouldNotBeNil)
		})
	})
}
