// Package config loads vireo.toml through viper, with VIREO_* environment overrides and
// the defaults registered in Default.
package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vireo-player/vireo/constant"
	"github.com/vireo-player/vireo/engine"
	"github.com/vireo-player/vireo/filesystem"
	"github.com/vireo-player/vireo/icon"
	"github.com/vireo-player/vireo/key"
	"github.com/vireo-player/vireo/where"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Vireo)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	// Synchronize environment variable bindings.
	viper.SetEnvPrefix(constant.Vireo)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	// Initialize factory default values.
	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// Validate reports configuration values that would otherwise only fail once the engine is running.
func Validate() error {
	if _, err := engine.ParseLogLevel(viper.GetString(key.EngineLogLevel)); err != nil {
		return fmt.Errorf("%s: %w", key.EngineLogLevel, err)
	}

	if _, err := engine.ParseLogLevelFilters(viper.GetStringSlice(key.EngineLogFilters)); err != nil {
		return fmt.Errorf("%s: %w", key.EngineLogFilters, err)
	}

	if variant := viper.GetString(key.IconsVariant); !lo.Contains(icon.AvailableVariants(), variant) {
		return fmt.Errorf("%s: unknown variant %q", key.IconsVariant, variant)
	}

	if viper.GetBool(key.EngineConfigEnable) && viper.GetString(key.EngineConfigFile) == "" {
		return fmt.Errorf("%s is enabled but %s is empty", key.EngineConfigEnable, key.EngineConfigFile)
	}

	return nil
}
