package engine

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/vireo-player/vireo/log"
)

// SetupConfig is everything Setup needs from the application configuration.
type SetupConfig struct {
	// Paused is the pause state the engine starts with, so the first pause
	// notification reports it.
	Paused bool

	// WID embeds video output into an existing window when non-zero.
	WID int64

	// ScreenshotTemplate is the engine's screenshot-template option.
	ScreenshotTemplate string

	LogLevel   LogLevel
	LogFilters LogLevelFilters

	ConfigEnable bool
	ConfigFile   string

	// ExtraOptions is the user's free-form option string, see ParseArgs.
	ExtraOptions string
}

// SetupResult reports the recoverable problems met during Setup.
type SetupResult struct {
	FailedOptions int
	ConfigErr     error
}

// Setup configures a freshly created handle and initializes it. The steps run in a
// fixed order: baseline options (including the initial pause), wid, property observers, log subscription, user
// config file, user options, then Initialize.
//
// Baseline, observer and initialization failures are returned as errors. Config file and
// extra option failures are only reported in the result.
func Setup(c Client, cfg SetupConfig) (SetupResult, error) {
	var result SetupResult

	baseline := []Option{
		{"osd-level", "1"},
		{"softvol", "yes"},
		{"input-cursor", "no"},
		{"cursor-autohide", "no"},
		{"softvol-max", "100"},
		{"config", "yes"},
		{"screenshot-template", cfg.ScreenshotTemplate},
		{"pause", lo.Ternary(cfg.Paused, "yes", "no")},
	}

	for _, opt := range baseline {
		if err := c.SetOptionString(opt.Name, opt.Value); err != nil {
			return result, errors.Wrapf(err, "set option %s", opt.Name)
		}
	}

	if cfg.WID != 0 {
		if err := c.SetOptionInt64("wid", cfg.WID); err != nil {
			return result, errors.Wrap(err, "set option wid")
		}
	}

	for _, name := range []string{"pause", "eof-reached"} {
		if err := c.ObserveProperty(name); err != nil {
			return result, errors.Wrapf(err, "observe %s", name)
		}
	}

	level := cfg.LogFilters.MostVerbose(cfg.LogLevel)
	if err := c.RequestLogMessages(level); err != nil {
		return result, errors.Wrap(err, "request log messages")
	}

	if cfg.ConfigEnable {
		log.Infof("loading engine config file %s", cfg.ConfigFile)

		if err := c.LoadConfigFile(cfg.ConfigFile); err != nil {
			log.Warnf("failed to load engine config file %s: %s", cfg.ConfigFile, err)
			result.ConfigErr = err
		}
	}

	result.FailedOptions = ApplyArgs(c, cfg.ExtraOptions)

	if err := c.Initialize(); err != nil {
		return result, errors.Wrap(err, "initialize engine")
	}

	return result, nil
}
