// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playback Engine - these keys govern how the mpv process is launched and configured.
const (
	EngineBinary       = "engine.binary"
	EngineConfigEnable = "engine.config_enable"
	EngineConfigFile   = "engine.config_file"
	EngineOptions      = "engine.options"
	EngineLogLevel     = "engine.log_level"
	EngineLogFilters   = "engine.log_filters"
	EngineWID          = "engine.wid"
)

// Media Playback - these keys maintain transport behaviour.
const (
	PlayerStartPaused = "player.start_paused"
	PlayerSeekStep    = "player.seek_step"
	PlayerVolumeStep  = "player.volume_step"
)

// Session History - these keys configure persistence of the last playlist.
const (
	HistoryRestore = "history.restore"
	HistorySave    = "history.save"
)

// Desktop Integration - these keys manage the MPRIS D-Bus bridge.
const (
	MprisEnable = "mpris.enable"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's styling.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowURIs    = "tui.show_uris"

	TUIRecentSuggestions = "tui.recent_suggestions"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
