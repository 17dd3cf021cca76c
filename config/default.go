package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vireo-player/vireo/color"
	"github.com/vireo-player/vireo/constant"
	"github.com/vireo-player/vireo/key"
	"github.com/vireo-player/vireo/style"
)

// Field is one configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

var fields = []Field{
	// engine
	{key.EngineBinary, constant.Engine, "Playback engine executable.\nResolved through PATH when not absolute"},
	{key.EngineConfigEnable, false, "Load an extra engine configuration file on startup"},
	{key.EngineConfigFile, "", "Path of the engine configuration file loaded when engine.config_enable is set"},
	{key.EngineOptions, "", "Extra engine options applied on startup.\nFormat: --key[=value] --other"},
	{key.EngineLogLevel, "error", "Minimum severity of engine log messages surfaced as errors.\nAvailable options are: no, fatal, error, warn, info, v, debug, trace"},
	{key.EngineLogFilters, []string{}, "Per-module engine log level overrides.\nFormat: prefix=level, e.g. ffmpeg=fatal"},
	{key.EngineWID, 0, "Native window id the engine renders into.\n0 lets the engine open its own window"},

	// player
	{key.PlayerStartPaused, false, "Queue files paused instead of starting playback"},
	{key.PlayerSeekStep, 10, "Seconds skipped by a single seek key press"},
	{key.PlayerVolumeStep, 5, "Volume percentage changed by a single volume key press"},

	// history
	{key.HistoryRestore, false, "Restore the previous playlist when started without files"},
	{key.HistorySave, true, "Remember the playlist on exit"},

	{key.MprisEnable, true, "Expose transport controls to desktop media keys over MPRIS (Linux only)"},
	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, nerd, plain, kaomoji, squares"},

	// tui
	{key.TUIItemSpacing, 0, "Spacing between playlist entries in the TUI"},
	{key.TUIShowURIs, false, "Show URIs under playlist entries"},
	{key.TUIRecentSuggestions, true, "Suggest previously opened files and URLs in the open prompt"},

	// logs
	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},

	{key.CliColored, true, "Enable colored CLI output"},
}

// Default indexes every field by key.
var Default = lo.KeyBy(fields, func(f Field) string { return f.Key })

// EnvExposed lists the keys that can be set from the environment.
var EnvExposed = lo.Map(fields, func(f Field, _ int) string { return f.Key })

// Env is the environment variable overriding the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Vireo + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// MarshalJSON reports the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"key":         f.Key,
		"value":       viper.Get(f.Key),
		"default":     f.Value,
		"description": f.Description,
		"type":        reflect.TypeOf(f.Value).String(),
	})
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(value)
	}
	return fmt.Sprint(v)
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    viper.Get,
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl":       highlight,
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ typename .Value }}`))
