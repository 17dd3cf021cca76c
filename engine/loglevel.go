package engine

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
)

// LogLevel is the engine's message severity, ordered from silent to most verbose.
type LogLevel int

const (
	LogNone LogLevel = iota
	LogFatal
	LogError
	LogWarn
	LogInfo
	LogV
	LogDebug
	LogTrace
)

var logLevelNames = [...]string{"no", "fatal", "error", "warn", "info", "v", "debug", "trace"}

func (l LogLevel) String() string {
	if l < LogNone || l > LogTrace {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return logLevelNames[l]
}

// Logrus maps the engine severity onto the application logger's levels.
func (l LogLevel) Logrus() logrus.Level {
	switch l {
	case LogFatal, LogError:
		return logrus.ErrorLevel
	case LogWarn:
		return logrus.WarnLevel
	case LogInfo:
		return logrus.InfoLevel
	case LogV, LogDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// ParseLogLevel accepts the engine's level names. "none" is an alias of "no".
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "none" {
		return LogNone, nil
	}

	idx := lo.IndexOf(logLevelNames[:], name)
	if idx < 0 {
		return LogNone, fmt.Errorf("unknown log level %q", s)
	}
	return LogLevel(idx), nil
}

// LogLevelFilter overrides the verbosity of one engine module, identified by its message prefix.
type LogLevelFilter struct {
	Prefix string
	Level  LogLevel
}

// LogLevelFilters is an ordered set of overrides; the first matching filter wins.
type LogLevelFilters []LogLevelFilter

// ParseLogLevelFilters parses "prefix=level" entries.
func ParseLogLevelFilters(entries []string) (LogLevelFilters, error) {
	filters := make(LogLevelFilters, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		prefix, levelName, found := strings.Cut(entry, "=")
		prefix = strings.TrimSpace(prefix)
		if !found || prefix == "" {
			return nil, fmt.Errorf("invalid log filter %q, expected prefix=level", entry)
		}

		level, err := ParseLogLevel(levelName)
		if err != nil {
			return nil, fmt.Errorf("log filter %q: %w", entry, err)
		}

		if _, dup := seen[prefix]; dup {
			return nil, fmt.Errorf("duplicate log filter for %q", prefix)
		}
		seen[prefix] = struct{}{}

		filters = append(filters, LogLevelFilter{Prefix: prefix, Level: level})
	}

	return filters, nil
}

// Lookup returns the level of the first filter matching prefix. A filter on "ffmpeg" also
// covers "ffmpeg/demuxer".
func (f LogLevelFilters) Lookup(prefix string) (LogLevel, bool) {
	filter, ok := lo.Find(f, func(filter LogLevelFilter) bool {
		return prefix == filter.Prefix || strings.HasPrefix(prefix, filter.Prefix+"/")
	})
	return filter.Level, ok
}

// Allows reports whether a message should be kept. Modules without a filter use fallback.
func (f LogLevelFilters) Allows(prefix string, level, fallback LogLevel) bool {
	limit, ok := f.Lookup(prefix)
	if !ok {
		limit = fallback
	}
	return level != LogNone && level <= limit
}

// MostVerbose is the level to request from the engine so every filter can be satisfied.
func (f LogLevelFilters) MostVerbose(min LogLevel) LogLevel {
	return lo.Reduce(f, func(acc LogLevel, filter LogLevelFilter, _ int) LogLevel {
		return max(acc, filter.Level)
	}, min)
}
