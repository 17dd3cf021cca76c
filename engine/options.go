package engine

import (
	"strings"

	"github.com/vireo-player/vireo/log"
)

// Option is one parsed "--name[=value]" token.
type Option struct {
	Name  string
	Value string
}

// ParseArgs splits a free-form option string such as "--vo=gpu --mute --volume 50".
// Anything before the first "--" is ignored. A token without a value, or with an
// empty one, means "yes".
func ParseArgs(args string) []Option {
	begin := strings.Index(args, "--")
	if begin < 0 {
		return nil
	}

	var (
		options []Option
		rest    = args[begin:]
	)

	for rest != "" {
		var raw string
		if end := strings.Index(rest, " --"); end < 0 {
			raw, rest = rest, ""
		} else {
			raw, rest = rest[:end], rest[end+1:]
		}

		token := strings.TrimPrefix(strings.TrimRight(raw, " \t\n"), "--")
		if token == "" {
			continue
		}

		name, value := token, ""
		if sep := strings.IndexAny(token, "= "); sep >= 0 {
			name, value = token[:sep], strings.TrimSpace(token[sep+1:])
		}

		if value == "" {
			value = "yes"
		}

		options = append(options, Option{Name: name, Value: value})
	}

	return options
}

// ApplyArgs sets every option in args on c and returns how many the engine rejected.
// Rejections are not errors: the rest of the options still apply.
func ApplyArgs(c Client, args string) (failed int) {
	for _, opt := range ParseArgs(args) {
		log.Debugf("applying option --%s=%s", opt.Name, opt.Value)

		if err := c.SetOptionString(opt.Name, opt.Value); err != nil {
			log.Warnf("failed to apply option --%s=%s: %s", opt.Name, opt.Value, err)
			failed++
		}
	}

	return failed
}
