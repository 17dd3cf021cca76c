package version

import (
	"os/exec"
	"path/filepath"
	"regexp"
	"time"

	"github.com/metafates/gache"
	"github.com/pkg/errors"
	"github.com/vireo-player/vireo/filesystem"
	"github.com/vireo-player/vireo/where"
)

// MinEngine is the oldest engine release with the IPC commands and properties the player uses.
const MinEngine = "0.33.0"

type engineRelease struct {
	Binary  string `json:"binary"`
	Version string `json:"version"`
}

var engineCacher = gache.New[*engineRelease](&gache.Options{
	Path:       filepath.Join(where.Cache(), "engine-version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

var enginePattern = regexp.MustCompile(`(?m)^mpv v?(\d+\.\d+(?:\.\d+)?)`)

// parseEngine extracts the release number from the engine's --version banner.
func parseEngine(banner string) (string, error) {
	m := enginePattern.FindStringSubmatch(banner)
	if m == nil {
		return "", errors.New("unrecognized engine version banner")
	}

	return m[1], nil
}

// Engine reports the release of binary. The answer is cached for a couple of days per binary.
func Engine(binary string) (string, error) {
	if cached, expired, err := engineCacher.Get(); err == nil && !expired && cached != nil && cached.Binary == binary {
		return cached.Version, nil
	}

	out, err := exec.Command(binary, "--version").Output()
	if err != nil {
		return "", errors.Wrapf(err, "run %s --version", binary)
	}

	v, err := parseEngine(string(out))
	if err != nil {
		return "", err
	}

	_ = engineCacher.Set(&engineRelease{Binary: binary, Version: v})
	return v, nil
}

// Supported reports whether v is at least MinEngine. Unparsable versions are given the benefit of the doubt.
func Supported(v string) bool {
	comp, err := Compare(v, MinEngine)
	return err != nil || comp >= 0
}
