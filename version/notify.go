package version

import (
	"fmt"

	"github.com/vireo-player/vireo/color"
	"github.com/vireo-player/vireo/icon"
	"github.com/vireo-player/vireo/log"
	"github.com/vireo-player/vireo/style"
)

// Notify warns on the terminal when binary is older than MinEngine. Detection failures are only logged.
func Notify(binary string) {
	v, err := Engine(binary)
	if err != nil {
		log.Warnf("engine version: %s", err)
		return
	}

	if Supported(v) {
		return
	}

	fmt.Printf(`
%s %s %s is older than %s
%s

`,
		style.Fg(color.Yellow)(icon.Get(icon.Warn)),
		binary,
		style.Bold(v),
		style.Bold(MinEngine),
		style.Faint("Some playlist and property features may not work."),
	)
}
