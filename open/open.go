// Package open hands files and URLs to the desktop's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vireo-player/vireo/constant"
	"github.com/vireo-player/vireo/playlist"
)

// Start opens input with the default handler without waiting for it.
func Start(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// Reveal opens a playlist URI outside the player: URLs go to the browser, local files
// show their containing directory.
func Reveal(uri string) error {
	return Start(revealTarget(uri))
}

func revealTarget(uri string) string {
	if strings.Contains(uri, "://") && !strings.HasPrefix(uri, "file://") {
		return uri
	}
	return filepath.Dir(playlist.PathFromURI(uri))
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
