// Package filesystem routes every file access through one swappable afero backend,
// so tests run against memory and nothing touches the user's directories.
package filesystem

import "github.com/spf13/afero"

var backend = osBackend()

func osBackend() afero.Afero { return afero.Afero{Fs: afero.NewOsFs()} }

// API returns the current backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches back to the real filesystem.
func SetOsFs() {
	backend = osBackend()
}

// SetMemMapFs switches to an empty in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
