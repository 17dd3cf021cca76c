// Package history remembers the playlist of the previous run so it can be resumed.
package history

import (
	"time"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/vireo-player/vireo/filesystem"
	"github.com/vireo-player/vireo/playlist"
	"github.com/vireo-player/vireo/where"
)

// SavedEntry is one remembered playlist item.
type SavedEntry struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// SavedSession is the playlist as it was when the previous run ended.
type SavedSession struct {
	Entries  []SavedEntry `json:"entries"`
	Current  int          `json:"current"`
	Position float64      `json:"position"`
	SavedAt  time.Time    `json:"saved_at"`
}

// URIs returns the remembered URIs, starting from the entry that was playing.
func (s *SavedSession) URIs() []string {
	uris := lo.Map(s.Entries, func(e SavedEntry, _ int) string { return e.URI })
	if s.Current > 0 && s.Current < len(uris) {
		return append(uris[s.Current:], uris[:s.Current]...)
	}
	return uris
}

var cacher = gache.New[*SavedSession](
	&gache.Options{
		Path:       where.Session(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the saved session, or nil when there is none.
func Get() (*SavedSession, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil || len(cached.Entries) == 0 {
		return nil, nil
	}
	return cached, nil
}

// Save remembers entries and the playback position within the current one.
// An empty playlist clears what was saved.
func Save(entries []playlist.Entry, position float64) error {
	if len(entries) == 0 {
		return Clear()
	}

	_, current, _ := lo.FindIndexOf(entries, func(e playlist.Entry) bool { return e.Current })

	return cacher.Set(&SavedSession{
		Entries: lo.Map(entries, func(e playlist.Entry, _ int) SavedEntry {
			return SavedEntry{Name: e.Name, URI: e.URI}
		}),
		Current:  max(current, 0),
		Position: position,
		SavedAt:  time.Now(),
	})
}

// Clear forgets the saved session.
func Clear() error {
	return cacher.Set(&SavedSession{})
}
