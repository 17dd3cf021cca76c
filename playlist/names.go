package playlist

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// PathFromURI turns a file:// URI into a local path. Anything else is returned unchanged,
// since the engine opens network URLs itself.
func PathFromURI(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}

	u, err := url.Parse(uri)
	if err != nil || u.Path == "" {
		return uri
	}

	return filepath.FromSlash(u.Path)
}

// NameFromPath derives a display name: the base name for local files, the last
// unescaped path segment for URLs, or the whole string when nothing better exists.
func NameFromPath(p string) string {
	if p == "" {
		return ""
	}

	if u, err := url.Parse(p); err == nil && u.Scheme != "" && u.Host != "" {
		segment := path.Base(u.Path)
		if segment == "/" || segment == "." {
			return p
		}

		if unescaped, err := url.PathUnescape(segment); err == nil {
			return unescaped
		}
		return segment
	}

	base := filepath.Base(PathFromURI(p))
	if base == "." || base == string(filepath.Separator) {
		return p
	}
	return base
}
