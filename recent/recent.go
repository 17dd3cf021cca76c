// Package recent remembers the files and URLs typed into the open prompt and suggests them again.
package recent

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vireo-player/vireo/filesystem"
	"github.com/vireo-player/vireo/key"
	"github.com/vireo-player/vireo/where"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank int    `json:"rank"`
	URI  string `json:"uri"`
}

var cacher = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Recent(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func load() map[string]*record {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember records uri, or bumps its rank by weight when already known.
func Remember(uri string, weight int) error {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil
	}

	records := load()
	if r, ok := records[uri]; ok {
		r.Rank += weight
	} else {
		records[uri] = &record{Rank: weight, URI: uri}
	}

	return cacher.Set(records)
}

// Suggest returns the best remembered match for partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered URIs fuzzily matching q, most used first. An empty q matches everything.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.TUIRecentSuggestions) {
		return nil
	}

	q = strings.TrimSpace(q)
	matches := lo.Filter(lo.Values(load()), func(r *record, _ int) bool {
		return fuzzy.MatchFold(q, r.URI)
	})

	slices.SortFunc(matches, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.URI, b.URI)
	})

	return lo.Map(matches, func(r *record, _ int) string {
		return r.URI
	})
}

// Clear forgets every remembered URI.
func Clear() error {
	return cacher.Set(make(map[string]*record))
}
