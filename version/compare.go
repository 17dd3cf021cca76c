// Package version detects the installed engine release and checks it against what the player needs.
package version

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type release struct {
	major, minor, patch int
}

// parse reads major.minor with an optional patch, ignoring any build suffix.
func parse(s string) (release, error) {
	var r release

	s = strings.TrimPrefix(s, "v")
	if n, err := fmt.Sscanf(s, "%d.%d.%d", &r.major, &r.minor, &r.patch); n >= 2 {
		return r, nil
	} else if err != nil {
		return r, fmt.Errorf("parse version %q: %w", s, err)
	}

	return r, fmt.Errorf("parse version %q", s)
}

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.major, B: bv.major},
		{A: av.minor, B: bv.minor},
		{A: av.patch, B: bv.patch},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}
