// Package icon renders the player's symbols in the configured variant: emoji,
// nerd-font glyphs, plain ASCII, kaomoji or unicode squares.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vireo-player/vireo/key"
	"golang.org/x/exp/slices"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

var variants = []string{emoji, nerd, plain, kaomoji, squares}

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return slices.Clone(variants)
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) in(variant string) string {
	switch variant {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	}
	return ""
}

// Get renders i in the configured variant. An unknown variant renders nothing.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.in(viper.GetString(key.IconsVariant))
}
