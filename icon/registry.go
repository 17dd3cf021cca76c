package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Progress
	Play
	Pause
	Stop
	Current
	Chapter
	Volume
	Playlist
	Engine
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╯°□°)╯︵ ┻━┻",
		squares: "🟥",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(⊙_⊙)",
		squares: "🟨",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・ヾ",
		squares: "🟦",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(￣o￣) zzZ",
		squares: "⏸",
	},
	Stop: {
		emoji:   "⏹️",
		nerd:    "",
		plain:   "[]",
		kaomoji: "(-_-)",
		squares: "⏹",
	},
	Current: {
		emoji:   "👉",
		nerd:    "",
		plain:   "*",
		kaomoji: "☞",
		squares: "▸",
	},
	Chapter: {
		emoji:   "🔖",
		nerd:    "",
		plain:   "#",
		kaomoji: "(•̀ᴗ•́)",
		squares: "🟪",
	},
	Volume: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "vol",
		kaomoji: "ヽ(°〇°)ﾉ",
		squares: "🔈",
	},
	Playlist: {
		emoji:   "🎶",
		nerd:    "",
		plain:   "=",
		kaomoji: "♪~ ᕕ(ᐛ)ᕗ",
		squares: "🟫",
	},
	Engine: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "mpv",
		kaomoji: "(⌐■_■)",
		squares: "⬛",
	},
}
