package tui

type state int

const (
	playlistState state = iota
	inputState
	jumpState
	errorState
)
