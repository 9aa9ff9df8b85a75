package tui

type state int

const (
	catalogState state = iota
	favoritesState
	detailState
	searchState
	resultsState
	errorState
)
