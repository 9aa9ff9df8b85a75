package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init subscribes to both cache views and starts the refresh on launch.
func (b *statefulBubble) Init() tea.Cmd {
	b.allSub = b.repo.WatchAll()
	b.favoritesSub = b.repo.WatchFavorites()

	cmds := []tea.Cmd{
		b.spinnerC.Tick,
		waitForSnapshot(b.allSub, viewAll),
		waitForSnapshot(b.favoritesSub, viewFavorites),
	}

	if !b.options.NoRefresh {
		cmds = append(cmds, b.startRefresh())
	}

	return tea.Batch(cmds...)
}
