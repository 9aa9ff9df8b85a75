// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/store"
	tea "github.com/charmbracelet/bubbletea"
)

// Repository is what the screens need from the synchronization layer.
type Repository interface {
	Refresh(ctx context.Context) (int, error)
	Details(ctx context.Context, id int) (anime.Anime, error)
	ToggleFavorite(ctx context.Context, id int) (bool, error)
	Search(ctx context.Context, query string) ([]anime.Anime, error)
	WatchAll() *store.Subscription
	WatchFavorites() *store.Subscription
}

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Favorites opens the favorites screen first.
	Favorites bool
	// NoRefresh skips the refresh on start.
	NoRefresh bool
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(ctx context.Context, repo Repository, options *Options) error {
	bubble := newBubble(ctx, repo, options)
	defer bubble.close()

	if options.Favorites {
		bubble.newState(favoritesState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
