package tui

import (
	"fmt"
	"strings"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/color"
	"github.com/anidex-cli/anidex/icon"
	"github.com/anidex-cli/anidex/style"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// listItem implements the list.Item interface for a catalog entry.
type listItem struct {
	internal anime.Anime
}

func toItems(animes []anime.Anime) []list.Item {
	return lo.Map(animes, func(a anime.Anime, _ int) list.Item {
		return &listItem{internal: a}
	})
}

func (t *listItem) Title() string {
	title := t.internal.Title
	if t.internal.Favorite {
		title = fmt.Sprintf("%s %s", title, lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Favorite)))
	}
	return title
}

func (t *listItem) Description() string {
	a := t.internal
	var parts []string

	if a.Score != nil {
		parts = append(parts, icon.Prefix(icon.Score, style.Score(*a.Score)))
	}

	if a.Status != nil {
		parts = append(parts, lipgloss.NewStyle().Foreground(color.ForStatus(*a.Status)).Render(*a.Status))
	}

	if a.Episodes != nil {
		parts = append(parts, lipgloss.NewStyle().Foreground(style.FaintColor).Render(fmt.Sprintf("%d eps", *a.Episodes)))
	}

	return strings.Join(parts, " • ")
}

func (t *listItem) FilterValue() string {
	return t.internal.Title
}
