package tui

import (
	"fmt"
	"strings"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/color"
	"github.com/anidex-cli/anidex/icon"
	projection "github.com/anidex-cli/anidex/state"
	"github.com/anidex-cli/anidex/style"
	"github.com/anidex-cli/anidex/util"
	"github.com/anidex-cli/anidex/video"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case catalogState:
		output = b.viewList(&b.catalog, b.catalogC.View, "No anime cached yet. Press r to refresh.")
	case favoritesState:
		output = b.viewList(&b.favorites, b.favoritesC.View, "No favorites yet. Press f on an anime to add it.")
	case detailState:
		output = b.viewDetail()
	case searchState:
		output = b.viewSearch()
	case resultsState:
		output = b.viewResults()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

// viewList renders a list screen from its projection. Items stay visible under errors.
func (b *statefulBubble) viewList(projected *projection.List, render func() string, emptyText string) string {
	v := projected.Current()

	badge := listBanner(v)

	switch {
	case len(v.Items) > 0:
		out := listExtraPaddingStyle.Render(render())
		if badge != "" {
			out = badge + "\n" + out
		}
		return out
	case v.Phase == projection.Loading:
		return b.renderLines(true, []string{style.Title("Loading"), "", b.spinnerC.View() + " Fetching top anime..."})
	case v.Phase == projection.Error:
		return b.renderLines(true, []string{
			style.ErrorTitle("Nothing to show"),
			"",
			wrap.String(style.Fg(style.ErrorColor)(icon.Prefix(icon.Fail, v.Message)), b.width),
		})
	case v.Phase == projection.Idle:
		return b.renderLines(true, []string{b.spinnerC.View() + " Opening cache..."})
	default:
		return b.renderLines(true, []string{style.Title("Empty"), "", style.Faint(emptyText), badge})
	}
}

// listBanner is the line shown above a list: the network failure over cached items, or the offline marker.
func listBanner(v projection.ListView) string {
	switch {
	case v.ShowNetworkError && len(v.Items) > 0:
		return style.Badge(icon.Prefix(icon.Offline, "offline")) + " " + style.Faint(v.Message+", showing cached anime")
	case v.Offline:
		return style.Badge(icon.Prefix(icon.Offline, "offline"))
	default:
		return ""
	}
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search Anime"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint(icon.Prefix(icon.Search, suggestion+" (tab to accept)")))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewResults() string {
	current := b.search.Current()

	switch current.Phase {
	case projection.Loading:
		return b.renderLines(true, []string{style.Title("Searching"), "", b.spinnerC.View() + " " + b.searchQuery})
	case projection.Empty:
		return b.renderLines(true, []string{style.Title("No results"), "", style.Faint("Nothing matched " + b.searchQuery)})
	case projection.Error:
		if len(b.resultsC.Items()) == 0 {
			return b.renderLines(true, []string{
				style.ErrorTitle("Search failed"),
				"",
				wrap.String(style.Fg(style.ErrorColor)(current.Message), b.width),
			})
		}
	}

	return listExtraPaddingStyle.Render(b.resultsC.View())
}

func (b *statefulBubble) viewDetail() string {
	current := b.detail.Current()

	switch current.Phase {
	case projection.Loading:
		return b.renderLines(true, []string{style.Title("Loading"), "", b.spinnerC.View() + " Fetching details..."})
	case projection.Error:
		return b.renderLines(true, []string{
			style.ErrorTitle("Unavailable"),
			"",
			wrap.String(style.Fg(style.ErrorColor)(icon.Prefix(icon.Fail, current.Message)), b.width),
		})
	}

	return b.renderLines(true, detailLines(current.Value, b.width))
}

func detailLines(a anime.Anime, width int) []string {
	title := a.Title
	if a.Favorite {
		title += " " + icon.Get(icon.Favorite)
	}

	lines := []string{style.Title(title), ""}

	var facts []string
	if a.Score != nil {
		facts = append(facts, icon.Prefix(icon.Score, style.Score(*a.Score)))
	}
	if a.Episodes != nil {
		facts = append(facts, fmt.Sprintf("%d episodes", *a.Episodes))
	}
	if a.Status != nil {
		facts = append(facts, style.Fg(color.ForStatus(*a.Status))(*a.Status))
	}
	if len(facts) > 0 {
		lines = append(lines, strings.Join(facts, " • "))
	}

	if len(a.Genres) > 0 {
		lines = append(lines, style.Faint(a.GenreList()))
	}

	if a.Synopsis != nil {
		lines = append(lines, "", wrap.String(*a.Synopsis, util.Max(width-4, 20)))
	}

	if a.HasTrailer() {
		src := video.Classify(*a.TrailerURL)
		if src.Playable() {
			lines = append(lines, "", style.Fg(color.Orange)(icon.Prefix(icon.Trailer, fmt.Sprintf("trailer (%s) press t", src.Kind))))
		}
	}

	return lines
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Prefix(icon.Fail, "An error occurred:"),
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
