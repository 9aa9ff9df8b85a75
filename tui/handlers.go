package tui

import (
	"errors"
	"strings"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/log"
	"github.com/anidex-cli/anidex/player"
	"github.com/anidex-cli/anidex/store"
	"github.com/anidex-cli/anidex/video"
	tea "github.com/charmbracelet/bubbletea"
)

type snapshotView int

const (
	viewAll snapshotView = iota
	viewFavorites
)

type (
	snapshotMsg struct {
		view   snapshotView
		items  []anime.Anime
		closed bool
	}

	refreshedMsg struct {
		count int
		err   error
	}

	detailMsg struct {
		id    int
		anime anime.Anime
		err   error
	}

	favoriteMsg struct {
		id       int
		favorite bool
		err      error
	}

	searchMsg struct {
		query string
		items []anime.Anime
		err   error
	}

	trailerMsg struct {
		title string
		err   error
	}
)

var (
	errNoTrailer   = errors.New("no playable trailer")
	errCacheClosed = errors.New("the local cache was closed")
)

// waitForSnapshot blocks on the subscription and re-arms itself from Update.
func waitForSnapshot(sub *store.Subscription, view snapshotView) tea.Cmd {
	return func() tea.Msg {
		items, ok := <-sub.C
		return snapshotMsg{view: view, items: items, closed: !ok}
	}
}

func (b *statefulBubble) startRefresh() tea.Cmd {
	b.catalog.BeginRefresh()
	return tea.Batch(b.catalogC.StartSpinner(), func() tea.Msg {
		n, err := b.repo.Refresh(b.ctx)
		return refreshedMsg{count: n, err: err}
	})
}

func (b *statefulBubble) openDetail(a anime.Anime) tea.Cmd {
	b.detailID = a.ID
	b.detail.Begin()
	b.newState(detailState)

	return func() tea.Msg {
		got, err := b.repo.Details(b.ctx, a.ID)
		return detailMsg{id: a.ID, anime: got, err: err}
	}
}

// toggleFavorite caches the record first when it only exists in search results.
func (b *statefulBubble) toggleFavorite(a anime.Anime, fromResults bool) tea.Cmd {
	b.favorite.Begin()

	return func() tea.Msg {
		if fromResults {
			if _, err := b.repo.Details(b.ctx, a.ID); err != nil {
				return favoriteMsg{id: a.ID, err: err}
			}
		}

		fav, err := b.repo.ToggleFavorite(b.ctx, a.ID)
		return favoriteMsg{id: a.ID, favorite: fav, err: err}
	}
}

func (b *statefulBubble) startSearch(q string) tea.Cmd {
	q = strings.TrimSpace(q)
	b.searchQuery = q
	b.search.Begin()
	b.resultsC.Title = "Search Results: " + q
	b.newState(resultsState)

	return tea.Batch(b.resultsC.StartSpinner(), func() tea.Msg {
		items, err := b.repo.Search(b.ctx, q)
		return searchMsg{query: q, items: items, err: err}
	})
}

func (b *statefulBubble) playTrailer(a anime.Anime) tea.Cmd {
	if !a.HasTrailer() {
		return func() tea.Msg { return trailerMsg{title: a.Title, err: errNoTrailer} }
	}

	src := video.Classify(*a.TrailerURL)
	if !src.Playable() {
		log.Warnf("unplayable trailer for %d: %s", a.ID, *a.TrailerURL)
		return func() tea.Msg { return trailerMsg{title: a.Title, err: errNoTrailer} }
	}

	return func() tea.Msg {
		return trailerMsg{title: a.Title, err: player.Play(src, a.Title)}
	}
}
