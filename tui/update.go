package tui

import (
	"github.com/anidex-cli/anidex/icon"
	"github.com/anidex-cli/anidex/internal/ui"
	"github.com/anidex-cli/anidex/query"
	projection "github.com/anidex-cli/anidex/state"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmds = append(cmds, uiCmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		cmds = append(cmds, cmd)
	case snapshotMsg:
		return b, tea.Batch(append(cmds, b.onSnapshot(msg))...)
	case refreshedMsg:
		return b, tea.Batch(append(cmds, b.onRefreshed(msg))...)
	case detailMsg:
		return b, tea.Batch(append(cmds, b.onDetail(msg))...)
	case favoriteMsg:
		return b, tea.Batch(append(cmds, b.onFavorite(msg))...)
	case searchMsg:
		return b, tea.Batch(append(cmds, b.onSearch(msg))...)
	case trailerMsg:
		if msg.err != nil {
			return b, tea.Batch(append(cmds, ui.NotifyError(msg.err))...)
		}
		return b, tea.Batch(append(cmds, ui.Notify(icon.Get(icon.Trailer)+" Playing trailer for "+msg.title))...)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var (
		model tea.Model
		cmd   tea.Cmd
	)

	switch b.state {
	case catalogState, favoritesState, resultsState:
		model, cmd = b.updateList(msg)
	case detailState:
		model, cmd = b.updateDetail(msg)
	case searchState:
		model, cmd = b.updateSearch(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	default:
		model = b
	}

	return model, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) onSnapshot(msg snapshotMsg) tea.Cmd {
	if msg.closed {
		if b.ctx.Err() == nil {
			b.raiseError(errCacheClosed)
		}
		return nil
	}

	switch msg.view {
	case viewAll:
		b.catalog.SetItems(msg.items)
		return tea.Batch(b.catalogC.SetItems(toItems(msg.items)), waitForSnapshot(b.allSub, viewAll))
	default:
		b.favorites.SetItems(msg.items)
		return tea.Batch(b.favoritesC.SetItems(toItems(msg.items)), waitForSnapshot(b.favoritesSub, viewFavorites))
	}
}

func (b *statefulBubble) onRefreshed(msg refreshedMsg) tea.Cmd {
	b.catalogC.StopSpinner()

	if msg.err != nil {
		b.catalog.RefreshFailed(msg.err)
		b.favorites.SetOffline(b.catalog.Current().Offline)
		return ui.NotifyError(msg.err)
	}

	b.catalog.RefreshSucceeded(msg.count)
	b.favorites.SetOffline(false)
	return nil
}

func (b *statefulBubble) onDetail(msg detailMsg) tea.Cmd {
	// a result for a detail the user already left
	if msg.id != b.detailID {
		return nil
	}

	if msg.err != nil {
		b.detail.Fail(msg.err)
		return ui.NotifyError(msg.err)
	}

	b.detail.Succeed(msg.anime)
	return nil
}

func (b *statefulBubble) onFavorite(msg favoriteMsg) tea.Cmd {
	if msg.err != nil {
		b.favorite.Fail(msg.err)
		return ui.NotifyError(msg.err)
	}

	b.favorite.Succeed(msg.favorite)

	if current := b.detail.Current(); current.Value.ID == msg.id && current.Phase == projection.Success {
		a := current.Value
		a.Favorite = msg.favorite
		b.detail.Succeed(a)
	}

	for i, item := range b.resultsC.Items() {
		if li, ok := item.(*listItem); ok && li.internal.ID == msg.id {
			li.internal.Favorite = msg.favorite
			b.resultsC.SetItem(i, li)
		}
	}

	text := icon.Get(icon.Favorite) + " Added to favorites"
	if !msg.favorite {
		text = "Removed from favorites"
	}
	return ui.Notify(text)
}

func (b *statefulBubble) onSearch(msg searchMsg) tea.Cmd {
	if msg.query != b.searchQuery {
		return nil
	}

	b.resultsC.StopSpinner()

	if msg.err != nil {
		b.search.Fail(msg.err)
		return ui.NotifyError(msg.err)
	}

	b.search.Succeed(msg.items)
	return b.resultsC.SetItems(toItems(msg.items))
}

func (b *statefulBubble) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	l, _ := b.activeList()

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if a, ok := b.selected(); ok {
				return b, b.openDetail(a)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.favorite):
			if a, ok := b.selected(); ok {
				return b, b.toggleFavorite(a, b.state == resultsState)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.trailer):
			if a, ok := b.selected(); ok {
				return b, b.playTrailer(a)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.search):
			b.inputC.Focus()
			b.newState(searchState)
			return b, textinput.Blink
		case b.state == catalogState && bubblesKey.Matches(msg, b.keymap.refresh):
			if b.catalog.Current().Phase == projection.Loading {
				return b, nil
			}
			return b, b.startRefresh()
		case b.state != resultsState && bubblesKey.Matches(msg, b.keymap.switchView):
			if b.state == catalogState {
				b.setState(favoritesState)
			} else {
				b.setState(catalogState)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.state == catalogState {
				b.catalog.DismissError()
				return b, nil
			}
			if b.state == resultsState {
				b.searchQuery = ""
			}
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(l.Items()); n > 0 && l.Index() == 0 {
				l.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(l.Items()); n > 0 && l.Index() == n-1 {
				l.Select(0)
				return b, nil
			}
		}
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.favorite):
			if a, ok := b.selected(); ok {
				return b, b.toggleFavorite(a, false)
			}
		case bubblesKey.Matches(msg, b.keymap.trailer):
			if a, ok := b.selected(); ok {
				return b, b.playTrailer(a)
			}
		case bubblesKey.Matches(msg, b.keymap.back):
			b.detailID = 0
			b.detail.Reset()
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			b.searchSuggestion = mo.None[string]()
			return b, b.startSearch(b.inputC.Value())
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.SetValue("")
			b.previousState()
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" {
		if suggestion, ok := query.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		}
	}
	return b, nil
}
