package tui

import (
	"context"
	"fmt"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/constant"
	"github.com/anidex-cli/anidex/internal/ui"
	"github.com/anidex-cli/anidex/key"
	projection "github.com/anidex-cli/anidex/state"
	"github.com/anidex-cli/anidex/store"
	"github.com/anidex-cli/anidex/style"
	"github.com/anidex-cli/anidex/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble encapsulates the application state, including component models and workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	ctx     context.Context
	repo    Repository
	options *Options

	// components
	spinnerC   spinner.Model
	inputC     textinput.Model
	catalogC   list.Model
	favoritesC list.Model
	resultsC   list.Model
	helpC      help.Model

	catalog   projection.List
	favorites projection.List
	detail    *projection.Request[anime.Anime]
	favorite  *projection.Request[bool]
	search    *projection.Request[[]anime.Anime]

	// detailID and searchQuery identify the request whose result is still wanted.
	detailID    int
	searchQuery string

	allSub, favoritesSub *store.Subscription

	lastError error

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model
}

// raiseError dispatches a fatal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState transitions to s, recording the previous state in the navigation history.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != errorState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range []*list.Model{&b.catalogC, &b.favoritesC, &b.resultsC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
	b.inputC.Width = listWidth
}

func (b *statefulBubble) close() {
	lo.ForEach([]*store.Subscription{b.allSub, b.favoritesSub}, func(s *store.Subscription, _ int) {
		if s != nil {
			s.Close()
		}
	})
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(ctx context.Context, repo Repository, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,

		ctx:     ctx,
		repo:    repo,
		options: options,

		detail:   projection.NewDetail(),
		favorite: projection.NewFavorite(),
		search:   projection.NewSearch(),

		notifier: &ui.Model{},
	}

	makeList := func(title string, titleStyle lipgloss.Style) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = titleStyle
		listC.Styles.NoItems = paddingStyle
		listC.SetFilteringEnabled(false)
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)
		listC.SetSpinner(spinner.Dot)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search Anime (v%s)", constant.Version)
	bubble.inputC.CharLimit = 60
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.catalogC = makeList("Top Anime", lipgloss.NewStyle().Foreground(style.Base).Background(style.Lavender).Padding(0, 1))
	bubble.favoritesC = makeList("Favorites", lipgloss.NewStyle().Foreground(style.Base).Background(style.Yellow).Padding(0, 1))
	bubble.resultsC = makeList("Search Results", lipgloss.NewStyle().Foreground(style.Base).Background(style.Peach).Padding(0, 1))

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(catalogState)

	return &bubble
}

// activeList returns the list component of the current screen, if it has one.
func (b *statefulBubble) activeList() (*list.Model, bool) {
	switch b.state {
	case catalogState:
		return &b.catalogC, true
	case favoritesState:
		return &b.favoritesC, true
	case resultsState:
		return &b.resultsC, true
	default:
		return nil, false
	}
}

// selected returns the highlighted anime of the current list screen, or the open detail.
func (b *statefulBubble) selected() (anime.Anime, bool) {
	if b.state == detailState {
		current := b.detail.Current()
		return current.Value, current.Value.ID != 0
	}

	l, ok := b.activeList()
	if !ok {
		return anime.Anime{}, false
	}

	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return anime.Anime{}, false
	}
	return item.internal, true
}
