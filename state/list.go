package state

import (
	"github.com/anidex-cli/anidex/anime"
)

const msgNoCachedData = "No cached data available. Please connect to internet."

// List combines the latest cache snapshot with the outcome of the last refresh.
type List struct {
	items    []anime.Anime
	received bool
	offline  bool
	refresh  Request[int]
}

// ListView is what a list screen renders. Items stay attached in every phase.
type ListView struct {
	Phase            Phase
	Items            []anime.Anime
	Offline          bool
	Message          string
	ShowNetworkError bool
}

// SetItems records a new cache snapshot.
func (l *List) SetItems(items []anime.Anime) {
	l.items = items
	l.received = true
}

// SetOffline records the last connectivity observation.
func (l *List) SetOffline(offline bool) {
	l.offline = offline
}

func (l *List) BeginRefresh() {
	l.refresh.Begin()
}

func (l *List) RefreshSucceeded(n int) {
	l.refresh.Succeed(n)
	l.offline = false
}

func (l *List) RefreshFailed(err error) {
	l.refresh.Fail(err)
	if isConnectivity(err) {
		l.offline = true
	}
}

// DismissError drops a refresh error so the list renders from the snapshot alone.
func (l *List) DismissError() {
	if l.refresh.phase == Error {
		l.refresh.Reset()
	}
}

func (l *List) Items() []anime.Anime {
	return l.items
}

func (l *List) Current() ListView {
	v := ListView{Items: l.items, Offline: l.offline}
	r := l.refresh.Current()

	switch {
	case r.Phase == Loading:
		v.Phase = Loading
	case r.Phase == Error && len(l.items) == 0 && l.offline:
		v.Phase = Error
		v.Message = msgNoCachedData
		v.ShowNetworkError = true
	case r.Phase == Error:
		v.Phase = Error
		v.Message = r.Message
		v.ShowNetworkError = isConnectivity(r.Err)
	case len(l.items) > 0:
		v.Phase = Success
	case !l.received:
		v.Phase = Idle
	case l.offline:
		v.Phase = Error
		v.Message = msgNoCachedData
	default:
		v.Phase = Empty
	}

	return v
}
