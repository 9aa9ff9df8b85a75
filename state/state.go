// Package state projects repository results and cache snapshots into what a screen should render.
package state

import (
	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/repository"
)

// Phase of a request or screen.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Empty
	Error
)

func (p Phase) String() string {
	return [...]string{"idle", "loading", "success", "empty", "error"}[p]
}

// Request tracks one request: Idle, then Loading, then Success, Empty or Error.
// Begin may be called again from any phase.
type Request[T any] struct {
	phase Phase
	value T
	err   error
	// EmptyWhen marks a successful value that should render as Empty.
	EmptyWhen func(T) bool
}

// Snapshot is the renderable view of a Request.
type Snapshot[T any] struct {
	Phase   Phase
	Value   T
	Err     error
	Message string
}

func (r *Request[T]) Begin() {
	r.phase = Loading
	r.err = nil
}

func (r *Request[T]) Succeed(v T) {
	r.value = v
	r.err = nil
	r.phase = Success
	if r.EmptyWhen != nil && r.EmptyWhen(v) {
		r.phase = Empty
	}
}

// Fail keeps the last successful value so it can stay on screen.
func (r *Request[T]) Fail(err error) {
	r.err = err
	r.phase = Error
}

// Reset returns to Idle and forgets the value.
func (r *Request[T]) Reset() {
	*r = Request[T]{EmptyWhen: r.EmptyWhen}
}

func (r *Request[T]) Current() Snapshot[T] {
	s := Snapshot[T]{Phase: r.phase, Value: r.value, Err: r.err}
	if r.err != nil {
		s.Message = r.err.Error()
	}
	return s
}

// NewDetail tracks a detail fetch.
func NewDetail() *Request[anime.Anime] {
	return &Request[anime.Anime]{}
}

// NewFavorite tracks a favorite toggle.
func NewFavorite() *Request[bool] {
	return &Request[bool]{}
}

// NewSearch tracks a search. Zero results render as Empty.
func NewSearch() *Request[[]anime.Anime] {
	return &Request[[]anime.Anime]{EmptyWhen: func(items []anime.Anime) bool { return len(items) == 0 }}
}

// isConnectivity reports whether err is a connectivity failure.
func isConnectivity(err error) bool {
	return err != nil && repository.KindOf(err) == repository.Connectivity
}
