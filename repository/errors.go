package repository

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"syscall"

	"github.com/anidex-cli/anidex/jikan"
	"github.com/anidex-cli/anidex/store"
)

// Kind is the failure taxonomy shown to users.
type Kind int

const (
	Unclassified Kind = iota
	Connectivity
	Timeout
	TransportIO
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Connectivity:
		return "connectivity"
	case Timeout:
		return "timeout"
	case TransportIO:
		return "transport"
	case NotFound:
		return "not found"
	default:
		return "unclassified"
	}
}

// Op names the repository operation an error came from.
type Op int

const (
	OpRefresh Op = iota
	OpDetails
	OpToggleFavorite
	OpSearch
	OpClear
)

func (o Op) String() string {
	return [...]string{"refresh", "details", "toggle favorite", "search", "clear"}[o]
}

const (
	msgOfflineRefresh = "No internet connection. Showing cached data."
	msgOfflineDetails = "No internet connection and anime not found in cache"
	msgOfflineSearch  = "Internet connection required for search"
	msgNoConnection   = "No internet connection"
	msgTimeoutRefresh = "Connection timeout. Please check your internet connection."
	msgTimeout        = "Connection timeout"
	msgTransport      = "Network error occurred"
	msgNotFound       = "Anime not found"
	msgUnknown        = "Unknown error occurred"
	msgEmptyQuery     = "search query is empty"
)

// Error is the only error type the repository returns.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so errors.Is(err, &Error{Kind: NotFound}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// KindOf extracts the kind of err, Unclassified when err is not a repository error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unclassified
}

func offline(op Op) *Error {
	msg := msgNoConnection
	switch op {
	case OpRefresh:
		msg = msgOfflineRefresh
	case OpDetails:
		msg = msgOfflineDetails
	case OpSearch:
		msg = msgOfflineSearch
	}
	return &Error{Kind: Connectivity, Message: msg}
}

// Classify maps a failure from below the repository boundary onto the taxonomy.
func Classify(err error, op Op) *Error {
	if err == nil {
		return nil
	}

	var repoErr *Error
	if errors.As(err, &repoErr) {
		return repoErr
	}

	var (
		netErr    net.Error
		dnsErr    *net.DNSError
		statusErr *jikan.StatusError
		urlErr    *url.Error
		opErr     *net.OpError
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		msg := msgTimeout
		if op == OpRefresh {
			msg = msgTimeoutRefresh
		}
		return &Error{Kind: Timeout, Message: msg, Err: err}

	case errors.Is(err, store.ErrNotFound),
		op == OpDetails && errors.As(err, &statusErr) && statusErr.NotFound():
		return &Error{Kind: NotFound, Message: msgNotFound, Err: err}

	case errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ENETUNREACH),
		errors.Is(err, syscall.EHOSTUNREACH):
		return &Error{Kind: Connectivity, Message: msgNoConnection, Err: err}

	case errors.Is(err, jikan.ErrMalformedResponse),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &urlErr),
		errors.As(err, &opErr):
		return &Error{Kind: TransportIO, Message: msgTransport, Err: err}
	}

	msg := err.Error()
	if msg == "" {
		msg = msgUnknown
	}
	return &Error{Kind: Unclassified, Message: msg, Err: err}
}
