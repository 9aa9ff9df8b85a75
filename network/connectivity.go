package network

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/anidex-cli/anidex/key"
	"github.com/anidex-cli/anidex/log"
	"github.com/spf13/viper"
)

// Checker reports whether the catalog is reachable right now.
type Checker interface {
	Online(ctx context.Context) bool
}

// CheckerFunc adapts a plain function to Checker.
type CheckerFunc func(ctx context.Context) bool

func (f CheckerFunc) Online(ctx context.Context) bool { return f(ctx) }

// Probe dials the catalog host over TCP. A successful handshake counts as online.
type Probe struct {
	// Address is host:port.
	Address string
	Timeout time.Duration
	// Offline forces the probe to report no connectivity without dialing.
	Offline bool

	dial func(ctx context.Context, network, address string) (net.Conn, error)
}

// NewProbe builds a probe for the host of baseURL. Scheme decides the default port.
func NewProbe(baseURL string, timeout time.Duration, offline bool) (*Probe, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	port := u.Port()
	if port == "" {
		port = "443"
		if u.Scheme == "http" {
			port = "80"
		}
	}

	return &Probe{
		Address: net.JoinHostPort(u.Hostname(), port),
		Timeout: timeout,
		Offline: offline,
	}, nil
}

// ProbeFromConfig builds the probe from catalog.base_url, network.probe_timeout and network.offline.
func ProbeFromConfig() (*Probe, error) {
	return NewProbe(
		viper.GetString(key.CatalogBaseURL),
		time.Duration(viper.GetInt(key.NetworkProbeTimeout))*time.Second,
		viper.GetBool(key.NetworkOffline),
	)
}

func (p *Probe) Online(ctx context.Context) bool {
	if p.Offline {
		return false
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dial := p.dial
	if dial == nil {
		dial = (&net.Dialer{}).DialContext
	}

	conn, err := dial(ctx, "tcp", p.Address)
	if err != nil {
		log.Debugf("connectivity probe to %s failed: %s", p.Address, err)
		return false
	}
	_ = conn.Close()
	return true
}
