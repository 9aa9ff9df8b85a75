// Package network provides the shared HTTP client and the connectivity probe used before catalog requests.
package network

import (
	"net"
	"net/http"
	"time"

	"github.com/anidex-cli/anidex/constant"
)

// Client is the HTTP client shared by every catalog request.
// Connect and response-header timeouts are fixed and cannot be overridden per call.
var Client = &http.Client{
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = (&net.Dialer{
		Timeout:   constant.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	t.MaxIdleConns = 16
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.TLSHandshakeTimeout = constant.ConnectTimeout
	t.ResponseHeaderTimeout = constant.ReadTimeout
	t.ExpectContinueTimeout = time.Second
	return t
}
