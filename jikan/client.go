// Package jikan is a stateless client for the Jikan v4 REST catalog.
package jikan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/constant"
	"github.com/anidex-cli/anidex/key"
	"github.com/anidex-cli/anidex/log"
	"github.com/anidex-cli/anidex/network"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// ErrMalformedResponse wraps bodies that could not be decoded.
var ErrMalformedResponse = errors.New("malformed catalog response")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog responded %d %s for %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// NotFound reports whether the catalog has no such resource.
func (e *StatusError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client talks to the catalog. Zero configuration beyond construction; safe for concurrent use.
type Client struct {
	baseURL     string
	http        *http.Client
	limiter     *rate.Limiter
	pageSize    int
	searchLimit int
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the shared network client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithRateLimit sets requests per second. Zero or less disables throttling.
func WithRateLimit(perSecond float64) Option {
	return func(cl *Client) {
		if perSecond <= 0 {
			cl.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		cl.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithPageSize sets the limit used by Top and Search.
func WithPageSize(n int) Option {
	return func(cl *Client) {
		if n > 0 {
			cl.pageSize = n
		}
	}
}

// WithSearchLimit caps the page size of Search. Zero or less means the page size.
func WithSearchLimit(n int) Option {
	return func(cl *Client) { cl.searchLimit = n }
}

// New creates a client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     network.Client,
		limiter:  rate.NewLimiter(rate.Limit(3), 1),
		pageSize: constant.CatalogPageSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewFromConfig creates a client from the catalog.* settings.
func NewFromConfig() *Client {
	return New(
		viper.GetString(key.CatalogBaseURL),
		WithRateLimit(viper.GetFloat64(key.CatalogRateLimit)),
		WithPageSize(viper.GetInt(key.CatalogPageSize)),
		WithSearchLimit(viper.GetInt(key.SearchLimit)),
	)
}

// Top fetches a page of the top-ranked anime. Pages start at 1.
func (c *Client) Top(ctx context.Context, page int) (*Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(max(page, 1)))
	q.Set("limit", strconv.Itoa(c.pageSize))

	var resp listResponse
	if err := c.get(ctx, "/top/anime", q, &resp); err != nil {
		return nil, err
	}

	return resp.toPage(), nil
}

// Details fetches one anime by id.
func (c *Client) Details(ctx context.Context, id int) (anime.Anime, error) {
	var resp detailResponse
	if err := c.get(ctx, "/anime/"+strconv.Itoa(id), nil, &resp); err != nil {
		return anime.Anime{}, err
	}

	return resp.Data.toAnime(), nil
}

// Search runs a free-text query.
func (c *Client) Search(ctx context.Context, query string, page int) (*Page, error) {
	q := url.Values{}
	limit := c.pageSize
	if c.searchLimit > 0 {
		limit = min(limit, c.searchLimit)
	}

	q.Set("q", query)
	q.Set("page", strconv.Itoa(max(page, 1)))
	q.Set("limit", strconv.Itoa(limit))

	var resp listResponse
	if err := c.get(ctx, "/anime", q, &resp); err != nil {
		return nil, err
	}

	return resp.toPage(), nil
}

func (r listResponse) toPage() *Page {
	return &Page{
		Items:      lo.Map(r.Data, func(d animeDTO, _ int) anime.Anime { return d.toAnime() }),
		Pagination: r.Pagination,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	log.Debugf("GET %s", endpoint)
	res, err := c.http.Do(req)
	if err != nil {
		log.Warnf("catalog request failed: %s", err)
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		statusErr := &StatusError{StatusCode: res.StatusCode, URL: endpoint, Body: string(body)}
		log.With(log.Fields{"status": res.StatusCode, "url": endpoint}).Warn("catalog returned an error status")
		return statusErr
	}

	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, path, err)
	}

	return nil
}
