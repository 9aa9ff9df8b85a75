// Package anime defines the catalog entity shared by the remote source, the local cache and the UI.
package anime

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Anime is one catalog record. Optional fields are nil when the catalog has no value.
// Identity is ID alone: two values with the same ID describe the same entity.
type Anime struct {
	ID         int      `json:"id" jsonschema:"description=MyAnimeList ID of the anime."`
	Title      string   `json:"title" jsonschema:"description=Default title."`
	ImageURL   *string  `json:"image_url,omitempty" jsonschema:"description=Large cover image, falling back to the default size."`
	Score      *float64 `json:"score,omitempty" jsonschema:"description=Community score from 0 to 10."`
	Episodes   *int     `json:"episodes,omitempty" jsonschema:"description=Episode count when known."`
	Status     *string  `json:"status,omitempty" jsonschema:"description=Airing status as reported by the catalog."`
	Synopsis   *string  `json:"synopsis,omitempty"`
	TrailerURL *string  `json:"trailer_url,omitempty" jsonschema:"description=Trailer embed URL."`
	Genres     []string `json:"genres" jsonschema:"description=Genre names. Order carries no meaning."`
	Favorite   bool     `json:"favorite" jsonschema:"description=Whether the anime is marked as a local favorite."`
}

// Clone returns a deep copy so callers never share pointers or slices with the cache.
func (a Anime) Clone() Anime {
	c := a
	c.ImageURL = clonePtr(a.ImageURL)
	c.Score = clonePtr(a.Score)
	c.Episodes = clonePtr(a.Episodes)
	c.Status = clonePtr(a.Status)
	c.Synopsis = clonePtr(a.Synopsis)
	c.TrailerURL = clonePtr(a.TrailerURL)
	c.Genres = slices.Clone(a.Genres)
	if c.Genres == nil {
		c.Genres = []string{}
	}
	return c
}

// ScoreOr returns the score or fallback when it is unknown.
func (a Anime) ScoreOr(fallback float64) float64 {
	if a.Score == nil {
		return fallback
	}
	return *a.Score
}

// HasTrailer reports whether a trailer URL is present.
func (a Anime) HasTrailer() bool {
	return a.TrailerURL != nil && strings.TrimSpace(*a.TrailerURL) != ""
}

// String renders a short single-line description.
func (a Anime) String() string {
	var b strings.Builder
	b.WriteString(a.Title)
	if a.Score != nil {
		fmt.Fprintf(&b, " (%.2f)", *a.Score)
	}
	return b.String()
}

// GenreList joins the genres for display.
func (a Anime) GenreList() string {
	return strings.Join(a.Genres, ", ")
}

// Equal compares every modeled field, genres as a set.
func (a Anime) Equal(b Anime) bool {
	if a.ID != b.ID || a.Title != b.Title || a.Favorite != b.Favorite {
		return false
	}
	if !ptrEqual(a.ImageURL, b.ImageURL) || !ptrEqual(a.Score, b.Score) ||
		!ptrEqual(a.Episodes, b.Episodes) || !ptrEqual(a.Status, b.Status) ||
		!ptrEqual(a.Synopsis, b.Synopsis) || !ptrEqual(a.TrailerURL, b.TrailerURL) {
		return false
	}

	left, right := lo.Uniq(a.Genres), lo.Uniq(b.Genres)
	return len(left) == len(right) && lo.Every(left, right)
}

// IDs extracts the ids of a list, preserving order.
func IDs(list []Anime) []int {
	return lo.Map(list, func(a Anime, _ int) int { return a.ID })
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Ptr is a helper for building optional fields.
func Ptr[T any](v T) *T {
	return &v
}
