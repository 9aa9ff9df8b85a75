// Package inline implements the non-interactive, scriptable output mode.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/log"
)

// Catalog is searched when a query is given.
type Catalog interface {
	Search(ctx context.Context, query string) ([]anime.Anime, error)
}

// Run searches the catalog, or lists the cache when the query is empty, then picks and writes the result.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	var (
		animes []anime.Anime
		err    error
	)

	if q := strings.TrimSpace(options.Query); q != "" {
		if options.Catalog == nil {
			return fmt.Errorf("no catalog to search")
		}
		animes, err = options.Catalog.Search(ctx, q)
	} else {
		if options.Cached == nil {
			return fmt.Errorf("no cache to list")
		}
		animes, err = options.Cached()
	}
	if err != nil {
		return err
	}

	selected := animes
	if options.AnimePicker.IsPresent() {
		selected = nil
		if choice, ok := options.AnimePicker.MustGet()(animes); ok {
			selected = []anime.Anime{choice}
		}
	}

	log.Infof("inline: %d of %d anime selected", len(selected), len(animes))
	return Write(options.Out, options.Query, selected, options)
}

// Write renders animes as JSON or as tab-separated lines.
func Write(out io.Writer, query string, animes []anime.Anime, options *Options) error {
	if options.Json {
		return writeJson(out, query, animes, options)
	}

	for _, a := range animes {
		if _, err := fmt.Fprintln(out, line(a, options.IncludeTrailer)); err != nil {
			return err
		}
	}
	return nil
}

func line(a anime.Anime, trailer bool) string {
	score := "-"
	if a.Score != nil {
		score = fmt.Sprintf("%.2f", *a.Score)
	}

	fields := []string{fmt.Sprint(a.ID), score, a.Title}
	if a.Favorite {
		fields = append(fields, "favorite")
	}
	if trailer {
		if src := trailerOf(a); src != nil {
			fields = append(fields, src.WatchURL())
		}
	}
	return strings.Join(fields, "\t")
}

func writeJson(out io.Writer, query string, animes []anime.Anime, options *Options) error {
	data, err := asJson(animes, query, options.IncludeTrailer)
	if err != nil {
		return err
	}
	_, err = out.Write(append(data, '\n'))
	return err
}
