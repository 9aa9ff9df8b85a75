package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/anidex-cli/anidex/anime"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// AnimePicker chooses one anime from a result list.
type AnimePicker func([]anime.Anime) (anime.Anime, bool)

type Options struct {
	Out            io.Writer
	Catalog        Catalog
	Cached         func() ([]anime.Anime, error)
	Json           bool
	Query          string
	AnimePicker    mo.Option[AnimePicker]
	IncludeTrailer bool
}

// ParseAnimePicker parses a selector: first, last, an index from 0, or an exact title.
func ParseAnimePicker(selector string) (AnimePicker, error) {
	switch selector {
	case "first":
		return func(animes []anime.Anime) (anime.Anime, bool) {
			return lo.First(animes)
		}, nil
	case "last":
		return func(animes []anime.Anime) (anime.Anime, bool) {
			return lo.Last(animes)
		}, nil
	}

	if idx, err := strconv.ParseUint(selector, 10, 16); err == nil {
		return func(animes []anime.Anime) (anime.Anime, bool) {
			if len(animes) == 0 {
				return anime.Anime{}, false
			}
			return animes[min(int(idx), len(animes)-1)], true
		}, nil
	}

	if title, ok := strings.CutPrefix(selector, "exact:"); ok && title != "" {
		return func(animes []anime.Anime) (anime.Anime, bool) {
			return lo.Find(animes, func(a anime.Anime) bool {
				return strings.EqualFold(a.Title, title)
			})
		}, nil
	}

	return nil, fmt.Errorf("unknown anime selector: %s", selector)
}
