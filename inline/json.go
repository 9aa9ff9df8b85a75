package inline

import (
	"encoding/json"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/video"
)

type Anime struct {
	// Anime is the catalog record as cached or fetched.
	Anime anime.Anime `json:"anime"`
	// Trailer is the classified trailer URL (optional).
	Trailer *video.Source `json:"trailer,omitempty"`
	// MimeType of a direct trailer.
	MimeType string `json:"mime_type,omitempty"`
}

type Output struct {
	Query  string   `json:"query"`
	Result []*Anime `json:"result"`
}

func trailerOf(a anime.Anime) *video.Source {
	if !a.HasTrailer() {
		return nil
	}
	src := video.Classify(*a.TrailerURL)
	return &src
}

func asJson(animes []anime.Anime, query string, includeTrailer bool) ([]byte, error) {
	var result = make([]*Anime, len(animes))
	for i, a := range animes {
		entry := &Anime{Anime: a.Clone()}
		if includeTrailer {
			entry.Trailer = trailerOf(a)
			if entry.Trailer != nil {
				entry.MimeType = entry.Trailer.MimeType()
			}
		}
		result[i] = entry
	}

	return json.Marshal(&Output{
		Query:  query,
		Result: result,
	})
}
