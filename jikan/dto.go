package jikan

import "github.com/anidex-cli/anidex/anime"

type imageSet struct {
	ImageURL      *string `json:"image_url"`
	LargeImageURL *string `json:"large_image_url"`
}

type images struct {
	JPG imageSet `json:"jpg"`
}

type trailer struct {
	YoutubeID *string `json:"youtube_id"`
	URL       *string `json:"url"`
	EmbedURL  *string `json:"embed_url"`
}

type genre struct {
	MalID int    `json:"mal_id"`
	Name  string `json:"name"`
}

type animeDTO struct {
	MalID    int      `json:"mal_id"`
	Title    string   `json:"title"`
	Images   images   `json:"images"`
	Score    *float64 `json:"score"`
	Episodes *int     `json:"episodes"`
	Status   *string  `json:"status"`
	Synopsis *string  `json:"synopsis"`
	Trailer  *trailer `json:"trailer"`
	Genres   []genre  `json:"genres"`
}

// Pagination of a list endpoint.
type Pagination struct {
	LastVisiblePage int  `json:"last_visible_page"`
	HasNextPage     bool `json:"has_next_page"`
}

type listResponse struct {
	Data       []animeDTO `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type detailResponse struct {
	Data animeDTO `json:"data"`
}

// Page is one page of a list endpoint mapped to domain values.
type Page struct {
	Items      []anime.Anime
	Pagination Pagination
}

func (d animeDTO) toAnime() anime.Anime {
	a := anime.Anime{
		ID:       d.MalID,
		Title:    d.Title,
		Score:    d.Score,
		Episodes: d.Episodes,
		Status:   d.Status,
		Synopsis: d.Synopsis,
		Genres:   make([]string, 0, len(d.Genres)),
	}

	if img := d.Images.JPG.LargeImageURL; nonEmpty(img) {
		a.ImageURL = img
	} else if img := d.Images.JPG.ImageURL; nonEmpty(img) {
		a.ImageURL = img
	}

	if d.Trailer != nil && nonEmpty(d.Trailer.EmbedURL) {
		a.TrailerURL = d.Trailer.EmbedURL
	}

	for _, g := range d.Genres {
		a.Genres = append(a.Genres, g.Name)
	}

	return a
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}
