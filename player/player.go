// Package player hands classified trailer sources to an external program.
package player

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anidex-cli/anidex/key"
	"github.com/anidex-cli/anidex/video"
	"github.com/spf13/viper"
)

// Browser is the player.youtube value that sends YouTube trailers to the system browser.
const Browser = "browser"

// ErrUnplayable is returned for invalid sources.
var ErrUnplayable = errors.New("trailer URL is not a playable video")

// Player starts playback and returns without waiting for it to finish.
type Player interface {
	Play(src video.Source, title string) error
}

// For picks the player for a source from player.default and player.youtube.
func For(src video.Source) (Player, error) {
	switch src.Kind {
	case video.YouTube:
		if strings.EqualFold(viper.GetString(key.PlayerYouTube), Browser) {
			return &WebBrowser{}, nil
		}
		return NewMPV(viper.GetString(key.Player)), nil
	case video.Direct:
		return NewMPV(viper.GetString(key.Player)), nil
	default:
		return nil, ErrUnplayable
	}
}

// Play starts src with the configured program.
func Play(src video.Source, title string) error {
	p, err := For(src)
	if err != nil {
		return err
	}

	if err = p.Play(src, title); err != nil {
		return fmt.Errorf("play trailer: %w", err)
	}
	return nil
}
