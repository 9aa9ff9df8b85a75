package player

import (
	"github.com/anidex-cli/anidex/log"
	"github.com/anidex-cli/anidex/open"
	"github.com/anidex-cli/anidex/video"
)

// WebBrowser opens the watch URL with the system handler.
type WebBrowser struct {
	// App overrides the default handler.
	App string
}

func (b *WebBrowser) Play(src video.Source, _ string) error {
	if !src.Playable() {
		return ErrUnplayable
	}

	target := src.WatchURL()
	log.Infof("opening %s in browser", target)
	return open.StartWith(target, b.App)
}
