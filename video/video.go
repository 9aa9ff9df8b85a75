// Package video classifies trailer URLs into sources an external player can handle.
package video

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/publicsuffix"
)

// Kind of a classified source.
type Kind int

const (
	Invalid Kind = iota
	YouTube
	Direct
)

func (k Kind) String() string {
	switch k {
	case YouTube:
		return "youtube"
	case Direct:
		return "direct"
	default:
		return "invalid"
	}
}

// MarshalText makes the kind readable in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Source is the result of Classify.
// VideoID is set only for YouTube sources, URL only for direct ones.
type Source struct {
	Kind    Kind   `json:"kind" jsonschema:"enum=invalid,enum=youtube,enum=direct"`
	VideoID string `json:"video_id,omitempty"`
	URL     string `json:"url,omitempty"`
}

// WatchURL returns a URL a browser or player can open.
func (s Source) WatchURL() string {
	switch s.Kind {
	case YouTube:
		return "https://www.youtube.com/watch?v=" + s.VideoID
	case Direct:
		return s.URL
	default:
		return ""
	}
}

// Playable reports whether the source is anything but Invalid.
func (s Source) Playable() bool {
	return s.Kind != Invalid
}

var (
	videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

	youtubeDomains = []string{"youtube.com", "youtu.be", "youtube-nocookie.com"}

	streamingSchemes = []string{"rtmp", "rtsp"}
	manifestMarkers  = []string{".m3u8", ".mpd"}
	hostingMarkers   = []string{"videoplayback", "/video/"}
)

// Classify decides how a trailer URL should be played.
// YouTube hosts never fall through to Direct: without a valid id they are Invalid.
func Classify(raw string) Source {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Source{Kind: Invalid}
	}

	if isYouTubeHost(u.Hostname()) {
		id, ok := youtubeID(u)
		if !ok {
			return Source{Kind: Invalid}
		}
		return Source{Kind: YouTube, VideoID: id}
	}

	if isDirect(u, raw) {
		return Source{Kind: Direct, URL: raw}
	}

	return Source{Kind: Invalid}
}

func isYouTubeHost(host string) bool {
	return lo.Contains(youtubeDomains, registrableDomain(host))
}

// registrableDomain is the lowercased eTLD+1 of host, or "" when it has none.
func registrableDomain(host string) string {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return ""
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return domain
}

func youtubeID(u *url.URL) (string, bool) {
	segments := lo.Compact(strings.Split(u.Path, "/"))

	var candidate string
	if registrableDomain(u.Hostname()) == "youtu.be" {
		if len(segments) > 0 {
			candidate = segments[0]
		}
	} else if len(segments) > 0 {
		switch strings.ToLower(segments[0]) {
		case "watch":
			candidate = queryValue(u.RawQuery, "v")
		case "embed", "v":
			if len(segments) > 1 {
				candidate = segments[1]
			}
		}
	}

	if !videoIDPattern.MatchString(candidate) {
		return "", false
	}
	return candidate, true
}

// queryValue looks the parameter up case-insensitively in any position of the query.
func queryValue(rawQuery, name string) string {
	// ParseQuery keeps every well-formed pair even when it reports an error
	values, _ := url.ParseQuery(rawQuery)

	for k, v := range values {
		if strings.EqualFold(k, name) && len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func isDirect(u *url.URL, raw string) bool {
	p := strings.ToLower(u.Path)
	lowered := strings.ToLower(raw)

	if _, ok := lookupExtension(p); ok {
		return true
	}

	if lo.Contains(streamingSchemes, strings.ToLower(u.Scheme)) {
		return true
	}

	if lo.SomeBy(manifestMarkers, func(m string) bool { return strings.Contains(p, m) }) {
		return true
	}

	return lo.SomeBy(hostingMarkers, func(m string) bool { return strings.Contains(lowered, m) })
}

// lookupExtension maps the path's final extension through the shared table.
func lookupExtension(p string) (string, bool) {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
	if ext == "" {
		return "", false
	}

	mime, ok := extensions[ext]
	return mime, ok
}
