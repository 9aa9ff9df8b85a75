package video

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// DefaultMimeType is returned when the extension is unknown.
const DefaultMimeType = "video/*"

// extensions is the single table behind both Direct classification and MimeType.
var extensions = map[string]string{
	"m3u8": "application/x-mpegURL",
	"mpd":  "application/dash+xml",
	"mp4":  "video/mp4",
	"mkv":  "video/x-matroska",
	"webm": "video/webm",
	"avi":  "video/x-msvideo",
	"mov":  "video/quicktime",
	"wmv":  "video/x-ms-wmv",
	"flv":  "video/x-flv",
	"3gp":  "video/3gpp",
	"ts":   "video/mp2ts",
	"m4v":  "video/x-m4v",
}

// Extensions lists the recognised file extensions in sorted order.
func Extensions() []string {
	exts := lo.Keys(extensions)
	slices.Sort(exts)
	return exts
}

// MimeType maps the extension of a URL's path to a MIME type.
func MimeType(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return DefaultMimeType
	}

	p := strings.ToLower(u.Path)
	if mime, ok := lookupExtension(p); ok {
		return mime
	}

	// manifests served from paths like /hls/master.m3u8/segment
	for _, ext := range []string{"m3u8", "mpd"} {
		if strings.Contains(p, "."+ext) {
			return extensions[ext]
		}
	}

	return DefaultMimeType
}

// MimeType of the source. YouTube and invalid sources have none.
func (s Source) MimeType() string {
	if s.Kind != Direct {
		return ""
	}
	return MimeType(s.URL)
}
