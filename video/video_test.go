package video

import (
	"sort"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassifyYouTube(t *testing.T) {
	Convey("Given YouTube URLs", t, func() {
		const id = "dQw4w9WgXcQ"

		Convey("every supported shape yields the id", func() {
			for _, raw := range []string{
				"https://www.youtube.com/watch?v=" + id,
				"https://youtube.com/watch?feature=share&v=" + id,
				"https://m.youtube.com/watch?v=" + id + "&t=42",
				"https://youtu.be/" + id,
				"https://youtu.be/" + id + "?si=abc",
				"https://www.youtu.be/" + id,
				"https://www.youtube.com/embed/" + id + "?enablejsapi=1&wmode=opaque&autoplay=1",
				"https://www.youtube-nocookie.com/embed/" + id,
				"https://www.youtube.com/v/" + id,
				"HTTPS://WWW.YOUTUBE.COM/WATCH?V=" + id,
			} {
				s := Classify(raw)
				So(s.Kind, ShouldEqual, YouTube)
				So(s.VideoID, ShouldEqual, id)
				So(s.WatchURL(), ShouldEqual, "https://www.youtube.com/watch?v="+id)
			}
		})

		Convey("ids with the wrong length or alphabet are invalid", func() {
			for _, raw := range []string{
				"https://www.youtube.com/watch?v=dQw4w9WgXc",
				"https://www.youtube.com/watch?v=dQw4w9WgXcQQ",
				"https://www.youtube.com/watch?v=dQw4w9W!XcQ",
				"https://youtu.be/",
				"https://www.youtube.com/embed/",
				"https://www.youtube.com/watch",
				"https://youtube.com.evil.example/watch?v=" + id,
				"https://youtu.be.evil.example/" + id,
			} {
				So(Classify(raw).Kind, ShouldEqual, Invalid)
			}
		})

		Convey("a YouTube host never falls through to direct", func() {
			So(Classify("https://www.youtube.com/channel/trailer.mp4").Kind, ShouldEqual, Invalid)
		})

		Convey("look-alike hosts are not YouTube", func() {
			s := Classify("https://notyoutube.com/watch?v=" + id)
			So(s.Kind, ShouldEqual, Invalid)
		})
	})
}

func TestClassifyDirect(t *testing.T) {
	Convey("Given direct video URLs", t, func() {
		Convey("a signed mp4 link is direct", func() {
			raw := "https://cdn.example.com/ep1.mp4?sig=abc"
			s := Classify(raw)
			So(s.Kind, ShouldEqual, Direct)
			So(s.URL, ShouldEqual, raw)
			So(s.WatchURL(), ShouldEqual, raw)
			So(s.MimeType(), ShouldEqual, "video/mp4")
		})

		Convey("every recognised extension in any casing is direct", func() {
			for _, ext := range Extensions() {
				So(Classify("https://cdn.example.com/file."+ext).Kind, ShouldEqual, Direct)
				So(Classify("https://cdn.example.com/FILE."+strings.ToUpper(ext)).Kind, ShouldEqual, Direct)
			}
		})

		Convey("streaming schemes are direct", func() {
			So(Classify("rtmp://live.example.com/app/stream").Kind, ShouldEqual, Direct)
			So(Classify("RTSP://cam.example.com/feed").Kind, ShouldEqual, Direct)
		})

		Convey("manifests inside the path are direct", func() {
			So(Classify("https://cdn.example.com/hls/master.m3u8/index").Kind, ShouldEqual, Direct)
		})

		Convey("hosting markers are direct", func() {
			So(Classify("https://r1.googlevideo.com/videoplayback?id=1").Kind, ShouldEqual, Direct)
			So(Classify("https://example.com/video/12345").Kind, ShouldEqual, Direct)
		})
	})
}

func TestClassifyInvalid(t *testing.T) {
	Convey("Given URLs that cannot be played", t, func() {
		for _, raw := range []string{
			"",
			"   ",
			"not a url",
			"www.youtube.com/watch?v=dQw4w9WgXcQ",
			"/relative/ep1.mp4",
			"http://[::1",
			"ftp://example.com/file",
			"https://example.com/page.html",
		} {
			s := Classify(raw)
			So(s.Kind, ShouldEqual, Invalid)
			So(s.Playable(), ShouldBeFalse)
			So(s.WatchURL(), ShouldBeEmpty)
		}
	})
}

func TestMimeType(t *testing.T) {
	Convey("Given URLs with extensions", t, func() {
		So(MimeType("https://cdn.example.com/a.M3U8"), ShouldEqual, "application/x-mpegURL")
		So(MimeType("https://cdn.example.com/a.mpd?x=1"), ShouldEqual, "application/dash+xml")
		So(MimeType("https://cdn.example.com/a.mkv"), ShouldEqual, "video/x-matroska")

		exts := Extensions()
		So(exts, ShouldHaveLength, 12)
		So(sort.StringsAreSorted(exts), ShouldBeTrue)
		for _, ext := range exts {
			So(MimeType("file."+ext), ShouldNotEqual, DefaultMimeType)
		}
		So(MimeType("https://cdn.example.com/a.ts"), ShouldEqual, "video/mp2ts")
		So(MimeType("https://cdn.example.com/a.m4v"), ShouldEqual, "video/x-m4v")
		So(MimeType("https://cdn.example.com/hls/master.m3u8/seg"), ShouldEqual, "application/x-mpegURL")

		Convey("unknown or missing extensions use the default", func() {
			So(MimeType("https://cdn.example.com/stream"), ShouldEqual, DefaultMimeType)
			So(MimeType("https://cdn.example.com/a.tsx"), ShouldEqual, DefaultMimeType)
			So(MimeType("http://[::1"), ShouldEqual, DefaultMimeType)
		})

		Convey("every table entry is reachable by extension", func() {
			for ext, mime := range extensions {
				So(MimeType("https://cdn.example.com/x."+ext), ShouldEqual, mime)
			}
		})
	})

	Convey("Non-direct sources have no MIME type", t, func() {
		So(Classify("https://youtu.be/dQw4w9WgXcQ").MimeType(), ShouldBeEmpty)
	})
}

func TestKind(t *testing.T) {
	Convey("Kinds render as lowercase names", t, func() {
		So(Invalid.String(), ShouldEqual, "invalid")
		So(YouTube.String(), ShouldEqual, "youtube")
		text, err := Direct.MarshalText()
		So(err, ShouldBeNil)
		So(string(text), ShouldEqual, "direct")
	})
}
