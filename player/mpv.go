package player

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/anidex-cli/anidex/log"
	"github.com/anidex-cli/anidex/video"
)

// MPV runs a detached mpv process per trailer.
type MPV struct {
	Binary string

	start func(cmd *exec.Cmd) error
}

// NewMPV creates a player for binary, "mpv" when empty.
func NewMPV(binary string) *MPV {
	if strings.TrimSpace(binary) == "" {
		binary = "mpv"
	}
	return &MPV{Binary: binary, start: startDetached}
}

func (m *MPV) Play(src video.Source, title string) error {
	if !src.Playable() {
		return ErrUnplayable
	}

	args, err := m.Args(src, title)
	if err != nil {
		return err
	}

	cmd := exec.Command(m.Binary, args...)
	cmd.SysProcAttr = sysProcAttr()

	log.With(log.Fields{"player": m.Binary, "kind": src.Kind.String()}).Info("starting trailer")
	return m.start(cmd)
}

// Args builds the command line. Only the title and target are passed so the user's mpv.conf applies.
func (m *MPV) Args(src video.Source, title string) ([]string, error) {
	target, err := sanitizeMediaTarget(src.WatchURL())
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	args := []string{"--no-terminal", "--really-quiet"}
	if t := sanitizeTitle(title); t != "" {
		args = append(args, "--force-media-title="+t, "--title="+t)
	}

	return append(args, "--", target), nil
}

func startDetached(cmd *exec.Cmd) error {
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			log.Warnf("%s exited: %s", filepath.Base(cmd.Path), err)
		}
	}()
	return nil
}

// sanitizeMediaTarget validates that a URL is safe to pass to mpv.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https", "rtmp", "rtsp":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

// sanitizeTitle flattens the title to one line for the window title
func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
