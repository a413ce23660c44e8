package main

import (
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

var errInvalidLink = errors.New("link is not a valid http(s) URL")

// validLink reports whether raw is well-formed enough to hand to a browser.
func validLink(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// launcher builds the command that opens a URL; swapped out in tests.
var launcher = func(link string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", link)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		return exec.Command("xdg-open", link)
	}
}

func openLink(raw string) error {
	if !validLink(raw) {
		return errInvalidLink
	}
	if err := launcher(strings.TrimSpace(raw)).Start(); err != nil {
		return errors.Wrap(err, "launch browser")
	}
	return nil
}

// clipboardText is what 'y' copies for a note: its link when it has one,
// otherwise the title and lyrics.
func clipboardText(n Note) string {
	if link := n.Link(); link != "" {
		return link
	}
	if n.Lyrics == "" {
		return n.Title
	}
	return n.Title + "\n" + n.Lyrics
}

var writeClipboard = clipboard.WriteAll
