package main

import (
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

// readClipboardText prefers the plain-text flavour on macOS, where lyrics
// copied from a browser or Notes otherwise arrive as RTF.
func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1")
}

func isHTML(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(t, "<") &&
		(strings.Contains(t, "<html") || strings.Contains(t, "<body") ||
			strings.Contains(t, "<div") || strings.Contains(t, "<p") || strings.Contains(t, "<br"))
}

// cleanClipboardText turns pasted text into something a note can hold:
// markup removed, line endings normalized and control characters dropped.
func cleanClipboardText(text string) string {
	switch {
	case text == "":
		return text
	case isRTF(text):
		text = extractTextFromRTF(text)
	case isHTML(text):
		text = extractTextFromHTML(text)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	return strings.Trim(result.String(), "\n")
}

// singleLine collapses pasted text for one-line fields (title, links).
func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func extractTextFromRTF(rtf string) string {
	var result strings.Builder
	result.Grow(len(rtf))

	// Groups starting with a destination (\fonttbl, \colortbl, \*...) carry
	// no visible text.
	skipDepth := -1
	depth := 0
	for i := 0; i < len(rtf); i++ {
		b := rtf[i]
		switch b {
		case '{':
			depth++
			continue
		case '}':
			if depth == skipDepth {
				skipDepth = -1
			}
			depth--
			continue
		case '\r', '\n':
			continue
		case '\\':
		default:
			if skipDepth < 0 {
				result.WriteByte(b)
			}
			continue
		}

		if i+1 >= len(rtf) {
			break
		}
		next := rtf[i+1]
		switch {
		case next == '\\' || next == '{' || next == '}':
			if skipDepth < 0 {
				result.WriteByte(next)
			}
			i++
		case next == '\'' && i+3 < len(rtf):
			if val, err := strconv.ParseUint(rtf[i+2:i+4], 16, 8); err == nil && skipDepth < 0 {
				result.WriteRune(rune(val))
			}
			i += 3
		case next == '*':
			if skipDepth < 0 {
				skipDepth = depth
			}
			i++
		case isLetter(next):
			j := i + 1
			for j < len(rtf) && isLetter(rtf[j]) {
				j++
			}
			word := rtf[i+1 : j]
			for j < len(rtf) && (rtf[j] == '-' || (rtf[j] >= '0' && rtf[j] <= '9')) {
				j++
			}
			if j < len(rtf) && rtf[j] == ' ' {
				j++
			}
			i = j - 1

			switch word {
			case "fonttbl", "colortbl", "stylesheet", "info", "pict", "expandedcolortbl":
				if skipDepth < 0 {
					skipDepth = depth
				}
			case "par", "line":
				if skipDepth < 0 {
					result.WriteByte('\n')
				}
			case "tab":
				if skipDepth < 0 {
					result.WriteByte('\t')
				}
			}
		default:
			i++
		}
	}
	return result.String()
}

var htmlEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", "\"",
	"&#39;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
)

func extractTextFromHTML(html string) string {
	var result strings.Builder
	result.Grow(len(html))

	inTag := false
	var tag strings.Builder
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
			tag.Reset()
		case r == '>' && inTag:
			inTag = false
			// Block-level tags end a line of lyrics.
			name := strings.ToLower(strings.TrimLeft(tag.String(), "/"))
			if f := strings.Fields(name); len(f) > 0 {
				name = strings.TrimRight(f[0], "/")
			}
			switch name {
			case "br", "p", "div", "li":
				result.WriteByte('\n')
			}
		case inTag:
			tag.WriteRune(r)
		default:
			result.WriteRune(r)
		}
	}

	lines := strings.Split(htmlEntities.Replace(result.String()), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
