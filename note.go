package main

import "strings"

type Mood string

const (
	MoodHappy Mood = "happy"
	MoodCozy  Mood = "cozy"
	MoodChill Mood = "chill"
	MoodSad   Mood = "sad"
)

// Moods lists every mood in palette order.
var Moods = []Mood{MoodHappy, MoodCozy, MoodChill, MoodSad}

func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodCozy, MoodChill, MoodSad:
		return true
	}
	return false
}

func ParseMood(s string) (Mood, bool) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", false
	}
	return m, true
}

func nextMood(m Mood) Mood {
	for i, mood := range Moods {
		if mood == m {
			return Moods[(i+1)%len(Moods)]
		}
	}
	return Moods[0]
}

type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Position) Add(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

type Note struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Lyrics     string   `yaml:"lyrics"`
	Mood       Mood     `yaml:"mood"`
	Position   Position `yaml:"position"`
	PreviewURL string   `yaml:"preview-url,omitempty"`
	YouTubeURL string   `yaml:"youtube-url,omitempty"`
	SpotifyURL string   `yaml:"spotify-url,omitempty"`
	ArtworkURL string   `yaml:"artwork-url,omitempty"`
}

func (n Note) links() []string {
	return []string{n.PreviewURL, n.YouTubeURL, n.SpotifyURL}
}

// Link returns the first well-formed external link on the note, preview
// first. Malformed links are skipped.
func (n Note) Link() string {
	for _, link := range n.links() {
		if validLink(link) {
			return strings.TrimSpace(link)
		}
	}
	return ""
}

// rawLink is the first non-empty link, valid or not.
func (n Note) rawLink() string {
	for _, link := range n.links() {
		if strings.TrimSpace(link) != "" {
			return link
		}
	}
	return ""
}

// NotePatch holds the fields to change on a note. Nil fields are left alone.
type NotePatch struct {
	Title      *string
	Lyrics     *string
	Mood       *Mood
	Position   *Position
	PreviewURL *string
	YouTubeURL *string
	SpotifyURL *string
	ArtworkURL *string
}

func (p NotePatch) apply(n Note) Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Lyrics != nil {
		n.Lyrics = *p.Lyrics
	}
	// An unknown mood would break the palette lookup, so it is dropped.
	if p.Mood != nil && p.Mood.Valid() {
		n.Mood = *p.Mood
	}
	if p.Position != nil {
		n.Position = *p.Position
	}
	if p.PreviewURL != nil {
		n.PreviewURL = *p.PreviewURL
	}
	if p.YouTubeURL != nil {
		n.YouTubeURL = *p.YouTubeURL
	}
	if p.SpotifyURL != nil {
		n.SpotifyURL = *p.SpotifyURL
	}
	if p.ArtworkURL != nil {
		n.ArtworkURL = *p.ArtworkURL
	}
	return n
}

// patchFrom builds a patch that turns any note into n (identity aside).
func patchFrom(n Note) NotePatch {
	return NotePatch{
		Title:      &n.Title,
		Lyrics:     &n.Lyrics,
		Mood:       &n.Mood,
		Position:   &n.Position,
		PreviewURL: &n.PreviewURL,
		YouTubeURL: &n.YouTubeURL,
		SpotifyURL: &n.SpotifyURL,
		ArtworkURL: &n.ArtworkURL,
	}
}
