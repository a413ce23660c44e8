package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestionsFor(t *testing.T) {
	total := 0
	for _, mood := range Moods {
		songs := SuggestionsFor(mood)
		assert.NotEmpty(t, songs, mood)
		for _, s := range songs {
			assert.Equal(t, mood, s.Mood)
			assert.NotEmpty(t, s.Title)
			assert.NotEmpty(t, s.Artist)
		}
		total += len(songs)
	}
	assert.Equal(t, len(septemberSongs), total)
	assert.Empty(t, SuggestionsFor("party"))
}

func TestSongYouTubeURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", Song{YouTubeID: "abc"}.YouTubeURL())
	assert.Empty(t, Song{}.YouTubeURL())
}

func TestParseMood(t *testing.T) {
	m, ok := ParseMood(" Happy ")
	assert.True(t, ok)
	assert.Equal(t, MoodHappy, m)

	_, ok = ParseMood("party")
	assert.False(t, ok)

	assert.Equal(t, MoodCozy, nextMood(MoodHappy))
	assert.Equal(t, MoodHappy, nextMood(MoodSad))
}
