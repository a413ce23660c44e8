package main

type Song struct {
	Title     string
	Artist    string
	Mood      Mood
	Genre     string
	Lyrics    string
	YouTubeID string
}

func (s Song) YouTubeURL() string {
	if s.YouTubeID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + s.YouTubeID
}

var septemberSongs = []Song{
	{Title: "Wake Me Up When September Ends", Artist: "Green Day", Mood: MoodSad, Genre: "Alternative Rock", Lyrics: "Summer has come and passed, the innocent can never last...", YouTubeID: "rdpBZ5_b48g"},
	{Title: "September", Artist: "Earth, Wind & Fire", Mood: MoodHappy, Genre: "Funk/Soul", Lyrics: "Do you remember the 21st night of September?", YouTubeID: "Gs069dndIYk"},
	{Title: "All Too Well", Artist: "Taylor Swift", Mood: MoodSad, Genre: "Pop/Country", Lyrics: "And you call me up again just to break me like a promise...", YouTubeID: "tollGa3S0o8"},
	{Title: "Autumn Leaves", Artist: "Nat King Cole", Mood: MoodCozy, Genre: "Jazz", Lyrics: "The falling leaves drift by the window...", YouTubeID: "r-Z8KuwI7Gc"},
	{Title: "October", Artist: "Broken Bells", Mood: MoodChill, Genre: "Indie Pop", Lyrics: "Realize you're getting older and it's a brand new world...", YouTubeID: "PC6d7ZIivQA"},
	{Title: "Harvest Moon", Artist: "Neil Young", Mood: MoodCozy, Genre: "Folk Rock", Lyrics: "Come a little bit closer, hear what I have to say...", YouTubeID: "n2MtEsrcTTs"},
	{Title: "Golden", Artist: "Harry Styles", Mood: MoodHappy, Genre: "Pop Rock", Lyrics: "Golden, golden, golden as I open my eyes...", YouTubeID: "P3cffdsEXXw"},
	{Title: "Cigarette Daydreams", Artist: "Cage The Elephant", Mood: MoodChill, Genre: "Alternative Rock", Lyrics: "Did you stand there all alone? Oh I cannot explain what's going down...", YouTubeID: "opeETnB8m8w"},
	{Title: "Cornelia Street", Artist: "Taylor Swift", Mood: MoodCozy, Genre: "Pop", Lyrics: "We were in the backseat, drunk on something stronger than the drinks in the bar...", YouTubeID: "VikHepMHTCo"},
	{Title: "Vienna", Artist: "Billy Joel", Mood: MoodChill, Genre: "Piano Rock", Lyrics: "Slow down you crazy child, you're so ambitious for a juvenile...", YouTubeID: "oZdiXvDU4P0"},
}

// SuggestionsFor returns the catalog songs tagged with mood, in catalog order.
func SuggestionsFor(mood Mood) []Song {
	var out []Song
	for _, song := range septemberSongs {
		if song.Mood == mood {
			out = append(out, song)
		}
	}
	return out
}
