package main

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"sync"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

type ThemeKey string

type Theme struct {
	Key         ThemeKey
	Name        string
	Description string
	Background  string
	Accent      string
	Image       string
}

type MoodInfo struct {
	Emoji       string
	Description string
	Keywords    []string
}

// Palette is the read-only styling configuration handed to the board,
// the renderer and the exporter.
type Palette struct {
	Background      string
	Border          string
	MoodColors      map[Mood]string
	MoodBackgrounds map[Mood]string
	MoodInfo        map[Mood]MoodInfo
	Themes          []Theme
}

func DefaultPalette() Palette {
	return Palette{
		Background: "#FFF8E1",
		Border:     "#2E2E2E",
		MoodColors: map[Mood]string{
			MoodHappy: "#FFD54F",
			MoodCozy:  "#FFAB40",
			MoodChill: "#CE93D8",
			MoodSad:   "#90CAF9",
		},
		MoodBackgrounds: map[Mood]string{
			MoodHappy: "#FFF9C4",
			MoodCozy:  "#FFE0B2",
			MoodChill: "#E1BEE7",
			MoodSad:   "#BBDEFB",
		},
		MoodInfo: map[Mood]MoodInfo{
			MoodHappy: {Emoji: "☀", Description: "Upbeat and energetic", Keywords: []string{"joyful", "bright", "energetic", "positive"}},
			MoodCozy:  {Emoji: "🍂", Description: "Warm and comfortable", Keywords: []string{"warm", "comfortable", "intimate", "peaceful"}},
			MoodChill: {Emoji: "🌙", Description: "Relaxed and dreamy", Keywords: []string{"calm", "dreamy", "mellow", "atmospheric"}},
			MoodSad:   {Emoji: "💙", Description: "Melancholic and reflective", Keywords: []string{"melancholic", "emotional", "introspective", "bittersweet"}},
		},
		Themes: []Theme{
			{Key: "autumn", Name: "Golden Autumn", Description: "Crisp leaves and warm sunlight", Background: "#FFF4E6", Accent: "#D2691E", Image: "autumn-pixel.jpg"},
			{Key: "rainy", Name: "Rainy Study Day", Description: "Cozy indoor vibes with raindrops", Background: "#E6F3FF", Accent: "#4682B4", Image: "rainy-pixel.jpg"},
			{Key: "sunset", Name: "September Sunset", Description: "Golden hour magic", Background: "#FFF0E6", Accent: "#FF6347", Image: "sunset-pixel.jpg"},
			{Key: "study", Name: "Late Night Study", Description: "Focused midnight sessions", Background: "#F0E6FF", Accent: "#9370DB", Image: "study-pixel.jpg"},
			{Key: "cozyRoom", Name: "Cozy Bedroom", Description: "Warm blankets and fairy lights", Background: "#FFE6E6", Accent: "#CD5C5C", Image: "cozy-room-pixel.jpg"},
			{Key: "library", Name: "Quiet Library", Description: "Peaceful reading corner", Background: "#E6F0E6", Accent: "#228B22", Image: "library-pixel.jpg"},
			{Key: "coffee", Name: "Coffee Shop", Description: "Warm lattes and lo-fi beats", Background: "#F4E4BC", Accent: "#8B4513", Image: "coffee-pixel.jpg"},
			{Key: "dorm", Name: "Dorm Room", Description: "College vibes and late nights", Background: "#E6E6FA", Accent: "#6A5ACD", Image: "dorm-pixel.jpg"},
		},
	}
}

func (p Palette) Theme(key ThemeKey) (Theme, bool) {
	for _, theme := range p.Themes {
		if theme.Key == key {
			return theme, true
		}
	}
	return Theme{}, false
}

func (p Palette) HasTheme(key ThemeKey) bool {
	_, ok := p.Theme(key)
	return ok
}

func (p Palette) NextTheme(key ThemeKey) ThemeKey {
	if len(p.Themes) == 0 {
		return key
	}
	for i, theme := range p.Themes {
		if theme.Key == key {
			return p.Themes[(i+1)%len(p.Themes)].Key
		}
	}
	return p.Themes[0].Key
}

func (p Palette) ColorFor(m Mood) string {
	if c, ok := p.MoodColors[m]; ok {
		return c
	}
	return p.Background
}

func (p Palette) BackgroundFor(m Mood) string {
	if c, ok := p.MoodBackgrounds[m]; ok {
		return c
	}
	return p.Background
}

// ThemeImages resolves theme artwork from an assets directory. Images that
// are missing or fail to decode are reported as absent; callers draw the
// theme colors instead.
type ThemeImages struct {
	dir     string
	palette Palette
	logger  *zap.Logger

	mu    sync.Mutex
	cache map[ThemeKey]image.Image
}

func NewThemeImages(dir string, palette Palette, logger *zap.Logger) *ThemeImages {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ThemeImages{
		dir:     dir,
		palette: palette,
		logger:  logger,
		cache:   make(map[ThemeKey]image.Image),
	}
}

func (t *ThemeImages) ImageFor(key ThemeKey) (image.Image, bool) {
	if t == nil || t.dir == "" {
		return nil, false
	}
	theme, ok := t.palette.Theme(key)
	if !ok || theme.Image == "" {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if img, ok := t.cache[key]; ok {
		return img, img != nil
	}

	img, err := gg.LoadImage(filepath.Join(t.dir, theme.Image))
	if err != nil {
		t.logger.Debug("theme image unavailable", zap.String("theme", string(key)), zap.Error(err))
		img = nil
	}
	// Misses are cached too so a missing file is only stat'ed once.
	t.cache[key] = img
	return img, img != nil
}
