package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporterRender(t *testing.T) {
	b := newTestBoard(defaultBounds())
	exporter := newExporter(b.Palette(), nil)

	_, err := exporter.Render(b)
	assert.ErrorIs(t, err, errNothingToExport)

	b.AddNoteFromResult(TrackResult{TrackTitle: "Golden", ArtistName: "Harry Styles"}, nil)
	note := b.Notes()[0]
	pos := Position{X: 0, Y: 0}
	b.UpdateNote(note.ID, NotePatch{Position: &pos})

	img, err := exporter.Render(b)
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, int((noteWidth+4)*charWidth), bounds.Dx())
	assert.Equal(t, int((noteHeight+4)*charHeight+bannerHeight), bounds.Dy())

	// Inside the note the mood color shows through.
	r, g, bl, _ := img.At(int(3*charWidth), int(bannerHeight+6*charHeight)).RGBA()
	wr, wg, wb, _ := hexRGBA(t, b.Palette().ColorFor(MoodCozy))
	assert.Equal(t, []uint32{wr, wg, wb}, []uint32{r, g, bl})
}

func TestExporterExportPNG(t *testing.T) {
	b := newTestBoard(defaultBounds())
	b.AddNote(MoodHappy, &Position{X: 10, Y: 10})
	b.AddNote(MoodSad, &Position{X: 40, Y: 30})

	path := filepath.Join(t.TempDir(), "board.png")
	require.NoError(t, newExporter(b.Palette(), NewThemeImages(t.TempDir(), b.Palette(), nil)).ExportPNG(b, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, int((30+noteWidth+4)*charWidth), img.Bounds().Dx())
}

func TestExporterBannerImage(t *testing.T) {
	dir := t.TempDir()
	p := DefaultPalette()
	theme, _ := p.Theme("autumn")

	banner := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := range banner.Pix {
		banner.Pix[i] = 0xff
	}
	f, err := os.Create(filepath.Join(dir, theme.Image))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, banner))
	require.NoError(t, f.Close())

	b := newTestBoard(defaultBounds())
	b.AddNote(MoodHappy, &Position{X: 0, Y: 0})
	img, err := newExporter(p, NewThemeImages(dir, p, nil)).Render(b)
	require.NoError(t, err)

	r, g, bl, _ := img.At(img.Bounds().Dx()/2, 70).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, bl}, "banner drawn from the theme image")
}

func TestExportVisualTXT(t *testing.T) {
	m := newTestModel(t)
	path := filepath.Join(t.TempDir(), "board.txt")
	assert.ErrorIs(t, m.exportVisualTXT(path), errNothingToExport)

	m.board.AddNoteFromResult(TrackResult{TrackTitle: "Vienna", ArtistName: "Billy Joel"}, nil)
	note := m.board.Notes()[0]
	pos := Position{X: 1, Y: 1}
	m.board.UpdateNote(note.ID, NotePatch{Position: &pos})
	m.cursorX, m.cursorY = 2, 2

	require.NoError(t, m.exportVisualTXT(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "♪ Vienna - Billy")
	assert.NotContains(t, text, "█", "no cursor in exports")
	assert.Equal(t, m.canvasHeight(), strings.Count(text, "\n"))
}

func TestExportVisualTXTReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	m := newTestModel(t)
	m.board.AddNote(MoodHappy, &Position{X: 0, Y: 0})

	assert.Error(t, m.exportVisualTXT("/dev/full"))
}

func hexRGBA(t *testing.T, hex string) (uint32, uint32, uint32, uint32) {
	t.Helper()
	require.Len(t, hex, 7)
	var v [3]uint32
	for i := 0; i < 3; i++ {
		var n uint32
		for _, c := range hex[1+2*i : 3+2*i] {
			n <<= 4
			switch {
			case c >= '0' && c <= '9':
				n |= uint32(c - '0')
			case c >= 'A' && c <= 'F':
				n |= uint32(c-'A') + 10
			case c >= 'a' && c <= 'f':
				n |= uint32(c-'a') + 10
			}
		}
		v[i] = n * 0x101
	}
	return v[0], v[1], v[2], 0xffff
}
