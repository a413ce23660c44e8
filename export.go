package main

import (
	"bufio"
	"image"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	charWidth    = 8.0
	charHeight   = 16.0
	bannerHeight = 96.0
	pixelBorder  = 4.0
)

var errNothingToExport = errors.New("nothing to export")

type Exporter struct {
	palette Palette
	images  *ThemeImages
}

func newExporter(palette Palette, images *ThemeImages) *Exporter {
	return &Exporter{palette: palette, images: images}
}

func (e *Exporter) ExportPNG(board *Board, filename string) error {
	img, err := e.Render(board)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(filename, img); err != nil {
		return errors.Wrap(err, "write png")
	}
	return nil
}

// Render draws the board: a theme banner on top, then every note in
// insertion order so later notes overlap earlier ones.
func (e *Exporter) Render(board *Board) (image.Image, error) {
	notes := board.Notes()
	if len(notes) == 0 {
		return nil, errNothingToExport
	}

	// Calculate bounds of all notes
	minX, minY := noteCell(notes[0].Position)
	maxX, maxY := minX+noteWidth, minY+noteHeight
	for _, note := range notes[1:] {
		x, y := noteCell(note.Position)
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x+noteWidth)
		maxY = max(maxY, y+noteHeight)
	}

	padding := 2
	minX -= padding
	minY -= padding
	maxX += padding
	maxY += padding

	imageWidth := int(float64(maxX-minX) * charWidth)
	imageHeight := int(float64(maxY-minY)*charHeight + bannerHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetHexColor(e.palette.BackgroundFor(board.CurrentMood()))
	dc.Clear()

	face, err := monoFace(12)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	e.drawBanner(dc, board.SelectedTheme(), float64(imageWidth))

	for _, note := range notes {
		x, y := noteCell(note.Position)
		px := float64(x-minX) * charWidth
		py := float64(y-minY)*charHeight + bannerHeight
		e.drawNotePNG(dc, note, px, py)
	}
	return dc.Image(), nil
}

func monoFace(size float64) (font.Face, error) {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func (e *Exporter) drawBanner(dc *gg.Context, key ThemeKey, width float64) {
	theme, ok := e.palette.Theme(key)
	if !ok {
		return
	}

	if img, ok := e.images.ImageFor(key); ok {
		b := img.Bounds()
		scale := width / float64(b.Dx())
		dc.Push()
		dc.DrawRectangle(0, 0, width, bannerHeight)
		dc.Clip()
		dc.Scale(scale, scale)
		dc.DrawImage(img, 0, 0)
		dc.Pop()
		dc.ResetClip()
	} else {
		// No artwork: flat theme colors with an accent stripe.
		dc.SetHexColor(theme.Background)
		dc.DrawRectangle(0, 0, width, bannerHeight)
		dc.Fill()
		dc.SetHexColor(theme.Accent)
		dc.DrawRectangle(0, bannerHeight-pixelBorder*2, width, pixelBorder*2)
		dc.Fill()
	}

	dc.SetHexColor(e.palette.Border)
	dc.DrawString(theme.Name, charWidth, charHeight*1.5)
	dc.DrawString(theme.Description, charWidth, charHeight*2.75)
}

func (e *Exporter) drawNotePNG(dc *gg.Context, note Note, x, y float64) {
	width := float64(noteWidth) * charWidth
	height := float64(noteHeight) * charHeight

	dc.SetHexColor(e.palette.ColorFor(note.Mood))
	dc.DrawRectangle(x, y, width, height)
	dc.Fill()

	dc.SetLineWidth(pixelBorder)
	dc.SetHexColor(e.palette.Border)
	dc.DrawRectangle(x+pixelBorder/2, y+pixelBorder/2, width-pixelBorder, height-pixelBorder)
	dc.Stroke()

	for i, line := range noteLines(note, renderOptions{}) {
		dc.DrawString(line, x+charWidth, y+charHeight*float64(i+1)+charHeight*0.75)
	}
}

func (m *model) exportVisualTXT(filename string) error {
	if m.board.Len() == 0 {
		return errNothingToExport
	}

	width := m.width
	if width < 1 {
		width = 80
	}
	height := m.canvasHeight()
	if m.height < 1 {
		height = 24
	}

	// Render the board as it appears, minus cursor and selection.
	rendered := renderBoard(m.board.Notes(), width, height, renderOptions{panX: m.panX, panY: m.panY})

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create txt")
	}
	w := bufio.NewWriter(file)
	for _, line := range rendered.plain() {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return errors.Wrap(err, "write txt")
	}
	return errors.Wrap(file.Close(), "close txt")
}
