package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardFileSaveAndLoad(t *testing.T) {
	b := newTestBoard(defaultBounds())
	b.SetCurrentMood(MoodChill)
	b.SetSelectedTheme("library")
	b.AddNoteFromResult(TrackResult{TrackTitle: "Golden", ArtistName: "Harry Styles", PreviewURL: "https://audio.example/g.m4a"}, nil)
	b.AddNote(MoodSad, &Position{X: 12, Y: 34})

	path := filepath.Join(t.TempDir(), "nested", withBoardExt("september"))
	f := b.Snapshot()
	f.PanX, f.PanY = 3, -2
	require.NoError(t, saveBoardFile(path, f))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file is renamed away")

	loaded, err := loadBoardFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)

	restored := newTestBoard(defaultBounds())
	require.NoError(t, restored.Restore(loaded))
	assert.Equal(t, b.Notes(), restored.Notes())
	assert.Equal(t, MoodChill, restored.CurrentMood())
	assert.Equal(t, ThemeKey("library"), restored.SelectedTheme())
}

func TestRestoreRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		file BoardFile
	}{
		{"wrong version", BoardFile{Version: 99}},
		{"missing id", BoardFile{Version: boardFileVersion, Notes: []Note{{Mood: MoodHappy}}}},
		{"duplicate id", BoardFile{Version: boardFileVersion, Notes: []Note{{ID: "a", Mood: MoodHappy}, {ID: "a", Mood: MoodSad}}}},
		{"bad mood", BoardFile{Version: boardFileVersion, Notes: []Note{{ID: "a", Mood: "party"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(defaultBounds())
			existing := b.AddNote(MoodHappy, nil)

			assert.Error(t, b.Restore(tt.file))
			require.Equal(t, 1, b.Len(), "board untouched on error")
			assert.Equal(t, existing.ID, b.Notes()[0].ID)
		})
	}
}

func TestRestoreClampsAndKeepsSelection(t *testing.T) {
	b := newTestBoard(defaultBounds())
	err := b.Restore(BoardFile{
		Version:       boardFileVersion,
		CurrentMood:   "party",
		SelectedTheme: "space",
		Notes:         []Note{{ID: "a", Mood: MoodHappy, Position: Position{X: 900, Y: -1}}},
	})
	require.NoError(t, err)

	note, ok := b.Note("a")
	require.True(t, ok)
	assert.Equal(t, Position{X: 300, Y: 0}, note.Position)
	assert.Equal(t, MoodCozy, b.CurrentMood(), "invalid mood in file is ignored")
	assert.Equal(t, ThemeKey("autumn"), b.SelectedTheme())
}

func TestLoadBoardFileErrors(t *testing.T) {
	_, err := loadBoardFile(filepath.Join(t.TempDir(), "missing.board.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notes: [\n"), 0644))
	_, err = loadBoardFile(path)
	assert.Error(t, err)
}

func TestListBoardFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.board.yaml", "a.board.yaml", "sub/c.board.yaml", "notes.txt", "d.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))
	}

	files, err := listBoardFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.board.yaml", "b.board.yaml", "sub/c.board.yaml"}, files)
}

func TestBoardExt(t *testing.T) {
	assert.Equal(t, "mix.board.yaml", withBoardExt("mix"))
	assert.Equal(t, "mix.board.yaml", withBoardExt("mix.board.yaml"))
	assert.Equal(t, "mix", trimBoardExt("mix.board.yaml"))
	assert.Equal(t, "mix", trimBoardExt("mix"))
	assert.Equal(t, "cover.png", withExt("cover", ".png"))
	assert.Equal(t, "cover.png", withExt("cover.png", ".png"))
}

func TestModelSaveAndOpen(t *testing.T) {
	m := newTestModel(t)
	m.board.AddNote(MoodHappy, &Position{X: 1, Y: 2})
	m.panX, m.panY = 4, 5

	m = update(t, m, key("s"))
	require.Equal(t, ModeFileInput, m.mode)
	m = typeText(t, m, "mix")
	m = update(t, m, key("enter"))
	require.Equal(t, ModeNormal, m.mode, m.errorMessage)

	path := filepath.Join(m.config.SaveDirectory, "mix.board.yaml")
	assert.Equal(t, path, m.boardFile)
	_, err := os.Stat(path)
	require.NoError(t, err)

	m = update(t, m, key("n"))
	assert.Equal(t, 0, m.board.Len())
	assert.Zero(t, m.panX)

	m = update(t, m, key("O"))
	require.Equal(t, ModeFileInput, m.mode)
	assert.Equal(t, []string{"mix.board.yaml"}, m.fileList)
	m = update(t, m, key("enter"))
	assert.Equal(t, ModeNormal, m.mode, m.errorMessage)
	assert.Equal(t, 1, m.board.Len())
	assert.Equal(t, 4, m.panX)
	assert.Equal(t, 5, m.panY)
	assert.Empty(t, m.undoStack)
}

func TestModelSaveOverwriteConfirm(t *testing.T) {
	m := newTestModel(t)
	m.config.Confirmations = true
	m.board.AddNote(MoodHappy, nil)

	path := filepath.Join(m.config.SaveDirectory, "mix.board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	m = update(t, m, key("s"))
	m = typeText(t, m, "mix")
	m = update(t, m, key("enter"))
	require.Equal(t, ModeConfirm, m.mode)

	m = update(t, m, key("n"))
	assert.Equal(t, ModeFileInput, m.mode)
	data, _ := os.ReadFile(path)
	assert.Equal(t, "old", string(data))

	m = update(t, m, key("enter"))
	m = update(t, m, key("y"))
	assert.Equal(t, ModeNormal, m.mode)
	f, err := loadBoardFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Notes, 1)
}
