package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	boardFileVersion = 1
	boardFileExt     = ".board.yaml"
)

type BoardFile struct {
	Version       int      `yaml:"version"`
	CurrentMood   Mood     `yaml:"current-mood"`
	SelectedTheme ThemeKey `yaml:"selected-theme"`
	PanX          int      `yaml:"pan-x,omitempty"`
	PanY          int      `yaml:"pan-y,omitempty"`
	Notes         []Note   `yaml:"notes"`
}

func (b *Board) Snapshot() BoardFile {
	return BoardFile{
		Version:       boardFileVersion,
		CurrentMood:   b.currentMood,
		SelectedTheme: b.selectedTheme,
		Notes:         b.Notes(),
	}
}

// Restore replaces the board contents with f. The file is checked first;
// on error the board is left untouched.
func (b *Board) Restore(f BoardFile) error {
	if f.Version != boardFileVersion {
		return errors.Errorf("unsupported board file version %d", f.Version)
	}
	seen := make(map[string]bool, len(f.Notes))
	notes := make([]Note, 0, len(f.Notes))
	for i, note := range f.Notes {
		if note.ID == "" {
			return errors.Errorf("note %d has no id", i)
		}
		if seen[note.ID] {
			return errors.Errorf("duplicate note id %q", note.ID)
		}
		if !note.Mood.Valid() {
			return errors.Errorf("note %q has unknown mood %q", note.ID, note.Mood)
		}
		seen[note.ID] = true
		note.Position = b.bounds.Clamp(note.Position)
		notes = append(notes, note)
	}

	b.notes = notes
	b.SetCurrentMood(f.CurrentMood)
	b.SetSelectedTheme(f.SelectedTheme)
	return nil
}

func saveBoardFile(path string, f BoardFile) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return errors.Wrap(err, "encode board")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create board directory")
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, "write board file")
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "replace board file")
	}
	return nil
}

func loadBoardFile(path string) (BoardFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BoardFile{}, errors.Wrap(err, "read board file")
	}
	var f BoardFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return BoardFile{}, errors.Wrapf(err, "parse board file %s", filepath.Base(path))
	}
	return f, nil
}

func withBoardExt(name string) string {
	if strings.HasSuffix(strings.ToLower(name), boardFileExt) {
		return name
	}
	return name + boardFileExt
}

func trimBoardExt(name string) string {
	if strings.HasSuffix(strings.ToLower(name), boardFileExt) {
		return name[:len(name)-len(boardFileExt)]
	}
	return name
}

// listBoardFiles returns board files under dir, relative and sorted.
func listBoardFiles(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*"+boardFileExt)
	if err != nil {
		return nil, errors.Wrap(err, "scan board files")
	}
	sort.Strings(matches)
	return matches, nil
}
