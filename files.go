package main

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m *model) startFileInput(op FileOperation) {
	m.cancelDrag()
	m.mode = ModeFileInput
	m.fileOp = op
	m.errorMessage = ""
	m.filename = ""
	if m.boardFile != "" && op != FileOpOpen {
		m.filename = trimBoardExt(filepath.Base(m.boardFile))
	}
	if op == FileOpOpen {
		m.scanBoardFiles()
	}
}

func (m *model) scanBoardFiles() {
	m.fileList = nil
	m.selectedFileIndex = -1
	files, err := listBoardFiles(m.config.SearchDirectory())
	if err != nil {
		m.logger.Warn("scan board files failed", zap.Error(err))
		return
	}
	m.fileList = files
	if len(files) > 0 {
		m.selectedFileIndex = 0
		m.filename = trimBoardExt(files[0])
	}
}

func (m *model) leaveFileInput() {
	m.filename = ""
	m.fileList = nil
	if m.fromStartup && m.fileOp == FileOpOpen {
		m.mode = ModeStartup
	} else {
		m.mode = ModeNormal
	}
	m.fromStartup = false
}

func (m model) handleFileKey(msg tea.KeyMsg) tea.Model {
	switch {
	case msg.Type == tea.KeyEscape:
		m.errorMessage = ""
		m.leaveFileInput()
	case msg.Type == tea.KeyUp:
		if m.fileOp == FileOpOpen && m.selectedFileIndex > 0 {
			m.selectedFileIndex--
			m.filename = trimBoardExt(m.fileList[m.selectedFileIndex])
		}
	case msg.Type == tea.KeyDown:
		if m.fileOp == FileOpOpen && m.selectedFileIndex < len(m.fileList)-1 {
			m.selectedFileIndex++
			m.filename = trimBoardExt(m.fileList[m.selectedFileIndex])
		}
	case msg.Type == tea.KeyBackspace:
		if runes := []rune(m.filename); len(runes) > 0 {
			m.filename = string(runes[:len(runes)-1])
		}
	case msg.Type == tea.KeyRunes:
		m.filename += string(msg.Runes)
	case msg.Type == tea.KeyEnter:
		name := strings.TrimSpace(m.filename)
		if name == "" {
			m.errorMessage = "Filename cannot be empty"
			return m
		}
		m.runFileOp(name)
	}
	return m
}

func (m *model) runFileOp(name string) {
	switch m.fileOp {
	case FileOpSave:
		path := m.config.GetSavePath(withBoardExt(name))
		if _, err := os.Stat(path); err == nil && path != m.boardFile && m.config.Confirmations {
			m.filename = name
			m.confirmAction = ConfirmOverwriteFile
			m.mode = ModeConfirm
			return
		}
		m.saveBoard(path)
	case FileOpSavePNG:
		path := m.config.GetSavePath(withExt(name, ".png"))
		exporter := newExporter(m.board.Palette(), m.images)
		if err := exporter.ExportPNG(m.board, path); err != nil {
			m.fileError("export png", err)
			return
		}
		m.fileDone("Exported " + path)
	case FileOpSaveVisualTXT:
		path := m.config.GetSavePath(withExt(name, ".txt"))
		if err := m.exportVisualTXT(path); err != nil {
			m.fileError("export txt", err)
			return
		}
		m.fileDone("Exported " + path)
	case FileOpOpen:
		path := withBoardExt(name)
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.config.SearchDirectory(), path)
		}
		m.openBoard(path)
	}
}

func (m *model) saveBoard(path string) {
	f := m.board.Snapshot()
	f.PanX, f.PanY = m.panX, m.panY
	if err := saveBoardFile(path, f); err != nil {
		m.fileError("save board", err)
		return
	}
	m.boardFile = path
	m.fileDone("Saved " + path)
}

func (m *model) openBoard(path string) {
	f, err := loadBoardFile(path)
	if err == nil {
		err = m.board.Restore(f)
	}
	if err != nil {
		m.fileError("open board", err)
		return
	}
	m.cancelDrag()
	m.resetHistory()
	m.pruneDrags()
	m.panX, m.panY = f.PanX, f.PanY
	m.boardFile = path
	m.fileDone("Opened " + path)
}

func (m *model) fileError(op string, err error) {
	m.logger.Warn(op+" failed", zap.Error(err))
	m.errorMessage = err.Error()
}

func (m *model) fileDone(message string) {
	m.fromStartup = false
	m.leaveFileInput()
	m.successMessage = message
}

func withExt(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), ext) {
		return name
	}
	return name + ext
}
