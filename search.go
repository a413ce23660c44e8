package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m *model) startSearch() {
	m.cancelDrag()
	m.mode = ModeSearch
	m.searchQuery = ""
	m.searchResults = nil
	m.searchPending = false
	m.searchDone = false
	m.selectedResult = 0
}

// leaveSearch bumps the sequence so a response still in flight is dropped.
func (m *model) leaveSearch() {
	m.searchSeq++
	m.searchPending = false
	m.mode = ModeNormal
}

func (m model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.leaveSearch()
		return m, nil
	case msg.Type == tea.KeyEnter:
		if m.searchDone && len(m.searchResults) > 0 {
			note := m.addFromResult(m.searchResults[m.selectedResult])
			m.leaveSearch()
			m.successMessage = fmt.Sprintf("Added %q", note.Title)
			return m, nil
		}
		if m.searchQuery == "" || m.searcher == nil {
			return m, nil
		}
		m.searchSeq++
		m.searchPending = true
		m.searchDone = false
		m.searchResults = nil
		m.selectedResult = 0
		return m, searchCmd(m.searcher, m.searchSeq, m.searchQuery, m.config.Lookup.Limit, m.config.Lookup.Timeout)
	case msg.Type == tea.KeyUp:
		if m.selectedResult > 0 {
			m.selectedResult--
		}
	case msg.Type == tea.KeyDown:
		if m.selectedResult < len(m.searchResults)-1 {
			m.selectedResult++
		}
	case msg.Type == tea.KeyBackspace:
		if runes := []rune(m.searchQuery); len(runes) > 0 {
			m.searchQuery = string(runes[:len(runes)-1])
			m.searchDone = false
		}
	case msg.Type == tea.KeySpace:
		m.searchQuery += " "
		m.searchDone = false
	case msg.Type == tea.KeyRunes:
		m.searchQuery += string(msg.Runes)
		m.searchDone = false
	}
	return m, nil
}

// handleSearchResults applies a lookup response, unless the user has
// moved on: a newer search, or search mode was left.
func (m model) handleSearchResults(msg searchResultsMsg) tea.Model {
	if msg.seq != m.searchSeq || m.mode != ModeSearch {
		m.logger.Debug("dropping stale lookup response", zap.String("query", msg.query), zap.Int("seq", msg.seq))
		return m
	}
	m.searchPending = false
	m.searchDone = true
	m.searchResults = msg.results
	m.selectedResult = 0
	return m
}

func (m *model) startSuggest() {
	m.cancelDrag()
	m.mode = ModeSuggest
	m.suggestions = SuggestionsFor(m.board.CurrentMood())
	m.selectedSuggest = 0
}

func (m model) handleSuggestKey(msg tea.KeyMsg) tea.Model {
	switch key := msg.String(); {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeNormal
	case msg.Type == tea.KeyEnter:
		if len(m.suggestions) > 0 {
			note := m.addFromSuggestion(m.suggestions[m.selectedSuggest])
			m.successMessage = fmt.Sprintf("Added %q", note.Title)
		}
		m.mode = ModeNormal
	case key == "up" || key == "k":
		if m.selectedSuggest > 0 {
			m.selectedSuggest--
		}
	case key == "down" || key == "j":
		if m.selectedSuggest < len(m.suggestions)-1 {
			m.selectedSuggest++
		}
	case key == "1" || key == "2" || key == "3" || key == "4":
		m.board.SetCurrentMood(Moods[int(key[0]-'1')])
		m.suggestions = SuggestionsFor(m.board.CurrentMood())
		m.selectedSuggest = 0
	}
	return m
}
