package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// fileListModel is the bubbletea model for interactive palette file selection.
// Space toggles files, enter confirms, q aborts with nothing selected.
type fileListModel struct {
	files     []string
	cursor    int
	checked   map[int]bool
	confirmed bool
	height    int
	offset    int
}

// newFileListModel creates a file list model with every file pre-selected.
func newFileListModel(files []string) fileListModel {
	checked := make(map[int]bool, len(files))
	for i := range files {
		checked[i] = true
	}
	return fileListModel{
		files:   files,
		checked: checked,
		height:  15,
	}
}

func (m fileListModel) Init() tea.Cmd {
	return nil
}

func (m fileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case " ":
			m.checked[m.cursor] = !m.checked[m.cursor]
		case "a":
			for i := range m.files {
				m.checked[i] = true
			}
		case "n":
			for i := range m.files {
				m.checked[i] = false
			}
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m fileListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Palette Files"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ␣ toggle  a all  n none  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.files) {
		end = len(m.files)
	}
	for i := m.offset; i < end; i++ {
		mark := "[ ]"
		if m.checked[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, filepath.Base(m.files[i]))
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(m.files) > m.height {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.files))))
	}
	return b.String()
}

// pickPaletteFiles runs the interactive selector and returns the chosen
// files in their original order. Aborting returns an empty slice.
func pickPaletteFiles(files []string) ([]string, error) {
	program := tea.NewProgram(newFileListModel(files))
	final, err := program.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(fileListModel)
	if !ok || !m.confirmed {
		return nil, nil
	}
	var selected []string
	for i, f := range m.files {
		if m.checked[i] {
			selected = append(selected, f)
		}
	}
	return selected, nil
}
