// Package ui renders hosts for the user: the plain list printed by --list and
// the interactive picker shown before connecting.
package ui

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/creack/pty"
	"golang.org/x/term"
)

var (
	errNotTerminal = errors.New("stdin is not a terminal")
	errNoSelection = errors.New("no host selected")
)

const (
	fallbackWidth  = 80
	fallbackHeight = 20
	// title, status bar, pagination and help lines around the items
	chromeLines = 8
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	frameStyle = lipgloss.NewStyle().Margin(0, 1)
)

type hostItem struct {
	index int
	label string
}

func (i hostItem) Title() string       { return i.label }
func (i hostItem) Description() string { return "" }
func (i hostItem) FilterValue() string { return i.label }

type pickerModel struct {
	list      list.Model
	maxHeight int
	chosen    int
	cancelled bool
}

func newPickerModel(prompt string, items []string, defaultIndex, width, height int) pickerModel {
	entries := make([]list.Item, len(items))
	for i, label := range items {
		entries[i] = hostItem{index: i, label: label}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(entries, delegate, width, height)
	l.Title = prompt
	l.Styles.Title = titleStyle
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "connect")),
			key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("q", "cancel")),
		}
	}
	if defaultIndex >= 0 && defaultIndex < len(items) {
		l.Select(defaultIndex)
	}
	return pickerModel{list: l, maxHeight: len(items) + chromeLines, chosen: -1}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := frameStyle.GetVerticalFrameSize()
		w := frameStyle.GetHorizontalFrameSize()
		m.list.SetSize(msg.Width-w, min(msg.Height-h, m.maxHeight))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "esc":
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			m.cancelled = true
			return m, tea.Quit
		case "q":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(hostItem); ok {
				m.chosen = item.index
				return m, tea.Quit
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.cancelled || m.chosen >= 0 {
		return ""
	}
	return frameStyle.Render(m.list.View())
}

// TerminalSelector is the interactive Selector. It reads keys from In and
// draws on Out, stderr by default so stdout stays clean.
type TerminalSelector struct {
	In        *os.File
	Out       *os.File
	AltScreen bool
}

// NewTerminalSelector returns a selector on the process's terminal.
func NewTerminalSelector(altScreen bool) *TerminalSelector {
	return &TerminalSelector{In: os.Stdin, Out: os.Stderr, AltScreen: altScreen}
}

// Select runs the picker until the user chooses an item or cancels.
func (s *TerminalSelector) Select(prompt string, items []string, defaultIndex int) (int, error) {
	if !term.IsTerminal(int(s.In.Fd())) {
		return -1, errNotTerminal
	}
	width, height := pickerSize(s.Out, len(items))
	opts := []tea.ProgramOption{tea.WithInput(s.In), tea.WithOutput(s.Out)}
	if s.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(newPickerModel(prompt, items, defaultIndex, width, height), opts...).Run()
	if err != nil {
		return -1, err
	}
	m, ok := final.(pickerModel)
	if !ok || m.cancelled || m.chosen < 0 {
		return -1, errNoSelection
	}
	return m.chosen, nil
}

// pickerSize fits the list to the terminal, never taller than the items need.
func pickerSize(f *os.File, n int) (width, height int) {
	rows, cols, err := pty.Getsize(f)
	if err != nil || rows <= 0 || cols <= 0 {
		rows, cols = fallbackHeight, fallbackWidth
	}
	width = cols - frameStyle.GetHorizontalFrameSize()
	height = min(rows-1, n+chromeLines)
	return width, height
}
