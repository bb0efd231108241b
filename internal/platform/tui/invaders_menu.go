package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// invadersModes are the selectable variants, in display order.
var invadersModes = []struct {
	gameID string
	label  string
}{
	{"invaders", "Juan Claudio's Revenge (waves and bosses)"},
	{"invaders_classic", "Classic (endless formation)"},
}

// InvadersModeModel lets users choose between the invaders variants.
type InvadersModeModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  string // Game ID, empty while choosing
	quitting  bool
	back      bool
}

// NewInvadersModeModel creates a new invaders mode selection model.
func NewInvadersModeModel(width, height int) InvadersModeModel {
	return InvadersModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m InvadersModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m InvadersModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m InvadersModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(invadersModes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = invadersModes[m.cursor].gameID
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the mode selection.
func (m InvadersModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("I N V A D E R S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, mode := range invadersModes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen game ID, or "" if still choosing.
func (m InvadersModeModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m InvadersModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m InvadersModeModel) WantsBack() bool {
	return m.back
}

// RunInvadersModeSelector runs the invaders mode selection.
// Returns the chosen game ID, or "" if the user went back or quit.
func RunInvadersModeSelector(cfg core.RuntimeConfig) (string, error) {
	model := NewInvadersModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(InvadersModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return "", nil
	}

	return m.Selected(), nil
}
