package installer

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PortStep collects the relay server listen port
type PortStep struct {
	input   textinput.Model
	invalid bool
}

func NewPortStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 5
	ti.Width = 10
	ti.Placeholder = "10000"

	return &PortStep{
		input: ti,
	}
}

func (s *PortStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *PortStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			value := s.input.Value()
			if value == "" {
				value = "10000"
			}
			port, err := strconv.Atoi(value)
			if err != nil || port < 1 || port > 65535 {
				s.invalid = true
				return s, nil
			}
			state.EnvVars["PORT"] = value
			return nil, nil
		}
	}
	return s, cmd
}

func (s *PortStep) View(state *InstallState) string {
	hint := ""
	if s.invalid {
		hint = errorStyle.Render("Port must be a number between 1 and 65535") + "\n\n"
	}
	return "Relay server port (press Enter for 10000):\n\n" +
		s.input.View() + "\n\n" + hint +
		"(press enter to confirm)\n"
}
