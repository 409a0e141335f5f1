package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TelegramStep collects the optional Telegram bot token
type TelegramStep struct {
	input textinput.Model
}

func NewTelegramStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "123456789:ABCDEF..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &TelegramStep{
		input: ti,
	}
}

func (s *TelegramStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TelegramStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.EnvVars["TELEGRAM_TOKEN"] = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *TelegramStep) View(state *InstallState) string {
	return "Enter your Telegram Bot Token (optional - press Enter to skip):\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
