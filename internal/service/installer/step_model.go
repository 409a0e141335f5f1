package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ModelStep selects the upstream chat model
type ModelStep struct {
	choices []string
	cursor  int
}

func NewModelStep() Step {
	return &ModelStep{
		choices: []string{"gpt-4o-mini", "gpt-4o", "gpt-4-turbo"},
		cursor:  0,
	}
}

func (s *ModelStep) Init() tea.Cmd {
	return nil
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.EnvVars["OPENAI_MODEL"] = s.choices[s.cursor]
			return nil, nil
		}
	}
	return s, nil
}

func (s *ModelStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select the chat model:\n\n")
	for i, choice := range s.choices {
		cursor := " "
		if s.cursor == i {
			cursor = "❯"
			b.WriteString(selStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
