package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// keyPromptModel asks for the API key before the round screen opens.
type keyPromptModel struct {
	input textinput.Model
	quit  bool
}

func newKeyPromptModel() keyPromptModel {
	input := textinput.New()
	input.Placeholder = "пусто = сохранённый или новый ключ"
	input.CharLimit = 128
	input.Width = 48
	input.Focus()

	return keyPromptModel{input: input}
}

func (m keyPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m keyPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc), keyMsg.String() == "ctrl+c":
			m.quit = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m keyPromptModel) View() string {
	var b strings.Builder
	b.WriteString("API ключ │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")
	b.WriteString(helpStyle.Render("Ключ выдаёт организатор. Оставьте поле пустым, чтобы продолжить прошлую сессию или получить новый ключ."))

	return renderPage("ECHO FEED", b.String(), "enter: продолжить │ esc: выход")
}

func (m keyPromptModel) value() string {
	return strings.TrimSpace(m.input.Value())
}
