package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-echo-feed/models"
)

// submitSpinner renders the ready toggle and spins while the input waits
// for the next poll to be sent.
type submitSpinner struct {
	spinner spinner.Model
}

func newSubmitSpinner() submitSpinner {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return submitSpinner{spinner: s}
}

func (s submitSpinner) render(view models.RoundView) string {
	var b strings.Builder

	if view.Ready {
		b.WriteString("[x] Готов")
	} else {
		b.WriteString("[ ] Готов")
	}

	switch {
	case view.SubmitFailed:
		b.WriteString("  ")
		b.WriteString(errorStyle.Render("отправка не удалась, нажмите пробел дважды для повтора"))
	case view.Phase == models.PhaseReadyPending:
		b.WriteString("  ")
		b.WriteString(s.spinner.View())
		b.WriteString(" отправка...")
	case view.Phase == models.PhaseSubmitted:
		b.WriteString("  ответ за этот шаг отправлен")
	}

	return b.String()
}
