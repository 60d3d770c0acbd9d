package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-echo-feed/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: выход"))

	return b.String()
}

func renderHeader(view models.RoundView) string {
	step := "-"
	if view.Step >= 0 {
		step = fmt.Sprintf("%d", view.Step)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Шаг: %s │ Осталось: %s │ Лайки: %d (%+d) │ Подписчики: %d │ Готовы: %d/%d",
		step, formatRemaining(view.TimeRemaining), view.Likes, view.LikeChange, view.Followers, view.ReadyCount, view.Size)
	b.WriteString("\n")

	if view.Team != nil {
		b.WriteString("Команда: ")
		b.WriteString(teamStyle(view.Team.Colour()).Render(view.Team.Name()))
		b.WriteString(" │ ")
	}
	b.WriteString("Ключ: ")
	b.WriteString(valueOrDash(view.APIKey))
	b.WriteString(" │ Статус: ")
	b.WriteString(phaseLabel(view))

	return b.String()
}

// renderBeliefs shows every issue with its two labels in presentation order.
// The chosen label is highlighted.
func renderBeliefs(view models.RoundView, cursor int, focused bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ваше сообщение"))
	b.WriteString("\n")

	if len(view.Belief) == 0 {
		b.WriteString("  ожидание вопросов раунда...\n")
		return b.String()
	}

	for i, issue := range view.Issues {
		if i >= len(view.Belief) {
			break
		}

		marker := "  "
		if focused && i == cursor {
			marker = "> "
		}

		left, right := presentedPoles(view.Swapped[i])
		b.WriteString(marker)
		b.WriteString(renderPole(issue, left, view.Belief[i]))
		b.WriteString("  ")
		b.WriteString(renderPole(issue, right, view.Belief[i]))
		b.WriteString("\n")
	}

	return b.String()
}

func renderPole(issue models.Issue, pole, chosen int) string {
	label := issue.Label(pole)
	if pole == chosen {
		return selectedStyle.Render("[" + label + "]")
	}
	return " " + label + " "
}

func phaseLabel(view models.RoundView) string {
	if view.APIKey == "" && view.Phase != models.PhaseInvalid {
		return "нет сессии"
	}

	switch view.Phase {
	case models.PhaseCollecting:
		return "ввод"
	case models.PhaseReadyPending:
		return "готов, ожидает отправки"
	case models.PhaseSubmitted:
		return "отправлено"
	case models.PhaseInvalid:
		return "ключ недействителен"
	default:
		return view.Phase.String()
	}
}

func formatRemaining(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
