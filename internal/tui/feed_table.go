package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-echo-feed/models"
)

const feedHeight = 8

func newFeedTable() table.Model {
	t := table.New(
		table.WithColumns(feedColumns(models.MetricFollowers)),
		table.WithHeight(feedHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)

	return t
}

func feedColumns(metric string) []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Участник", Width: 16},
		{Title: "Сообщение", Width: 32},
		{Title: metricTitle(metric), Width: 10},
		{Title: "Действие", Width: 12},
	}
}

// syncFeedTable rebuilds the rows from view. A row exists for every feed
// slot, including slots whose message has not arrived.
func syncFeedTable(t *table.Model, view models.RoundView) {
	metric := models.MetricFollowers
	if len(view.Feed) > 0 && view.Feed[0].MetricName != "" {
		metric = view.Feed[0].MetricName
	}
	t.SetColumns(feedColumns(metric))

	n := max(len(view.Feed), len(view.Actions))
	rows := make([]table.Row, 0, n)
	for i := range n {
		row := table.Row{strconv.Itoa(i + 1), "-", "-", "-", "-"}
		if i < len(view.Feed) {
			msg := view.Feed[i]
			row[1] = fitText(msg.User, 16)
			row[2] = fitText(msg.PostLabels(view.Issues), 32)
			row[3] = strconv.Itoa(msg.Metric)
		}
		if i < len(view.Actions) {
			row[4] = actionLabel(view.Actions[i])
		}
		rows = append(rows, row)
	}

	t.SetRows(rows)
	if t.Cursor() >= len(rows) {
		t.SetCursor(max(len(rows)-1, 0))
	}
}

func metricTitle(metric string) string {
	switch metric {
	case models.MetricViews:
		return "Просмотры"
	case models.MetricLikes:
		return "Лайки"
	default:
		return "Подписчики"
	}
}

func actionLabel(a models.Action) string {
	switch a {
	case models.ActionFollow:
		return "подписаться"
	case models.ActionUnfollow:
		return "отписаться"
	default:
		return "·"
	}
}
