package tui

import (
	"fmt"

	"github.com/MKhiriev/go-echo-feed/internal/service"
)

func renderNoticeOverlay(n service.Notice) string {
	var title, body string
	switch n.Kind {
	case service.NoticeSubmissionFailed:
		title = fmt.Sprintf("Ответ за шаг %d не отправлен", n.Step)
		body = humanizeServerUnavailableError(n.Err)
	case service.NoticeSessionInvalid:
		title = "Сессия потеряна"
		body = "Сервер не узнал ключ. Будет получен новый ключ."
	default:
		title = "Ошибка"
		body = humanizeServerUnavailableError(n.Err)
	}

	content := title + "\n\n" + body + "\n\nenter / esc закрыть"
	return overlayBoxStyle.Render(content)
}
