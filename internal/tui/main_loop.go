package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-echo-feed/internal/service"
	"github.com/MKhiriev/go-echo-feed/models"
)

const refreshInterval = 200 * time.Millisecond

type focusPane int

const (
	focusBeliefs focusPane = iota
	focusFeed
)

type mainLoopModel struct {
	ctx       context.Context
	engine    service.SyncEngine
	buildInfo models.AppBuildInfo

	view     models.RoundView
	focus    focusPane
	issueIdx int
	feed     table.Model
	sending  submitSpinner

	overlay       *service.Notice
	showBuildInfo bool
	refreshing    bool
	status        string
	errMsg        string
}

func newMainLoopModel(ctx context.Context, engine service.SyncEngine, buildInfo models.AppBuildInfo) mainLoopModel {
	m := mainLoopModel{
		ctx:       ctx,
		engine:    engine,
		buildInfo: buildInfo,
		feed:      newFeedTable(),
		sending:   newSubmitSpinner(),
	}
	m.reload()
	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(cmdRefresh(), cmdWaitNotice(m.engine.Notices()), m.sending.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.reload()
		return m, cmdRefresh()
	case noticeMsg:
		m.applyNotice(service.Notice(msg))
		return m, cmdWaitNotice(m.engine.Notices())
	case tickDoneMsg:
		m.refreshing = false
		m.reload()
		m.status = "Обновлено"
		return m, cmdClearStatus()
	case copiedMsg:
		m.status = "Ключ скопирован"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		m.feed.SetWidth(msg.Width - 4)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sending.spinner, cmd = m.sending.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m mainLoopModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.tab):
		m.switchFocus()
	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.down):
		m.moveCursor(1)
	case key.Matches(msg, keys.left):
		m.report(m.change(-1))
	case key.Matches(msg, keys.right):
		m.report(m.change(1))
	case key.Matches(msg, keys.ready):
		m.report(m.engine.ToggleReady())
	case key.Matches(msg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.status = "Обновление..."
		return m, m.cmdTickNow()
	case key.Matches(msg, keys.copy):
		if m.view.APIKey == "" {
			m.status = "Нет ключа"
			return m, nil
		}
		return m, cmdCopyToClipboard(m.view.APIKey)
	default:
		return m, nil
	}

	m.reload()
	return m, nil
}

// change edits the item under the cursor. On the belief pane dir < 0 picks
// the label shown on the left and dir > 0 the one on the right; on the feed
// pane dir > 0 cycles the slot action and dir < 0 clears it.
func (m *mainLoopModel) change(dir int) error {
	switch m.focus {
	case focusBeliefs:
		if m.issueIdx >= len(m.view.Swapped) {
			return service.ErrInvalidInput
		}
		left, right := presentedPoles(m.view.Swapped[m.issueIdx])
		if dir < 0 {
			return m.engine.SetBelief(m.issueIdx, left)
		}
		return m.engine.SetBelief(m.issueIdx, right)
	default:
		slot := m.feed.Cursor()
		if dir < 0 {
			return m.engine.SetAction(slot, models.ActionNone)
		}
		return m.engine.CycleAction(slot)
	}
}

func (m *mainLoopModel) report(err error) {
	switch {
	case err == nil:
		m.errMsg = ""
	case errors.Is(err, service.ErrInvalidInput) && len(m.view.Belief) == 0:
		m.errMsg = "Данные раунда ещё не получены"
	default:
		m.errMsg = err.Error()
	}
}

func (m *mainLoopModel) switchFocus() {
	if m.focus == focusBeliefs {
		m.focus = focusFeed
		m.feed.Focus()
		return
	}
	m.focus = focusBeliefs
	m.feed.Blur()
}

func (m *mainLoopModel) moveCursor(delta int) {
	if m.focus == focusFeed {
		if delta < 0 {
			m.feed.MoveUp(-delta)
		} else {
			m.feed.MoveDown(delta)
		}
		return
	}

	m.issueIdx = clamp(m.issueIdx+delta, len(m.view.Issues))
}

// reload pulls a fresh view from the engine.
func (m *mainLoopModel) reload() {
	m.view = m.engine.View()
	m.issueIdx = clamp(m.issueIdx, len(m.view.Issues))
	syncFeedTable(&m.feed, m.view)
}

func (m *mainLoopModel) applyNotice(n service.Notice) {
	if n.Blocking() {
		m.overlay = &n
		return
	}

	switch n.Kind {
	case service.NoticeSubmitted:
		m.status = fmt.Sprintf("Отправлено (шаг %d)", n.Step)
		m.errMsg = ""
	case service.NoticeSessionError:
		m.errMsg = humanizeServerUnavailableError(n.Err)
	}
}

func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return renderNoticeOverlay(*m.overlay)
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.view)
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.view))
	b.WriteString("\n\n")
	b.WriteString(renderBeliefs(m.view, m.issueIdx, m.focus == focusBeliefs))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Лента"))
	b.WriteString("\n")
	b.WriteString(m.feed.View())
	b.WriteString("\n\n")
	b.WriteString(m.sending.render(m.view))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	}

	return renderPage("ECHO FEED", b.String(),
		"tab: панель │ ↑/↓: выбор │ ←/→: изменить │ пробел: готов │ r: обновить │ c: копировать ключ │ v: версия │ q: выход")
}

func (m mainLoopModel) cmdTickNow() tea.Cmd {
	ctx := m.ctx
	engine := m.engine
	return func() tea.Msg {
		engine.Tick(ctx)
		return tickDoneMsg{}
	}
}

func cmdRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

func cmdWaitNotice(notices <-chan service.Notice) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-notices
		if !ok {
			return nil
		}
		return noticeMsg(n)
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// presentedPoles returns the poles of the labels shown on the left and on
// the right for an issue.
func presentedPoles(swapped bool) (left, right int) {
	if swapped {
		return models.PoleSecond, models.PoleFirst
	}
	return models.PoleFirst, models.PoleSecond
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
