// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-echo-feed/internal/service"
	"github.com/MKhiriev/go-echo-feed/models"
)

// stubEngine: минимальный SyncEngine для проверки обработки клавиш
type stubEngine struct {
	service.SyncEngine

	view    models.RoundView
	notices chan service.Notice
	calls   []string
	err     error
}

func (s *stubEngine) View() models.RoundView         { return s.view }
func (s *stubEngine) Notices() <-chan service.Notice { return s.notices }
func (s *stubEngine) Tick(context.Context)           { s.calls = append(s.calls, "tick") }

func (s *stubEngine) SetBelief(issue, pole int) error {
	if s.err != nil {
		return s.err
	}
	s.view.Belief[issue] = pole
	s.calls = append(s.calls, "belief")
	return nil
}

func (s *stubEngine) CycleAction(slot int) error {
	s.view.Actions[slot] = models.ActionFollow
	s.calls = append(s.calls, "cycle")
	return nil
}

func (s *stubEngine) SetAction(slot int, a models.Action) error {
	s.view.Actions[slot] = a
	s.calls = append(s.calls, "set-action")
	return nil
}

func (s *stubEngine) ToggleReady() error {
	if s.err != nil {
		return s.err
	}
	s.view.Ready = !s.view.Ready
	s.calls = append(s.calls, "ready")
	return nil
}

func roundView() models.RoundView {
	return models.RoundView{
		APIKey:     "abc",
		Phase:      models.PhaseCollecting,
		Step:       3,
		Issues:     []models.Issue{{"red", "blue"}, {"cat", "dog"}},
		OutDegree:  2,
		Belief:     []int{-1, 1},
		Swapped:    []bool{false, true},
		Actions:    []models.Action{models.ActionNone, models.ActionNone},
		Feed:       []models.FeedMessage{{User: "ann", Post: []int{1, -1}, Metric: 4, MetricName: models.MetricViews}},
		Likes:      5,
		LikeChange: -2,
		ReadyCount: 1,
		Size:       4,
	}
}

func newTestModel(view models.RoundView) (mainLoopModel, *stubEngine) {
	engine := &stubEngine{view: view, notices: make(chan service.Notice, 1)}
	return newMainLoopModel(context.Background(), engine, models.NewAppBuildInfo("1.0", "", "")), engine
}

func press(m mainLoopModel, keys ...tea.KeyMsg) (mainLoopModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(mainLoopModel)
	}
	return m, cmd
}

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMainLoop_BeliefFollowsPresentationOrder(t *testing.T) {
	m, engine := newTestModel(roundView())

	// первый вопрос не переставлен: справа второй ярлык (+1)
	m, _ = press(m, keyRight)
	assert.Equal(t, 1, engine.view.Belief[0])

	// второй вопрос переставлен: слева показан второй ярлык (+1)
	m, _ = press(m, keyDown, keyRight)
	assert.Equal(t, -1, engine.view.Belief[1])
	m, _ = press(m, keyLeft)
	assert.Equal(t, 1, engine.view.Belief[1])
	assert.Equal(t, 1, m.issueIdx)
}

func TestMainLoop_FeedActions(t *testing.T) {
	m, engine := newTestModel(roundView())

	m, _ = press(m, keyTab)
	assert.Equal(t, focusFeed, m.focus)

	m, _ = press(m, keyDown, keyRight)
	assert.Equal(t, models.ActionFollow, engine.view.Actions[1])

	_, _ = press(m, keyLeft)
	assert.Equal(t, models.ActionNone, engine.view.Actions[1])
	assert.Equal(t, []string{"cycle", "set-action"}, engine.calls)
}

func TestMainLoop_ReadyToggle(t *testing.T) {
	m, engine := newTestModel(roundView())

	m, _ = press(m, keySpace)
	assert.True(t, engine.view.Ready)
	assert.True(t, m.view.Ready)
}

func TestMainLoop_InputErrorShown(t *testing.T) {
	view := roundView()
	view.Belief, view.Swapped, view.Issues = nil, nil, nil
	m, engine := newTestModel(view)
	engine.err = service.ErrInvalidInput

	m, _ = press(m, keySpace)
	assert.Equal(t, "Данные раунда ещё не получены", m.errMsg)

	m, _ = press(m, keyRight)
	assert.Equal(t, "Данные раунда ещё не получены", m.errMsg)
}

func TestMainLoop_BlockingNoticeOverlay(t *testing.T) {
	m, _ := newTestModel(roundView())

	next, cmd := m.Update(noticeMsg(service.Notice{Kind: service.NoticeSubmissionFailed, Step: 3, Err: errors.New("roundClosed")}))
	m = next.(mainLoopModel)
	require.NotNil(t, m.overlay)
	assert.NotNil(t, cmd, "must keep listening for notices")
	assert.Contains(t, m.View(), "Ответ за шаг 3 не отправлен")

	// клавиши, кроме enter/esc, игнорируются
	m, _ = press(m, keySpace)
	assert.NotNil(t, m.overlay)

	m, _ = press(m, keyEnter)
	assert.Nil(t, m.overlay)
}

func TestMainLoop_NonBlockingNotices(t *testing.T) {
	m, _ := newTestModel(roundView())

	next, _ := m.Update(noticeMsg(service.Notice{Kind: service.NoticeSubmitted, Step: 3}))
	m = next.(mainLoopModel)
	assert.Nil(t, m.overlay)
	assert.Equal(t, "Отправлено (шаг 3)", m.status)

	next, _ = m.Update(noticeMsg(service.Notice{Kind: service.NoticeSessionError, Err: service.ErrNoAPIKeyAvailable}))
	m = next.(mainLoopModel)
	assert.Equal(t, "Свободных мест в игре нет, попробуйте позже", m.errMsg)
}

func TestMainLoop_RefreshReloadsView(t *testing.T) {
	m, engine := newTestModel(roundView())
	engine.view.Step = 4
	engine.view.Feed = append(engine.view.Feed, models.FeedMessage{User: "bob", Post: []int{-1, -1}, Metric: 1})

	next, cmd := m.Update(refreshMsg{})
	m = next.(mainLoopModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, 4, m.view.Step)
	assert.Len(t, m.feed.Rows(), 2)
	assert.Equal(t, "bob", m.feed.Rows()[1][1])
	assert.Equal(t, "blue cat", m.feed.Rows()[0][2])
}

func TestMainLoop_ManualRefresh(t *testing.T) {
	m, engine := newTestModel(roundView())

	m, cmd := press(m, runeKey('r'))
	require.NotNil(t, cmd)
	assert.True(t, m.refreshing)

	msg := cmd()
	assert.IsType(t, tickDoneMsg{}, msg)
	assert.Equal(t, []string{"tick"}, engine.calls)

	next, _ := m.Update(msg)
	assert.False(t, next.(mainLoopModel).refreshing)
}

func TestMainLoop_CopyWithoutKey(t *testing.T) {
	view := roundView()
	view.APIKey = ""
	m, _ := newTestModel(view)

	m, cmd := press(m, runeKey('c'))
	assert.Nil(t, cmd)
	assert.Equal(t, "Нет ключа", m.status)
}

func TestMainLoop_Quit(t *testing.T) {
	m, _ := newTestModel(roundView())
	_, cmd := press(m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_BuildInfo(t *testing.T) {
	m, _ := newTestModel(roundView())
	m, _ = press(m, runeKey('v'))
	view := m.View()
	assert.Contains(t, view, "Название приложения: go-echo-feed")
	assert.Contains(t, view, "Версия: 1.0")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestRenderHeader(t *testing.T) {
	view := roundView()
	view.TimeRemaining = 75 * time.Second
	view.Team = &models.Team{"Owls", "#ff0000"}

	header := renderHeader(view)
	assert.Contains(t, header, "Шаг: 3")
	assert.Contains(t, header, "Осталось: 01:15")
	assert.Contains(t, header, "Лайки: 5 (-2)")
	assert.Contains(t, header, "Готовы: 1/4")
	assert.Contains(t, header, "Owls")
	assert.Contains(t, header, "Ключ: abc")
	assert.Contains(t, header, "Статус: ввод")
}

func TestPhaseLabel(t *testing.T) {
	assert.Equal(t, "нет сессии", phaseLabel(models.RoundView{}))
	assert.Equal(t, "ключ недействителен", phaseLabel(models.RoundView{Phase: models.PhaseInvalid}))
	assert.Equal(t, "отправлено", phaseLabel(models.RoundView{APIKey: "k", Phase: models.PhaseSubmitted}))
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "-", formatRemaining(0))
	assert.Equal(t, "00:09", formatRemaining(9400*time.Millisecond))
	assert.Equal(t, "10:00", formatRemaining(10*time.Minute))
}

func TestSyncFeedTable_EmptySlots(t *testing.T) {
	table := newFeedTable()
	view := roundView()
	view.Feed = nil
	view.Actions = []models.Action{models.ActionUnfollow, models.ActionNone, models.ActionNone}

	syncFeedTable(&table, view)
	rows := table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "-", rows[0][1])
	assert.Equal(t, "отписаться", rows[0][4])
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "при...", fitText("привет мир", 6))
}

func TestKeyPrompt(t *testing.T) {
	m := newKeyPromptModel()
	for _, r := range " k-1 " {
		next, _ := m.Update(runeKey(r))
		m = next.(keyPromptModel)
	}

	next, cmd := m.Update(keyEnter)
	m = next.(keyPromptModel)
	require.NotNil(t, cmd)
	assert.False(t, m.quit)
	assert.Equal(t, "k-1", m.value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(keyPromptModel).quit)
}

func TestRenderBuildInfoWindow(t *testing.T) {
	info := models.NewAppBuildInfo("v0.3.1", "", "")

	out := renderBuildInfoWindow(info, models.RoundView{APIKey: "abc", LastSubmittedStep: 4})
	assert.Contains(t, out, "v0.3.1")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "шаг 4")

	out = renderBuildInfoWindow(info, models.RoundView{LastSubmittedStep: -1})
	assert.Contains(t, out, "Последняя отправка: -")
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "no keys left", err: fmt.Errorf("%w: %w", service.ErrSession, service.ErrNoAPIKeyAvailable), want: "Свободных мест в игре нет, попробуйте позже"},
		{name: "key revoked", err: service.ErrSessionInvalid, want: "Ключ больше не действителен, получаем новый"},
		{name: "deadline", err: fmt.Errorf("get state: %w", context.DeadlineExceeded), want: "Отсутствует сеть или сервер недоступен"},
		{name: "refused as text", err: errors.New("dial tcp 127.0.0.1:5000: connect: connection refused"), want: "Отсутствует сеть или сервер недоступен"},
		{name: "provider down", err: service.ErrProviderUnavailable, want: "Сервер недоступен"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeServerUnavailableError(tt.err))
		})
	}
}
