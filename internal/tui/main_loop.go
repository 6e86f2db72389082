// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/internal/session"
	"github.com/MKhiriev/go-abroad-journal/internal/store"
	"github.com/MKhiriev/go-abroad-journal/internal/view"
	"github.com/MKhiriev/go-abroad-journal/models"
)

type screen int

const (
	screenTabs screen = iota
	screenDetail
	screenEdit
)

const (
	homeHotKeys     = "ctrl+s: 投稿 │ ctrl+r: AI添削 │ ctrl+a: 添削を反映 │ tab: 次の項目 │ f1-f3: 画面切替"
	listHotKeys     = "enter: 開く │ e: 編集 │ d: 削除 │ r: 更新 │ c/y: コピー │ tab: 画面切替 │ l: ログアウト │ q: 終了"
	calendarHotKeys = "tab: 画面切替 │ l: ログアウト │ q: 終了"
	editHotKeys     = "ctrl+s: 保存 │ tab: 次の項目 │ esc: キャンセル"
)

type mainLoopModel struct {
	ctx        context.Context
	user       models.User
	diary      service.ClientDiaryService
	correction service.ClientCorrectionService
	views      *view.Controller
	logger     *logger.Logger
	now        func() time.Time

	screen   screen
	composer composerModel
	list     listModel
	detail   detailModel
	edit     editModel

	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	logout bool
}

func newMainLoopModel(ctx context.Context, sess *session.Session, views *view.Controller, logger *logger.Logger) (mainLoopModel, error) {
	diary, err := sess.Diary()
	if err != nil {
		return mainLoopModel{}, err
	}
	correction, err := sess.Correction()
	if err != nil {
		return mainLoopModel{}, err
	}

	m := mainLoopModel{
		ctx:        ctx,
		user:       sess.User(),
		diary:      diary,
		correction: correction,
		views:      views,
		logger:     logger,
		now:        time.Now,
	}
	m.composer = newComposerModel(m.now())
	m.list.setEntries(diary.Entries(), diary.State())
	return m, nil
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoad())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDelete(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case entriesLoadedMsg:
		m.refreshList()
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil
	case entryCreatedMsg:
		m.composer.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.composer.reset(m.now())
		m.refreshList()
		return m, m.setStatus("「" + msg.entry.Title + "」を投稿しました")
	case entryUpdatedMsg:
		m.edit.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.detail.entry = msg.entry
		m.screen = screenDetail
		m.refreshList()
		return m, m.setStatus("保存しました")
	case entryDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.screen = screenTabs
		status := msg.message
		if status == "" {
			status = "削除しました"
		}
		return m, tea.Batch(m.setStatus(status), m.cmdLoad())
	case correctionDoneMsg:
		m.composer.correcting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		correction := msg.correction
		m.composer.correction = &correction
		return m, nil
	case copiedMsg:
		return m, m.setStatus(msg.what + "をコピーしました")
	case clipboardFailedMsg:
		m.logger.Err(msg.err).Str("func", "mainLoopModel.Update").Msg("clipboard write failed")
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenEdit:
		return m.updateEdit(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if v, ok := viewForFunctionKey(keyMsg.String()); ok {
			m.views.Select(v)
			return m, nil
		}
	}

	switch m.views.Active() {
	case view.Home:
		return m.updateHome(msg)
	case view.List:
		return m.updateList(msg)
	default:
		return m.updateCalendar(msg)
	}
}

func viewForFunctionKey(k string) (view.View, bool) {
	switch k {
	case "f1":
		return view.Home, true
	case "f2":
		return view.List, true
	case "f3":
		return view.Calendar, true
	}
	return 0, false
}

func (m mainLoopModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.composer.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.composer.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.composer.submitting {
				return m, nil
			}
			draft, err := m.composer.draft()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.composer.submitting = true
			return m, m.cmdCreate(draft)
		case key.Matches(keyMsg, keys.correct):
			if m.composer.correcting {
				return m, nil
			}
			m.composer.correcting = true
			return m, m.cmdCorrect(m.composer.text())
		case key.Matches(keyMsg, keys.apply):
			if m.composer.applyCorrection() {
				return m, m.setStatus("添削結果を本文に反映しました")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.update(msg)
	return m, cmd
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if next, cmd, handled := m.updateTabKeys(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.list.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.list.moveDown()
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.enter):
		if entry, ok := m.list.current(); ok {
			m.detail.entry = entry
			m.screen = screenDetail
		}
	default:
		if entry, ok := m.list.current(); ok {
			return m.entryAction(keyMsg, entry)
		}
	}

	return m, nil
}

func (m mainLoopModel) updateCalendar(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	next, cmd, _ := m.updateTabKeys(keyMsg)
	return next, cmd
}

// updateTabKeys handles the keys shared by the List and Calendar views.
func (m mainLoopModel) updateTabKeys(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(keyMsg, keys.tab):
		m.views.Next()
	case key.Matches(keyMsg, keys.backtab):
		m.views.Prev()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit, true
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit, true
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.screen = screenTabs
		return m, nil
	}
	return m.entryAction(keyMsg, m.detail.entry)
}

// entryAction handles the per-entry keys of the list and detail screens.
func (m mainLoopModel) entryAction(keyMsg tea.KeyMsg, entry models.DiaryEntry) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.edit):
		m.edit = newEditModel(entry)
		m.screen = screenEdit
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.title = entry.Title
		m.pendingDelete = entry.ID
	case key.Matches(keyMsg, keys.copy):
		if strings.TrimSpace(entry.Content) == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(entry.Content, "本文")
	case key.Matches(keyMsg, keys.copyCorrection):
		if strings.TrimSpace(entry.AICorrection) == "" {
			return m, m.setStatus("AI添削はありません")
		}
		return m, cmdCopyToClipboard(entry.AICorrection, "AI添削")
	}
	return m, nil
}

func (m mainLoopModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.edit.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.edit.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.edit.submitting {
				return m, nil
			}
			patch, err := m.edit.patch()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.edit.submitting = true
			return m, m.cmdUpdate(m.edit.original.ID, patch)
		}
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.update(msg)
	return m, cmd
}

func (m mainLoopModel) View() string {
	var title, body, hotKeys string

	switch m.screen {
	case screenDetail:
		title, body, hotKeys = m.detail.entry.Title, m.detail.View(), detailHotKeys
	case screenEdit:
		title, body, hotKeys = "日記を編集", m.edit.View(), editHotKeys
	default:
		title = renderTabs(m.views.Active())
		switch m.views.Active() {
		case view.Home:
			body, hotKeys = m.composer.View(), homeHotKeys
		case view.List:
			body, hotKeys = m.list.View(), listHotKeys
		default:
			body, hotKeys = renderCalendar(), calendarHotKeys
		}
	}

	var header strings.Builder
	header.WriteString(helpStyle.Render(m.userLabel()))
	header.WriteString("\n")
	if m.status != "" {
		header.WriteString(statusStyle.Render(m.status))
	}
	header.WriteString("\n\n")

	out := header.String() + renderPage(title, body, hotKeys)
	if m.showConfirm {
		out += "\n\n" + m.confirm.View()
	}
	if m.showError {
		out += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(out)
}

func (m mainLoopModel) userLabel() string {
	name := m.user.Name
	if name == "" {
		name = m.user.Email
	}
	return name + " さん"
}

func renderTabs(active view.View) string {
	tabs := make([]string, 0, len(view.Views))
	for _, v := range view.Views {
		if v == active {
			tabs = append(tabs, activeTabStyle.Render(v.Title()))
			continue
		}
		tabs = append(tabs, tabStyle.Render(v.Title()))
	}
	return strings.Join(tabs, "│")
}

func (m *mainLoopModel) refreshList() {
	m.list.setEntries(m.diary.Entries(), m.diary.State())
}

func (m *mainLoopModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *mainLoopModel) setStatus(status string) tea.Cmd {
	m.status = status
	return cmdClearStatus()
}

func (m *mainLoopModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	diary := m.diary
	m.list.state = store.StateLoading

	return func() tea.Msg {
		return entriesLoadedMsg{err: diary.Load(ctx)}
	}
}

func (m mainLoopModel) cmdCreate(draft models.EntryDraft) tea.Cmd {
	ctx := m.ctx
	diary := m.diary

	return func() tea.Msg {
		entry, err := diary.Create(ctx, draft)
		return entryCreatedMsg{entry: entry, err: err}
	}
}

func (m mainLoopModel) cmdUpdate(id string, patch models.EntryPatch) tea.Cmd {
	ctx := m.ctx
	diary := m.diary

	return func() tea.Msg {
		entry, err := diary.Update(ctx, id, patch)
		return entryUpdatedMsg{entry: entry, err: err}
	}
}

func (m mainLoopModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	diary := m.diary

	return func() tea.Msg {
		message, err := diary.Delete(ctx, id)
		return entryDeletedMsg{message: message, err: err}
	}
}

func (m mainLoopModel) cmdCorrect(text string) tea.Cmd {
	ctx := m.ctx
	correction := m.correction

	return func() tea.Msg {
		if correction == nil {
			return correctionDoneMsg{err: service.ErrCorrectionDisabled}
		}
		result, err := correction.Correct(ctx, text)
		return correctionDoneMsg{correction: result, err: err}
	}
}
