// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-abroad-journal/internal/adapter"
	"github.com/MKhiriev/go-abroad-journal/internal/logger"
	"github.com/MKhiriev/go-abroad-journal/internal/mock"
	"github.com/MKhiriev/go-abroad-journal/internal/session"
	"github.com/MKhiriev/go-abroad-journal/internal/store"
	"github.com/MKhiriev/go-abroad-journal/internal/view"
	"github.com/MKhiriev/go-abroad-journal/models"
)

type mainLoopFixture struct {
	model      mainLoopModel
	diary      *mock.MockClientDiaryService
	correction *mock.MockClientCorrectionService
	views      *view.Controller
	entries    []models.DiaryEntry
}

func newMainLoopFixture(t *testing.T) *mainLoopFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &mainLoopFixture{
		diary:      mock.NewMockClientDiaryService(ctrl),
		correction: mock.NewMockClientCorrectionService(ctrl),
		views:      view.NewController(),
		entries: []models.DiaryEntry{
			{ID: "7", Title: "Day 1", Content: "hello", Date: "2024-04-01", Category: "2"},
		},
	}
	f.diary.EXPECT().Entries().DoAndReturn(func() []models.DiaryEntry { return f.entries }).AnyTimes()
	f.diary.EXPECT().State().Return(store.StateReady).AnyTimes()

	sess := session.New(models.User{UserID: 1, Email: "a@b.c"}, f.diary, f.correction)
	m, err := newMainLoopModel(context.Background(), sess, f.views, logger.Nop())
	require.NoError(t, err)
	m.now = func() time.Time { return today }
	m.composer = newComposerModel(today)
	f.model = m

	return f
}

// send feeds msg to the model and returns the command it produced.
func (f *mainLoopFixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	model, ok := next.(mainLoopModel)
	require.True(t, ok)
	f.model = model
	return cmd
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMainLoop_ClosedSession(t *testing.T) {
	sess := session.New(models.User{}, nil, nil)
	sess.End()

	_, err := newMainLoopModel(context.Background(), sess, view.NewController(), logger.Nop())
	assert.ErrorIs(t, err, session.ErrSessionClosed)
}

func TestMainLoop_ViewSwitching(t *testing.T) {
	f := newMainLoopFixture(t)
	assert.Equal(t, view.Home, f.views.Active())

	f.send(t, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, view.Home, f.views.Active(), "tab moves between composer fields")
	assert.Equal(t, composerDate, f.model.composer.focus)

	f.send(t, tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, view.List, f.views.Active())

	f.send(t, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, view.Calendar, f.views.Active())
	assert.Contains(t, f.model.View(), "カレンダー表示は準備中です")

	f.send(t, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, view.List, f.views.Active())

	f.send(t, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, view.Home, f.views.Active())
}

func TestMainLoop_Load(t *testing.T) {
	f := newMainLoopFixture(t)
	f.diary.EXPECT().Load(gomock.Any()).Return(nil)

	msg := f.model.cmdLoad()()
	f.entries = append([]models.DiaryEntry{{ID: "8", Title: "Day 2", Date: "2024-04-02"}}, f.entries...)
	f.send(t, msg)

	require.Len(t, f.model.list.flat, 2)
	assert.Equal(t, "8", f.model.list.flat[0].ID)
	assert.False(t, f.model.showError)
}

func TestMainLoop_LoadErrorIsShown(t *testing.T) {
	f := newMainLoopFixture(t)

	f.send(t, entriesLoadedMsg{err: adapter.ErrInternalServerError})
	assert.True(t, f.model.showError)
	assert.Len(t, f.model.list.flat, 1, "entries are kept")

	f.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, f.model.showError)
}

func TestMainLoop_Create(t *testing.T) {
	f := newMainLoopFixture(t)
	f.model.composer.title.SetValue("Day 2")
	f.model.composer.content.SetValue("world")

	created := models.DiaryEntry{ID: "8", Title: "Day 2", Content: "world", Date: "2024-04-02", Category: "0"}
	f.diary.EXPECT().Create(gomock.Any(), models.EntryDraft{
		Title: "Day 2", Content: "world", Date: "2024-04-02", Category: "0",
	}).Return(created, nil)

	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, f.model.composer.submitting)

	f.send(t, cmd())

	assert.False(t, f.model.composer.submitting)
	assert.Empty(t, f.model.composer.title.Value(), "composer is reset")
	assert.Contains(t, f.model.status, "Day 2")
}

func TestMainLoop_CreateValidation(t *testing.T) {
	f := newMainLoopFixture(t)

	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.True(t, f.model.showError)
	assert.Equal(t, errTitleRequired.Error(), f.model.errorOverlay.message)
}

func TestMainLoop_Correction(t *testing.T) {
	f := newMainLoopFixture(t)
	f.model.composer.content.SetValue("i goes")

	f.correction.EXPECT().Correct(gomock.Any(), "i goes").
		Return(models.Correction{CorrectedText: "I go.", Feedback: "- verb"}, nil)

	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	f.send(t, cmd())

	require.NotNil(t, f.model.composer.correction)
	assert.Equal(t, "I go.", f.model.composer.correction.CorrectedText)
	assert.Contains(t, f.model.View(), "- verb")

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlA})
	assert.Equal(t, "I go.", f.model.composer.text())
}

func TestMainLoop_CorrectionError(t *testing.T) {
	f := newMainLoopFixture(t)

	f.correction.EXPECT().Correct(gomock.Any(), "").Return(models.Correction{}, errors.New("empty"))

	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyCtrlR})
	f.send(t, cmd())

	assert.False(t, f.model.composer.correcting)
	assert.True(t, f.model.showError)
}

func TestMainLoop_DeleteAsksThenReloads(t *testing.T) {
	f := newMainLoopFixture(t)
	f.views.Select(view.List)

	assert.Nil(t, f.send(t, runeKey("d")))
	require.True(t, f.model.showConfirm)
	assert.Contains(t, f.model.View(), "Day 1")

	f.diary.EXPECT().Delete(gomock.Any(), "7").Return("deleted", nil)

	cmd := f.send(t, runeKey("y"))
	require.NotNil(t, cmd)
	assert.False(t, f.model.showConfirm)

	reload := f.send(t, cmd())
	assert.NotNil(t, reload)
	assert.Equal(t, "deleted", f.model.status)
	assert.Equal(t, store.StateLoading, f.model.list.state, "a reload was started")
}

func TestMainLoop_DeleteCancelled(t *testing.T) {
	f := newMainLoopFixture(t)
	f.views.Select(view.List)

	f.send(t, runeKey("d"))
	f.send(t, runeKey("n"))

	assert.False(t, f.model.showConfirm)
	assert.Empty(t, f.model.pendingDelete)
}

func TestMainLoop_DetailAndEdit(t *testing.T) {
	f := newMainLoopFixture(t)
	f.views.Select(view.List)

	f.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDetail, f.model.screen)
	assert.Equal(t, "7", f.model.detail.entry.ID)

	f.send(t, runeKey("e"))
	require.Equal(t, screenEdit, f.model.screen)

	f.model.edit.title.SetValue("Day 1 (edited)")
	edited := f.entries[0]
	edited.Title = "Day 1 (edited)"

	f.diary.EXPECT().Update(gomock.Any(), "7", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, patch models.EntryPatch) (models.DiaryEntry, error) {
			require.NotNil(t, patch.Title)
			assert.Equal(t, "Day 1 (edited)", *patch.Title)
			assert.Nil(t, patch.Content)
			return edited, nil
		})

	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	f.send(t, cmd())

	assert.Equal(t, screenDetail, f.model.screen)
	assert.Equal(t, "Day 1 (edited)", f.model.detail.entry.Title)

	f.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenTabs, f.model.screen)
}

func TestMainLoop_EditNotFound(t *testing.T) {
	f := newMainLoopFixture(t)
	f.model.edit = newEditModel(f.entries[0])
	f.model.screen = screenEdit

	f.send(t, entryUpdatedMsg{err: store.ErrEntryNotFound})

	assert.Equal(t, screenEdit, f.model.screen)
	assert.Equal(t, msgEntryNotFound, f.model.errorOverlay.message)
}

func TestMainLoop_Copy(t *testing.T) {
	var copied string
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = clipboard.WriteAll })

	f := newMainLoopFixture(t)
	f.views.Select(view.List)

	cmd := f.send(t, runeKey("c"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, "hello", copied)

	f.send(t, msg)
	assert.Equal(t, "本文をコピーしました", f.model.status)

	f.send(t, runeKey("y"))
	assert.Equal(t, "AI添削はありません", f.model.status)
}

func TestMainLoop_CopyFailure(t *testing.T) {
	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { clipboardWrite = clipboard.WriteAll })

	f := newMainLoopFixture(t)
	f.views.Select(view.List)

	cmd := f.send(t, runeKey("c"))
	f.send(t, cmd())

	assert.True(t, f.model.showError)
}

func TestMainLoop_LogoutAndQuit(t *testing.T) {
	f := newMainLoopFixture(t)
	f.views.Select(view.List)

	cmd := f.send(t, runeKey("l"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, f.model.logout)

	f = newMainLoopFixture(t)
	f.views.Select(view.List)
	cmd = f.send(t, runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, f.model.logout)
}

func TestMainLoop_HomeKeysDoNotQuit(t *testing.T) {
	f := newMainLoopFixture(t)

	f.send(t, runeKey("q"))
	f.send(t, runeKey("l"))

	assert.False(t, f.model.logout)
	assert.Equal(t, "ql", f.model.composer.title.Value())
}

func TestRenderTabs(t *testing.T) {
	out := renderTabs(view.List)
	for _, v := range view.Views {
		assert.Contains(t, out, v.Title())
	}
}
