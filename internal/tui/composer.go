// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-abroad-journal/internal/validators"
	"github.com/MKhiriev/go-abroad-journal/models"
)

const (
	composerTitle = iota
	composerDate
	composerCategory
	composerContent
	composerLatitude
	composerLongitude
	composerFields
)

var (
	errTitleRequired   = errors.New("タイトルを入力してください")
	errContentRequired = errors.New("本文を入力してください")
	errInvalidDate     = errors.New("日付は YYYY-MM-DD 形式で入力してください")
	errPartialLocation = errors.New("緯度と経度は両方入力するか、両方空にしてください")
	errInvalidLocation = errors.New("緯度は -90〜90、経度は -180〜180 の数値で入力してください")
)

var entryValidator = validators.NewEntryValidator()

// localizeValidation turns a validator error into the message shown in the
// form. Unknown errors pass through.
func localizeValidation(err error) error {
	switch {
	case errors.Is(err, validators.ErrEmptyTitle):
		return errTitleRequired
	case errors.Is(err, validators.ErrEmptyContent):
		return errContentRequired
	case errors.Is(err, validators.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, validators.ErrInvalidLatitude), errors.Is(err, validators.ErrInvalidLongitude):
		return errInvalidLocation
	default:
		return err
	}
}

// composerModel is the new-entry form of the Home view.
type composerModel struct {
	title     textinput.Model
	date      textinput.Model
	latitude  textinput.Model
	longitude textinput.Model
	content   textarea.Model
	category  int
	focus     int

	submitting bool
	correcting bool
	correction *models.Correction
}

func newComposerModel(today time.Time) composerModel {
	title := textinput.New()
	title.Placeholder = "タイトル"
	title.CharLimit = 100
	title.Width = 40
	title.Focus()

	date := textinput.New()
	date.Placeholder = models.DateLayout
	date.CharLimit = len(models.DateLayout)
	date.Width = 12

	latitude := textinput.New()
	latitude.Placeholder = "35.681236"
	latitude.Width = 14

	longitude := textinput.New()
	longitude.Placeholder = "139.767125"
	longitude.Width = 14

	content := textarea.New()
	content.Placeholder = "今日の体験を書いてください..."
	content.ShowLineNumbers = false
	content.SetWidth(60)
	content.SetHeight(6)

	m := composerModel{
		title:     title,
		date:      date,
		latitude:  latitude,
		longitude: longitude,
		content:   content,
	}
	m.reset(today)
	return m
}

// reset clears the form; the date goes back to today.
func (m *composerModel) reset(today time.Time) {
	m.title.SetValue("")
	m.date.SetValue(today.Format(models.DateLayout))
	m.latitude.SetValue("")
	m.longitude.SetValue("")
	m.content.SetValue("")
	m.category = 0
	m.submitting = false
	m.correcting = false
	m.correction = nil
	m.setFocus(composerTitle)
}

func (m *composerModel) setFocus(field int) {
	m.title.Blur()
	m.date.Blur()
	m.latitude.Blur()
	m.longitude.Blur()
	m.content.Blur()

	m.focus = (field + composerFields) % composerFields
	switch m.focus {
	case composerTitle:
		m.title.Focus()
	case composerDate:
		m.date.Focus()
	case composerContent:
		m.content.Focus()
	case composerLatitude:
		m.latitude.Focus()
	case composerLongitude:
		m.longitude.Focus()
	}
}

func (m *composerModel) focusNext() { m.setFocus(m.focus + 1) }
func (m *composerModel) focusPrev() { m.setFocus(m.focus - 1) }

func (m composerModel) categoryID() string {
	return models.Categories[m.category].ID
}

// text is the content submitted for correction.
func (m composerModel) text() string {
	return m.content.Value()
}

// applyCorrection replaces the content with the corrected text.
func (m *composerModel) applyCorrection() bool {
	if m.correction == nil || m.correction.CorrectedText == "" {
		return false
	}
	m.content.SetValue(m.correction.CorrectedText)
	return true
}

// draft validates the form.
func (m composerModel) draft() (models.EntryDraft, error) {
	location, err := parseLocation(m.latitude.Value(), m.longitude.Value())
	if err != nil {
		return models.EntryDraft{}, err
	}

	draft := models.EntryDraft{
		Title:    strings.TrimSpace(m.title.Value()),
		Content:  m.content.Value(),
		Date:     strings.TrimSpace(m.date.Value()),
		Category: m.categoryID(),
		Location: location,
	}
	if err = entryValidator.Validate(context.Background(), draft); err != nil {
		return models.EntryDraft{}, localizeValidation(err)
	}

	return draft, nil
}

// parseLocation returns nil when both coordinates are blank.
func parseLocation(latitude, longitude string) (*models.Location, error) {
	latitude, longitude = strings.TrimSpace(latitude), strings.TrimSpace(longitude)
	if latitude == "" && longitude == "" {
		return nil, nil
	}
	if latitude == "" || longitude == "" {
		return nil, errPartialLocation
	}

	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil {
		return nil, errInvalidLocation
	}
	lon, err := strconv.ParseFloat(longitude, 64)
	if err != nil {
		return nil, errInvalidLocation
	}

	location := models.NewLocation(lat, lon)
	if err = entryValidator.Validate(context.Background(), location); err != nil {
		return nil, localizeValidation(err)
	}
	return location, nil
}

// update forwards msg to the focused field. Category selection is handled
// here since it is not a bubbles widget.
func (m composerModel) update(msg tea.Msg) (composerModel, tea.Cmd) {
	if m.focus == composerCategory {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "left", "h":
				m.category = (m.category - 1 + len(models.Categories)) % len(models.Categories)
			case "right", "l", " ":
				m.category = (m.category + 1) % len(models.Categories)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case composerTitle:
		m.title, cmd = m.title.Update(msg)
	case composerDate:
		m.date, cmd = m.date.Update(msg)
	case composerContent:
		m.content, cmd = m.content.Update(msg)
	case composerLatitude:
		m.latitude, cmd = m.latitude.Update(msg)
	case composerLongitude:
		m.longitude, cmd = m.longitude.Update(msg)
	}
	return m, cmd
}

func renderCategorySelector(selected int, focused bool) string {
	var b strings.Builder
	for i, c := range models.Categories {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == selected {
			b.WriteString(activeTabStyle.Render("<" + c.Label + ">"))
			continue
		}
		b.WriteString(c.Label)
	}
	if focused {
		b.WriteString(helpStyle.Render("  ←/→"))
	}
	return b.String()
}

func (m composerModel) View() string {
	var b strings.Builder

	b.WriteString("タイトル  │ [" + m.title.View() + "]\n")
	b.WriteString("日付      │ [" + m.date.View() + "]\n")
	b.WriteString("カテゴリ  │ " + renderCategorySelector(m.category, m.focus == composerCategory) + "\n")
	b.WriteString("本文\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")
	b.WriteString("緯度      │ [" + m.latitude.View() + "]  任意\n")
	b.WriteString("経度      │ [" + m.longitude.View() + "]  任意\n")

	switch {
	case m.submitting:
		b.WriteString("\n[投稿中...]\n")
	case m.correcting:
		b.WriteString("\n[AI添削中...]\n")
	}

	if m.correction != nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("AI添削結果"))
		b.WriteString("\n")
		b.WriteString(m.correction.CorrectedText)
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("%s\n", m.correction.Feedback))
	}

	return strings.TrimRight(b.String(), "\n")
}
