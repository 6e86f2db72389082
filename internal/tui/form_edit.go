// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-abroad-journal/models"
)

const (
	editTitle = iota
	editCategory
	editContent
	editFields
)

// editModel edits the title, category and content of an existing entry.
type editModel struct {
	original models.DiaryEntry

	title    textinput.Model
	content  textarea.Model
	category int
	focus    int

	submitting bool
}

func newEditModel(entry models.DiaryEntry) editModel {
	title := textinput.New()
	title.CharLimit = 100
	title.Width = 40
	title.SetValue(entry.Title)

	content := textarea.New()
	content.ShowLineNumbers = false
	content.SetWidth(60)
	content.SetHeight(6)
	content.SetValue(entry.Content)

	category := models.CategoryIndex(entry.Category)
	if category < 0 {
		category = 0
	}

	m := editModel{
		original: entry,
		title:    title,
		content:  content,
		category: category,
	}
	m.setFocus(editTitle)
	return m
}

func (m *editModel) setFocus(field int) {
	m.title.Blur()
	m.content.Blur()

	m.focus = (field + editFields) % editFields
	switch m.focus {
	case editTitle:
		m.title.Focus()
	case editContent:
		m.content.Focus()
	}
}

func (m *editModel) focusNext() { m.setFocus(m.focus + 1) }
func (m *editModel) focusPrev() { m.setFocus(m.focus - 1) }

// patch holds only the fields that differ from the original entry.
func (m editModel) patch() (models.EntryPatch, error) {
	title := strings.TrimSpace(m.title.Value())
	content := m.content.Value()
	category := models.Categories[m.category].ID

	full := models.EntryPatch{Title: &title, Content: &content, Category: &category}
	if err := entryValidator.Validate(context.Background(), full); err != nil {
		return models.EntryPatch{}, localizeValidation(err)
	}

	var patch models.EntryPatch
	if title != m.original.Title {
		patch.Title = &title
	}
	if content != m.original.Content {
		patch.Content = &content
	}
	if category != m.original.Category {
		patch.Category = &category
	}
	return patch, nil
}

func (m editModel) update(msg tea.Msg) (editModel, tea.Cmd) {
	if m.focus == editCategory {
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
	case editTitle:
		m.title, cmd = m.title.Update(msg)
	case editContent:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m editModel) View() string {
	var b strings.Builder

	b.WriteString("タイトル  │ [" + m.title.View() + "]\n")
	b.WriteString("カテゴリ  │ " + renderCategorySelector(m.category, m.focus == editCategory) + "\n")
	b.WriteString("本文\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[保存中...]\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
