// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-abroad-journal/internal/store"
	"github.com/MKhiriev/go-abroad-journal/models"
)

const unknownMonthLabel = "日付不明"

// entryGroup is one month heading of the list with the entries under it.
type entryGroup struct {
	label   string
	entries []models.DiaryEntry
}

// monthLabel renders the year-month of an entry date, e.g. "2024年4月".
func monthLabel(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return unknownMonthLabel
	}
	return fmt.Sprintf("%d年%d月", t.Year(), int(t.Month()))
}

// dayLabel renders the day of an entry date, e.g. "1日".
func dayLabel(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%d日", t.Day())
}

// groupByMonth groups entries by month. Groups appear in the order their
// first entry appears and entries keep their relative order.
func groupByMonth(entries []models.DiaryEntry) []entryGroup {
	var groups []entryGroup
	index := make(map[string]int)

	for _, entry := range entries {
		label := monthLabel(entry.Date)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, entryGroup{label: label})
		}
		groups[i].entries = append(groups[i].entries, entry)
	}

	return groups
}

type listModel struct {
	groups []entryGroup
	// flat is the display order; the cursor indexes into it.
	flat  []models.DiaryEntry
	idx   int
	state store.CollectionState
}

func (m *listModel) setEntries(entries []models.DiaryEntry, state store.CollectionState) {
	m.state = state
	m.groups = groupByMonth(entries)
	m.flat = make([]models.DiaryEntry, 0, len(entries))
	for _, group := range m.groups {
		m.flat = append(m.flat, group.entries...)
	}

	if m.idx >= len(m.flat) {
		m.idx = len(m.flat) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current() (models.DiaryEntry, bool) {
	if len(m.flat) == 0 || m.idx < 0 || m.idx >= len(m.flat) {
		return models.DiaryEntry{}, false
	}
	return m.flat[m.idx], true
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.flat)-1 {
		m.idx++
	}
}

func (m listModel) View() string {
	if m.state == store.StateLoading && len(m.flat) == 0 {
		return "読み込み中..."
	}
	if len(m.flat) == 0 {
		return "まだ日記がありません"
	}

	var b strings.Builder
	if m.state == store.StateLoading {
		b.WriteString(helpStyle.Render("更新中..."))
		b.WriteString("\n\n")
	}

	pos := 0
	for gi, group := range m.groups {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString(groupHeaderStyle.Render(group.label))
		b.WriteString("\n")

		for _, entry := range group.entries {
			cursor := " "
			if pos == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-4s %s %s\n",
				cursor,
				dayLabel(entry.Date),
				categoryStyle.Render("["+models.CategoryLabel(entry.Category)+"]"),
				fitText(entry.Title, 40),
			))
			if preview := strings.TrimSpace(firstLine(entry.Content)); preview != "" {
				b.WriteString("       ")
				b.WriteString(helpStyle.Render(fitText(preview, 60)))
				b.WriteString("\n")
			}
			pos++
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
