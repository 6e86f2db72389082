// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-abroad-journal/models"
)

const detailHotKeys = "e: 編集 │ d: 削除 │ c: 本文コピー │ y: 添削コピー │ esc: 戻る"

type detailModel struct {
	entry models.DiaryEntry
}

func locationLabel(location *models.Location) string {
	if location == nil {
		return "-"
	}
	return location.Address
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("日付      │ %s\n", valueOrDash(m.entry.Date)))
	b.WriteString(fmt.Sprintf("カテゴリ  │ %s\n", models.CategoryLabel(m.entry.Category)))
	b.WriteString(fmt.Sprintf("位置情報  │ %s\n", locationLabel(m.entry.Location)))
	b.WriteString(fmt.Sprintf("作成日時  │ %s\n", formatTimestamp(m.entry.CreatedAt)))
	b.WriteString(fmt.Sprintf("更新日時  │ %s\n", formatTimestamp(m.entry.UpdatedAt)))
	b.WriteString("\n")
	b.WriteString(valueOrDash(m.entry.Content))
	b.WriteString("\n")

	if m.entry.AICorrection != "" {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("AI添削"))
		b.WriteString("\n")
		b.WriteString(m.entry.AICorrection)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
