// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

func renderCalendar() string {
	return "カレンダー表示は準備中です"
}
