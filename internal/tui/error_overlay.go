// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("エラー") + "\n\n" + m.message + "\n\nenter / esc: 閉じる"
	return overlayBoxStyle.Render(content)
}
