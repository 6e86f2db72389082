// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	title string
}

func (m confirmModel) View() string {
	content := "「" + m.title + "」を削除しますか？\n\n"
	content += "y: はい    n: いいえ"
	return overlayBoxStyle.Render(content)
}
