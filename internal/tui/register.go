// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-abroad-journal/internal/service"
	"github.com/MKhiriev/go-abroad-journal/models"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerRepeat
)

// RegisterModel is the registration screen. A successful registration
// signs the new account in.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with name, email, password and
// password confirmation inputs.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	fields := make([]textinput.Model, 4)

	fields[registerName] = textinput.New()
	fields[registerName].Placeholder = "name (optional)"
	fields[registerName].Width = 40
	fields[registerName].Focus()

	fields[registerEmail] = textinput.New()
	fields[registerEmail].Placeholder = "email"
	fields[registerEmail].CharLimit = 254
	fields[registerEmail].Width = 40

	fields[registerPassword] = textinput.New()
	fields[registerPassword].Placeholder = "password"
	fields[registerPassword].CharLimit = 72
	fields[registerPassword].EchoMode = textinput.EchoPassword
	fields[registerPassword].EchoCharacter = '*'
	fields[registerPassword].Width = 40

	fields[registerRepeat] = textinput.New()
	fields[registerRepeat].Placeholder = "repeat password"
	fields[registerRepeat].CharLimit = 72
	fields[registerRepeat].EchoMode = textinput.EchoPassword
	fields[registerRepeat].EchoCharacter = '*'
	fields[registerRepeat].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [RegisterResult]: clears the submitting state and shows the error, if any.
//   - esc: back to the menu.
//   - tab, shift+tab: move focus.
//   - enter: validates (email and password required, passwords match) and
//     dispatches the registration.
//
// Other keys go to the focused input.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.resetForm()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.inputs[registerName].Value())
			email := strings.TrimSpace(m.inputs[registerEmail].Value())
			pass := m.inputs[registerPassword].Value()
			repeat := m.inputs[registerRepeat].Value()

			if email == "" || pass == "" {
				m.errMsg = msgCredentials
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "パスワードが一致しません"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(models.Credentials{Email: email, Password: pass, Name: name})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("項目              │ 値\n")
	b.WriteString("──────────────────┼────────────────────────────────────\n")
	b.WriteString("名前              │ [")
	b.WriteString(m.inputs[registerName].View())
	b.WriteString("]\n")
	b.WriteString("メールアドレス     │ [")
	b.WriteString(m.inputs[registerEmail].View())
	b.WriteString("]\n")
	b.WriteString("パスワード        │ [")
	b.WriteString(m.inputs[registerPassword].View())
	b.WriteString("]\n")
	b.WriteString("パスワード（確認） │ [")
	b.WriteString(m.inputs[registerRepeat].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[登録中...]\n")
	} else {
		b.WriteString("\n[登録する]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("エラー: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("新規登録", strings.TrimRight(b.String(), "\n"), "esc: 戻る │ tab: 次の項目 │ enter: 送信")
}

func (m *RegisterModel) cmdRegister(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, credentials)
		return RegisterResult{User: user, Err: err}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
