// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-abroad-journal/models"

// NavigateTo switches the sign-in flow to Page. Payload, when set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login screen.
type LoginResult struct {
	User models.User
	Err  error
}

// RegisterResult is produced by the register screen.
type RegisterResult struct {
	User models.User
	Err  error
}

type entriesLoadedMsg struct {
	err error
}

type entryCreatedMsg struct {
	entry models.DiaryEntry
	err   error
}

type entryUpdatedMsg struct {
	entry models.DiaryEntry
	err   error
}

type entryDeletedMsg struct {
	message string
	err     error
}

type correctionDoneMsg struct {
	correction models.Correction
	err        error
}

type copiedMsg struct {
	what string
}

type clipboardFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

// quitMsg ends the sign-in flow as if the user pressed ctrl+c.
type quitMsg struct{}
