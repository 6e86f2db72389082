// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view tracks which of the main screens is active.
package view

// View is one of the main screens.
type View int

const (
	// Home is the composer and the default view.
	Home View = iota
	// List shows every entry grouped by month.
	List
	// Calendar is a placeholder.
	Calendar
)

// Views lists every view in tab order.
var Views = []View{Home, List, Calendar}

// Default is the view shown after sign in and after sign out.
const Default = Home

func (v View) String() string {
	switch v {
	case Home:
		return "home"
	case List:
		return "list"
	case Calendar:
		return "calendar"
	default:
		return "unknown"
	}
}

// Title is the tab label of v.
func (v View) Title() string {
	switch v {
	case Home:
		return "ホーム"
	case List:
		return "日記一覧"
	case Calendar:
		return "カレンダー"
	default:
		return ""
	}
}

// Valid reports whether v is one of [Views].
func (v View) Valid() bool {
	return v >= Home && v <= Calendar
}

// Controller holds the active view. The zero value is ready to use and shows
// [Default]. It is not safe for concurrent use; the UI loop owns it.
type Controller struct {
	active View
}

// NewController returns a controller showing [Default].
func NewController() *Controller {
	return &Controller{active: Default}
}

// Active returns the view currently shown.
func (c *Controller) Active() View {
	return c.active
}

// Select makes v active. Unknown views are ignored.
func (c *Controller) Select(v View) {
	if !v.Valid() {
		return
	}
	c.active = v
}

// Next moves to the following tab, wrapping around.
func (c *Controller) Next() {
	c.active = (c.active + 1) % View(len(Views))
}

// Prev moves to the previous tab, wrapping around.
func (c *Controller) Prev() {
	c.active = (c.active + View(len(Views)) - 1) % View(len(Views))
}

// OnLogin keeps the current view.
func (c *Controller) OnLogin() {}

// OnLogout returns to [Default].
func (c *Controller) OnLogout() {
	c.active = Default
}
