// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up             key.Binding
	down           key.Binding
	left           key.Binding
	right          key.Binding
	enter          key.Binding
	esc            key.Binding
	tab            key.Binding
	backtab        key.Binding
	quit           key.Binding
	forceQuit      key.Binding
	logout         key.Binding
	refresh        key.Binding
	edit           key.Binding
	delete         key.Binding
	copy           key.Binding
	copyCorrection key.Binding
	save           key.Binding
	correct        key.Binding
	apply          key.Binding
	yes            key.Binding
	no             key.Binding
}

var keys = keyMap{
	up:             key.NewBinding(key.WithKeys("up", "k")),
	down:           key.NewBinding(key.WithKeys("down", "j")),
	left:           key.NewBinding(key.WithKeys("left")),
	right:          key.NewBinding(key.WithKeys("right")),
	enter:          key.NewBinding(key.WithKeys("enter")),
	esc:            key.NewBinding(key.WithKeys("esc")),
	tab:            key.NewBinding(key.WithKeys("tab")),
	backtab:        key.NewBinding(key.WithKeys("shift+tab")),
	quit:           key.NewBinding(key.WithKeys("q")),
	forceQuit:      key.NewBinding(key.WithKeys("ctrl+c")),
	logout:         key.NewBinding(key.WithKeys("l")),
	refresh:        key.NewBinding(key.WithKeys("r")),
	edit:           key.NewBinding(key.WithKeys("e")),
	delete:         key.NewBinding(key.WithKeys("d")),
	copy:           key.NewBinding(key.WithKeys("c")),
	copyCorrection: key.NewBinding(key.WithKeys("y")),
	save:           key.NewBinding(key.WithKeys("ctrl+s")),
	correct:        key.NewBinding(key.WithKeys("ctrl+r")),
	apply:          key.NewBinding(key.WithKeys("ctrl+a")),
	yes:            key.NewBinding(key.WithKeys("y")),
	no:             key.NewBinding(key.WithKeys("n")),
}
