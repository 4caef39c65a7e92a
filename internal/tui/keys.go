// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	signIn    key.Binding
	signOut   key.Binding
	save      key.Binding
	copyUser  key.Binding
	refresh   key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	signIn:    key.NewBinding(key.WithKeys("i")),
	signOut:   key.NewBinding(key.WithKeys("o")),
	save:      key.NewBinding(key.WithKeys("s")),
	copyUser:  key.NewBinding(key.WithKeys("u")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
