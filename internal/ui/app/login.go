// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/idleguard/internal/session"
	"github.com/jeranaias/idleguard/internal/ui/styles"
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldCount
)

// loginForm is the sign-in form shown on the login route.
type loginForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

func newLoginForm() loginForm {
	var f loginForm
	placeholders := [fieldCount]string{"Full name", "you@example.com", "Phone (optional)"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 128
		in.Width = 40
		in.Prompt = "> "
		f.inputs[i] = in
	}
	f.inputs[fieldName].Focus()
	return f
}

// reset clears the fields and focuses the first one.
func (f *loginForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = fieldName
	f.inputs[fieldName].Focus()
	f.err = ""
}

// focusNext moves focus by delta, wrapping around.
func (f *loginForm) focusNext(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *loginForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// user builds the User described by the form.
func (f *loginForm) user() session.User {
	return session.User{
		Name:  strings.TrimSpace(f.inputs[fieldName].Value()),
		Email: strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Phone: strings.TrimSpace(f.inputs[fieldPhone].Value()),
	}
}

func (f *loginForm) view(t *styles.Theme) string {
	labels := [fieldCount]string{"Name", "Email", "Phone"}
	rows := []string{t.Title.Render("Sign in"), ""}
	for i, in := range f.inputs {
		label := t.Label.Render(labels[i])
		if i == f.focus {
			label = t.Focused.Render(labels[i])
		}
		rows = append(rows, label, in.View(), "")
	}
	if f.err != "" {
		rows = append(rows, t.Error.Render(f.err), "")
	}
	rows = append(rows, t.Hint.Render("tab next field  enter sign in  ctrl+c quit"))
	return t.Panel.Render(strings.Join(rows, "\n"))
}
