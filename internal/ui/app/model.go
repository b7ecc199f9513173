// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/idleguard/internal/activity"
	"github.com/jeranaias/idleguard/internal/clock"
	"github.com/jeranaias/idleguard/internal/idle"
	"github.com/jeranaias/idleguard/internal/session"
	"github.com/jeranaias/idleguard/internal/ui/components"
	"github.com/jeranaias/idleguard/internal/ui/styles"
)

// Sessions is the session store the host signs users in and out of.
type Sessions interface {
	IsActive() bool
	CurrentUser() (session.User, error)
	Login(u session.User) error
	Logout()
}

// Options configures a Model.
type Options struct {
	Sessions Sessions
	// Post delivers messages to the running program. Required.
	Post   Poster
	Clock  clock.Clock
	Logger *log.Logger
	Theme  *styles.Theme
	// NoColor renders the help view without colors.
	NoColor bool
}

// tickMsg refreshes the countdown and expires toasts.
type tickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	sessions Sessions
	bus      *activity.Bus
	guard    *idle.Guard
	clock    clock.Clock
	theme    *styles.Theme
	toasts   *components.ToastStack

	route    string
	returnTo string
	form     loginForm

	plain    bool
	showHelp bool
	help     string
	helpW    int

	width  int
	height int
}

// New builds the model and its (unmounted) idle guard.
func New(opts Options) (*Model, error) {
	if opts.Sessions == nil {
		return nil, errors.New("app: sessions store is required")
	}
	if opts.Post == nil {
		return nil, errors.New("app: post function is required")
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme(false)
	}

	bus := activity.NewBus()
	router := NewRouter(opts.Post)
	guard, err := idle.NewGuard(idle.Deps{
		Source:     bus,
		Query:      opts.Sessions,
		Terminator: opts.Sessions,
		Notifier:   router,
		Navigator:  router,
	}, idle.WithClock(opts.Clock), idle.WithLogger(opts.Logger))
	if err != nil {
		return nil, err
	}

	m := &Model{
		sessions: opts.Sessions,
		bus:      bus,
		guard:    guard,
		clock:    opts.Clock,
		theme:    opts.Theme,
		toasts:   components.NewToastStack(),
		route:    RouteHome,
		form:     newLoginForm(),
		plain:    opts.NoColor,
	}
	m.enforceRoute()
	return m, nil
}

// Mount starts the idle guard. Call once before the program runs.
func (m *Model) Mount() { m.guard.Mount() }

// Unmount stops the idle guard. Call once after the program exits.
func (m *Model) Unmount() { m.guard.Unmount() }

// Guard exposes the idle guard for status display.
func (m *Model) Guard() *idle.Guard { return m.guard }

// Route returns the active route.
func (m *Model) Route() string { return m.route }

// Toasts returns the visible toasts.
func (m *Model) Toasts() []components.Toast { return m.toasts.Toasts() }

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink and the one-second tick.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// Update handles one message. User input is handed to the activity bus
// after the message is processed, so a keystroke that signs the user in or
// out is judged against the new session state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handle(msg)
	m.bus.Feed(msg)
	m.enforceRoute()
	return m, cmd
}

func (m *Model) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil

	case tickMsg:
		m.toasts.Tick(m.clock.Now())
		return tickCmd()

	case NavigateMsg:
		m.navigate(msg.Path)
		return nil

	case NotifyMsg:
		m.toasts.Push(msg.Notification, m.clock.Now())
		return nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		if m.route == RouteLogin {
			return m.updateLogin(msg)
		}
		return m.updateHome(msg)
	}

	if m.route == RouteLogin {
		return m.form.update(msg)
	}
	return nil
}

// navigate switches to path.
func (m *Model) navigate(path string) {
	route, returnTo := parseRoute(path)
	m.route = route
	m.returnTo = returnTo
	m.showHelp = false
	if route == RouteLogin {
		m.form.reset()
	}
}

// enforceRoute keeps signed-out users on the login route.
func (m *Model) enforceRoute() {
	if m.route == RouteHome && !m.sessions.IsActive() {
		m.route = RouteLogin
		m.form.reset()
	}
}

func (m *Model) updateHome(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+o":
		m.sessions.Logout()
		m.toasts.Push(idle.Notification{
			Title:       "Signed out",
			Description: "Your session has ended.",
			Severity:    idle.SeverityInfo,
		}, m.clock.Now())
		m.navigate(session.LoginURL(RouteHome))
	case "?":
		m.showHelp = !m.showHelp
	case "esc":
		m.showHelp = false
	case "x":
		if toasts := m.toasts.Toasts(); len(toasts) > 0 {
			m.toasts.Dismiss(toasts[0].ID)
		}
	case "q":
		return tea.Quit
	}
	return nil
}

func (m *Model) updateLogin(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		return m.form.focusNext(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.form.focusNext(-1)
	case tea.KeyEnter:
		m.submitLogin()
		return nil
	}
	return m.form.update(msg)
}

func (m *Model) submitLogin() {
	u := m.form.user()
	if err := m.sessions.Login(u); err != nil {
		m.form.err = strings.TrimPrefix(err.Error(), session.ErrInvalidUser.Error()+": ")
		return
	}
	m.toasts.Push(idle.Notification{
		Title:       "Signed in",
		Description: fmt.Sprintf("Welcome, %s.", u.Name),
		Severity:    idle.SeveritySuccess,
	}, m.clock.Now())

	target := m.returnTo
	if target == "" {
		target = RouteHome
	}
	m.navigate(target)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the active route and the toast stack.
func (m *Model) View() string {
	var body string
	switch {
	case m.route == RouteLogin:
		body = m.form.view(m.theme)
	case m.showHelp:
		body = m.viewHelp()
	default:
		body = m.viewHome()
	}

	now := m.clock.Now()
	toasts := components.RenderToastStack(m.toasts.Toasts(), m.width, 0, now)
	if toasts == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, toasts)
}

func (m *Model) viewHome() string {
	u, err := m.sessions.CurrentUser()
	if err != nil {
		return m.theme.Hint.Render("Not signed in.")
	}

	t := m.theme
	rows := []string{
		t.Title.Render("Signed in"),
		"",
		t.Label.Render("Name:   ") + t.Value.Render(u.Name),
		t.Label.Render("Email:  ") + t.Value.Render(u.Email),
	}
	if u.Phone != "" {
		rows = append(rows, t.Label.Render("Phone:  ")+t.Value.Render(u.Phone))
	}
	rows = append(rows,
		t.Label.Render("Since:  ")+t.Value.Render(u.LoginTime.Local().Format("2006-01-02 15:04")),
		"",
		m.viewIdle(),
		"",
		t.Hint.Render("ctrl+o sign out  x dismiss  ? help  q quit"),
	)
	return t.Panel.Render(strings.Join(rows, "\n"))
}

// viewHelp renders the help markdown, cached per width.
func (m *Model) viewHelp() string {
	if m.help == "" || m.helpW != m.width {
		m.help = components.RenderHelp(m.width, m.plain)
		m.helpW = m.width
	}
	return m.help + "\n" + m.theme.Hint.Render("? or esc to close")
}

func (m *Model) viewIdle() string {
	st := m.guard.Status()
	if st.State != idle.Monitoring {
		return m.theme.Label.Render("Idle timer: ") + m.theme.Value.Render(strings.ToLower(st.State.String()))
	}
	style := m.theme.Value
	if components.ShowIdleWarning(st.Remaining) {
		style = m.theme.Warning
	}
	line := m.theme.Label.Render("Idle logout in: ") + style.Render(components.FormatRemaining(st.Remaining))
	if components.ShowIdleWarning(st.Remaining) {
		return lipgloss.JoinVertical(lipgloss.Left, line, "", components.RenderIdleWarning(st.Remaining, m.width))
	}
	return line
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
