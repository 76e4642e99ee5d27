// Package tui is the interactive terminal password widget.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/widget"
)

const sliderWidth = 40

type copyResultMsg struct {
	outcome clipboard.Outcome
}

// statusClearMsg carries no identity: an earlier copy's timer clears a later copy's status.
type statusClearMsg struct{}

// Model is the Bubble Tea model for the widget.
type Model struct {
	store    *widget.Store
	exporter *clipboard.Exporter
	keys     keyMap
	help     help.Model
	styles   styles
	err      error
}

// New creates a Model around store. Clipboard writes go through exporter.
func New(store *widget.Store, exporter *clipboard.Exporter) Model {
	if exporter == nil {
		exporter = clipboard.NewExporter(nil)
	}
	return Model{
		store:    store,
		exporter: exporter,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   newStyles(),
	}
}

// Init implements tea.Model. The password already exists from NewStore.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case copyResultMsg:
		if msg.outcome.OK() {
			m.dispatch(widget.CopySucceeded{})
		} else {
			m.dispatch(widget.CopyFailed{})
		}
		if msg.outcome.ClearAfter > 0 {
			return m, tea.Tick(msg.outcome.ClearAfter, func(time.Time) tea.Msg {
				return statusClearMsg{}
			})
		}
		return m, nil

	case statusClearMsg:
		m.dispatch(widget.StatusCleared{})
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	length := m.store.State().Config.Length

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Shorter):
		m.dispatch(widget.SetLength{N: length - 1})
	case key.Matches(msg, m.keys.Longer):
		m.dispatch(widget.SetLength{N: length + 1})
	case key.Matches(msg, m.keys.MuchShorter):
		m.dispatch(widget.SetLength{N: length - 10})
	case key.Matches(msg, m.keys.MuchLonger):
		m.dispatch(widget.SetLength{N: length + 10})
	case key.Matches(msg, m.keys.Digits):
		m.dispatch(widget.ToggleDigits{})
	case key.Matches(msg, m.keys.Symbols):
		m.dispatch(widget.ToggleSymbols{})
	case key.Matches(msg, m.keys.Regenerate):
		m.err = m.store.Regenerate()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCmd(m.store.State().Password)
	}

	return m, nil
}

// dispatch forwards a to the store and keeps the last error for display.
func (m *Model) dispatch(a widget.Action) {
	m.err = m.store.Dispatch(a)
}

func (m Model) copyCmd(password string) tea.Cmd {
	exporter := m.exporter
	return func() tea.Msg {
		return copyResultMsg{outcome: exporter.Copy(password)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	st := m.store.State()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Password Generator"))
	b.WriteString("\n")

	passwordStyle := m.styles.Password
	if st.Selected {
		passwordStyle = m.styles.Selected
	}
	b.WriteString(passwordStyle.Render(st.Password))
	b.WriteString("\n")

	switch st.CopyStatus {
	case "":
		b.WriteString("\n")
	case widget.CopySuccessMessage:
		b.WriteString(m.styles.Success.Render(st.CopyStatus) + "\n")
	default:
		b.WriteString(m.styles.Error.Render(st.CopyStatus) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Label.Render(fmt.Sprintf("Length: %d", st.Config.Length)),
		renderSlider(st.Config.Length),
	))
	b.WriteString("\n")
	b.WriteString(m.toggleLine("Include Numbers", st.Config.IncludeDigits))
	b.WriteString("\n")
	b.WriteString(m.toggleLine("Include Characters", st.Config.IncludeSymbols))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n" + m.styles.Error.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.Panel.Render(b.String())
}

func (m Model) toggleLine(label string, on bool) string {
	box := m.styles.Off.Render("[ ]")
	if on {
		box = m.styles.On.Render("[x]")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Label.Render(label), box)
}

func renderSlider(length int) string {
	span := generator.MaxLength - generator.MinLength
	pos := (length - generator.MinLength) * (sliderWidth - 1) / span
	return "[" + strings.Repeat("=", pos) + "o" + strings.Repeat("-", sliderWidth-1-pos) + "]"
}
