// Package widget holds the password widget's state and the transitions that
// change it.
package widget

import "github.com/vaultpass/passgen-go/internal/generator"

// State is everything the widget displays.
type State struct {
	Config     generator.Configuration
	Password   string
	CopyStatus string
	// Selected is set when the password has just been copied and is shown highlighted.
	Selected bool
}

// InitialState returns the state at mount, before the first generation.
func InitialState(cfg generator.Configuration) State {
	cfg.Length = generator.ClampLength(cfg.Length)
	return State{Config: cfg}
}

// Action is a state transition.
type Action interface {
	apply(State) State
}

// SetLength replaces the configured length, clamped to the slider range.
type SetLength struct{ N int }

// ToggleDigits flips digit inclusion.
type ToggleDigits struct{}

// ToggleSymbols flips symbol inclusion.
type ToggleSymbols struct{}

// PasswordGenerated replaces the current password wholesale.
type PasswordGenerated struct{ Password string }

// CopySucceeded records a successful clipboard export.
type CopySucceeded struct{}

// CopyFailed records a failed clipboard export.
type CopyFailed struct{}

// StatusCleared empties the copy status.
type StatusCleared struct{}

func (a SetLength) apply(s State) State {
	s.Config.Length = generator.ClampLength(a.N)
	return s
}

func (ToggleDigits) apply(s State) State {
	s.Config.IncludeDigits = !s.Config.IncludeDigits
	return s
}

func (ToggleSymbols) apply(s State) State {
	s.Config.IncludeSymbols = !s.Config.IncludeSymbols
	return s
}

func (a PasswordGenerated) apply(s State) State {
	s.Password = a.Password
	s.Selected = false
	return s
}

func (CopySucceeded) apply(s State) State {
	s.CopyStatus = CopySuccessMessage
	s.Selected = true
	return s
}

func (CopyFailed) apply(s State) State {
	s.CopyStatus = CopyFailureMessage
	s.Selected = true
	return s
}

func (StatusCleared) apply(s State) State {
	s.CopyStatus = ""
	s.Selected = false
	return s
}

const (
	CopySuccessMessage = "Text copied to clipboard!"
	CopyFailureMessage = "Failed to copy!"
)

// Reduce applies a to s and returns the new state. It has no side effects.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}
