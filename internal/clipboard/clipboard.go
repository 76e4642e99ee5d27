// Package clipboard exports the current password to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
)

// DefaultStatusTTL is how long a copy status stays visible.
const DefaultStatusTTL = 2000 * time.Millisecond

var ErrUnavailable = errors.New("clipboard unavailable")

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the host clipboard (xclip/xsel/wl-copy, pbcopy or the Windows API).
type System struct{}

// WriteAll copies text to the host clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Outcome is the result of one copy attempt.
type Outcome struct {
	Err error
	// ClearAfter is how long the resulting status stays visible; zero means it stays.
	ClearAfter time.Duration
}

// OK reports whether the copy succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

// Exporter copies passwords through a Writer. There is no retry.
type Exporter struct {
	w            Writer
	ttl          time.Duration
	clearFailure bool
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithStatusTTL overrides how long a status stays visible.
func WithStatusTTL(d time.Duration) Option {
	return func(e *Exporter) { e.ttl = d }
}

// WithFailureAutoClear controls whether failure statuses clear like success ones.
func WithFailureAutoClear(enabled bool) Option {
	return func(e *Exporter) { e.clearFailure = enabled }
}

// NewExporter creates an Exporter. A nil w uses the System clipboard.
func NewExporter(w Writer, opts ...Option) *Exporter {
	if w == nil {
		w = System{}
	}
	e := &Exporter{w: w, ttl: DefaultStatusTTL, clearFailure: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Copy writes password to the clipboard. It blocks until the write finishes;
// callers that must not block run it on their own goroutine.
func (e *Exporter) Copy(password string) Outcome {
	if err := e.w.WriteAll(password); err != nil {
		slog.Warn("clipboard copy failed", "error", err)
		out := Outcome{Err: err}
		if e.clearFailure {
			out.ClearAfter = e.ttl
		}
		return out
	}

	slog.Debug("password copied to clipboard", "length", len(password))
	return Outcome{ClearAfter: e.ttl}
}
