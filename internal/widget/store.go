package widget

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/vaultpass/passgen-go/internal/generator"
)

// Listener is notified after every state change.
type Listener func(prev, next State)

// Store owns the widget state. Any configuration change regenerates the
// password before listeners are notified.
type Store struct {
	mu        sync.Mutex
	state     State
	gen       *generator.Generator
	listeners map[int]Listener
	nextID    int
}

// NewStore creates a Store for cfg and performs the initial generation.
func NewStore(cfg generator.Configuration, gen *generator.Generator) (*Store, error) {
	if gen == nil {
		gen = generator.NewGenerator(nil)
	}
	s := &Store{
		state:     InitialState(cfg),
		gen:       gen,
		listeners: make(map[int]Listener),
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Dispatch applies a. If the configuration changed, the password is
// regenerated exactly once as part of the same update.
func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)

	if next.Config != prev.Config {
		password, err := s.gen.Generate(next.Config)
		if err != nil {
			s.mu.Unlock()
			return fmt.Errorf("regenerating password: %w", err)
		}
		next = Reduce(next, PasswordGenerated{Password: password})
		slog.Debug("password regenerated",
			"length", next.Config.Length,
			"digits", next.Config.IncludeDigits,
			"symbols", next.Config.IncludeSymbols,
		)
	}

	s.state = next
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(prev, next)
	}
	return nil
}

// Regenerate draws a new password for the current configuration.
func (s *Store) Regenerate() error {
	s.mu.Lock()
	prev := s.state
	password, err := s.gen.Generate(prev.Config)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("generating password: %w", err)
	}
	next := Reduce(prev, PasswordGenerated{Password: password})
	s.state = next
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(prev, next)
	}
	return nil
}

func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}
