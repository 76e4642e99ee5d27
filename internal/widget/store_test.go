package widget

import (
	"errors"
	"strings"
	"testing"

	"github.com/vaultpass/passgen-go/internal/generator"
)

// countingSource counts draws and always returns the last alphabet slot.
type countingSource struct {
	draws int
}

func (c *countingSource) Intn(n int) (int, error) {
	c.draws++
	return n - 1, nil
}

type failingSource struct{}

func (failingSource) Intn(int) (int, error) { return 0, errors.New("no entropy") }

func newTestStore(t *testing.T, cfg generator.Configuration) (*Store, *countingSource) {
	t.Helper()
	src := &countingSource{}
	store, err := NewStore(cfg, generator.NewGenerator(src))
	if err != nil {
		t.Fatalf("NewStore() unexpected error: %v", err)
	}
	return store, src
}

func TestNewStoreGeneratesOnMount(t *testing.T) {
	store, src := newTestStore(t, generator.DefaultConfiguration())

	st := store.State()
	if len(st.Password) != 8 {
		t.Errorf("initial password length = %d, want 8", len(st.Password))
	}
	if src.draws != 8 {
		t.Errorf("draws = %d, want 8", src.draws)
	}
	if st.Config != generator.DefaultConfiguration() {
		t.Errorf("initial config = %+v, want defaults", st.Config)
	}
}

func TestNewStoreSourceError(t *testing.T) {
	_, err := NewStore(generator.DefaultConfiguration(), generator.NewGenerator(failingSource{}))
	if !errors.Is(err, generator.ErrEntropy) {
		t.Fatalf("NewStore() error = %v, want %v", err, generator.ErrEntropy)
	}
}

func TestToggleDigitsRegenerates(t *testing.T) {
	store, _ := newTestStore(t, generator.DefaultConfiguration())
	before := store.State().Password

	var notified int
	store.Subscribe(func(prev, next State) { notified++ })

	if err := store.Dispatch(ToggleDigits{}); err != nil {
		t.Fatalf("Dispatch() unexpected error: %v", err)
	}

	st := store.State()
	if !st.Config.IncludeDigits {
		t.Fatal("IncludeDigits not toggled")
	}
	if len(st.Password) != 8 {
		t.Errorf("password length = %d, want 8", len(st.Password))
	}
	// countingSource always picks the last slot: 'm' for letters, '9' once digits are on.
	if before != strings.Repeat("m", 8) {
		t.Errorf("initial password = %q", before)
	}
	if st.Password != strings.Repeat("9", 8) {
		t.Errorf("regenerated password = %q, want %q", st.Password, strings.Repeat("9", 8))
	}
	if notified != 1 {
		t.Errorf("listener called %d times, want 1", notified)
	}
}

func TestEachConfigChangeRegeneratesOnce(t *testing.T) {
	store, src := newTestStore(t, generator.DefaultConfiguration())

	tests := []struct {
		name      string
		action    Action
		wantDraws int
	}{
		{"set length", SetLength{N: 20}, 20},
		{"toggle digits", ToggleDigits{}, 20},
		{"toggle symbols", ToggleSymbols{}, 20},
		{"set length to min", SetLength{N: 6}, 6},
		{"set same length", SetLength{N: 6}, 0},
		{"clamped above max", SetLength{N: 500}, 100},
		{"copy status", CopySucceeded{}, 0},
		{"status cleared", StatusCleared{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src.draws = 0
			if err := store.Dispatch(tt.action); err != nil {
				t.Fatalf("Dispatch() unexpected error: %v", err)
			}
			if src.draws != tt.wantDraws {
				t.Errorf("draws = %d, want %d", src.draws, tt.wantDraws)
			}
			st := store.State()
			if len(st.Password) != st.Config.Length {
				t.Errorf("password length = %d, want %d", len(st.Password), st.Config.Length)
			}
		})
	}
}

func TestDispatchRealSourceMembership(t *testing.T) {
	store, err := NewStore(generator.Configuration{Length: 12}, nil)
	if err != nil {
		t.Fatalf("NewStore() unexpected error: %v", err)
	}
	if err := store.Dispatch(ToggleDigits{}); err != nil {
		t.Fatalf("Dispatch() unexpected error: %v", err)
	}
	if err := store.Dispatch(ToggleSymbols{}); err != nil {
		t.Fatalf("Dispatch() unexpected error: %v", err)
	}

	st := store.State()
	alphabet := generator.Alphabet(st.Config)
	if len(alphabet) != 68 {
		t.Fatalf("alphabet size = %d, want 68", len(alphabet))
	}
	for _, ch := range st.Password {
		if !strings.ContainsRune(alphabet, ch) {
			t.Errorf("password contains unexpected character %q", string(ch))
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	store, _ := newTestStore(t, generator.DefaultConfiguration())

	var calls int
	unsubscribe := store.Subscribe(func(prev, next State) { calls++ })

	_ = store.Dispatch(ToggleSymbols{})
	unsubscribe()
	_ = store.Dispatch(ToggleSymbols{})

	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}

func TestListenerSeesPreviousAndNext(t *testing.T) {
	store, _ := newTestStore(t, generator.DefaultConfiguration())

	var gotPrev, gotNext State
	store.Subscribe(func(prev, next State) {
		gotPrev, gotNext = prev, next
	})

	if err := store.Dispatch(SetLength{N: 30}); err != nil {
		t.Fatalf("Dispatch() unexpected error: %v", err)
	}
	if gotPrev.Config.Length != 8 || gotNext.Config.Length != 30 {
		t.Errorf("listener saw %d -> %d, want 8 -> 30", gotPrev.Config.Length, gotNext.Config.Length)
	}
	if len(gotNext.Password) != 30 {
		t.Errorf("listener saw password of length %d, want 30", len(gotNext.Password))
	}
}

func TestRegenerateKeepsConfig(t *testing.T) {
	store, src := newTestStore(t, generator.Configuration{Length: 10, IncludeSymbols: true})
	src.draws = 0

	if err := store.Regenerate(); err != nil {
		t.Fatalf("Regenerate() unexpected error: %v", err)
	}
	if src.draws != 10 {
		t.Errorf("draws = %d, want 10", src.draws)
	}
	if !store.State().Config.IncludeSymbols {
		t.Error("Regenerate() changed configuration")
	}
}
