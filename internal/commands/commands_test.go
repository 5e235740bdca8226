package commands

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

type recorder struct {
	got []Command
}

func (r *recorder) Dispatch(cmd Command) { r.got = append(r.got, cmd) }

func TestParseRoundTrip(t *testing.T) {
	for _, c := range All() {
		got, err := Parse(c.String())
		if err != nil || got != c {
			t.Fatalf("Parse(%q) = %v, %v", c.String(), got, err)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("self_destruct"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("err = %v, want ErrUnknownCommand", err)
	}
	if None.String() != "none" {
		t.Fatalf("None.String() = %q", None.String())
	}
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"Space", true},
		{"KeyC", true},
		{"KeyZ", true},
		{"Digit0", true},
		{"F1", true},
		{"F12", true},
		{"ArrowLeft", true},
		{"", false},
		{"Key", false},
		{"Keyc", false},
		{"KeyAB", false},
		{"Digit10", false},
		{"F0", false},
		{"F13", false},
		{"F01", false},
		{"space", false},
	}
	for _, tt := range tests {
		if got := ValidCode(tt.code); got != tt.want {
			t.Errorf("ValidCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestNewKeymap(t *testing.T) {
	km, err := NewKeymap(map[string]string{
		"Space": "toggle_animation",
		"KeyC":  "change_colors",
		"KeyR":  "reset_camera",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(km, DefaultKeymap()) {
		t.Fatalf("keymap = %v, want default", km)
	}
	if !reflect.DeepEqual(km.Bindings(), map[string]string{
		"Space": "toggle_animation",
		"KeyC":  "change_colors",
		"KeyR":  "reset_camera",
	}) {
		t.Fatalf("bindings = %v", km.Bindings())
	}
}

func TestNewKeymapRejects(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		want     error
	}{
		{"bad code", map[string]string{"Ctrl+C": "change_colors"}, ErrInvalidKeyCode},
		{"bad command", map[string]string{"KeyX": "explode"}, ErrUnknownCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewKeymap(tt.bindings); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestKeymapLookup(t *testing.T) {
	km := DefaultKeymap()
	if cmd, ok := km.Lookup("KeyR"); !ok || cmd != ResetCamera {
		t.Fatalf("Lookup(KeyR) = %v, %v", cmd, ok)
	}
	if _, ok := km.Lookup("KeyQ"); ok {
		t.Fatal("KeyQ should be unbound")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	var toggles int
	r.Register(ToggleAnimation, func() { toggles++ })

	r.Dispatch(ToggleAnimation)
	r.Dispatch(ResetCamera)
	if err := r.Execute("toggle_animation"); err != nil {
		t.Fatal(err)
	}
	if toggles != 2 {
		t.Fatalf("toggles = %d, want 2", toggles)
	}
	if err := r.Execute("reset_camera"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("err = %v, want ErrUnknownCommand for missing handler", err)
	}
	if got := r.Registered(); !reflect.DeepEqual(got, []string{"toggle_animation"}) {
		t.Fatalf("Registered = %v", got)
	}
}

func TestQueueDrainsInOrder(t *testing.T) {
	q := NewQueue(4)
	for _, c := range []Command{ResetCamera, ToggleAnimation, ChangeColors} {
		if err := q.Post(c); err != nil {
			t.Fatal(err)
		}
	}
	rec := &recorder{}
	if n := q.Drain(rec); n != 3 {
		t.Fatalf("drained %d, want 3", n)
	}
	if !reflect.DeepEqual(rec.got, []Command{ResetCamera, ToggleAnimation, ChangeColors}) {
		t.Fatalf("order = %v", rec.got)
	}
	if n := q.Drain(rec); n != 0 {
		t.Fatalf("second drain = %d, want 0", n)
	}
}

func TestQueueFull(t *testing.T) {
	q := NewQueue(1)
	if err := q.Post(ToggleAnimation); err != nil {
		t.Fatal(err)
	}
	if err := q.Post(ToggleAnimation); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("err = %v, want ErrQueueFull", err)
	}
}

func TestQueueConcurrentPost(t *testing.T) {
	q := NewQueue(100)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = q.Post(ChangeColors)
			}
		}()
	}
	wg.Wait()
	if n := q.Drain(&recorder{}); n != 100 {
		t.Fatalf("drained %d, want 100", n)
	}
}
