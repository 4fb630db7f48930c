package logger

import "testing"

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "production", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		if l == nil {
			t.Fatalf("New(%q): nil logger", mode)
		}
	}
}

func TestWithReturnsUsableChild(t *testing.T) {
	child := NewNop().With("component", "test")
	if child == nil {
		t.Fatalf("With: nil child logger")
	}
	// Child must log through all levels without panicking.
	child.Debug("debug", "k", "v")
	child.Info("info")
	child.Warn("warn")
	child.Error("error", "k", "v")
	child.Sync()
}
