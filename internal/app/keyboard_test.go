package app

import (
	"testing"

	"golang.org/x/mobile/event/key"
)

func TestRegistryRuneLookupIgnoresCode(t *testing.T) {
	r := NewRegistry(nil)
	fired := 0
	r.Register("undo", shortcutList{{Rune: 'z', Modifiers: key.ModControl}}, func() { fired++ })

	// Real events carry the physical code alongside the rune; the rune
	// binding must still match.
	ev := key.Event{Rune: 'z', Code: key.CodeZ, Modifiers: key.ModControl, Direction: key.DirPress}
	if !r.Handle(ev) {
		t.Fatal("ctrl+z did not dispatch")
	}
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestRegistryUppercaseRuneMatches(t *testing.T) {
	r := NewRegistry(nil)
	fired := false
	r.Register("line", shortcutList{{Rune: 'l'}}, func() { fired = true })

	if !r.Handle(key.Event{Rune: 'L', Code: key.CodeL}) {
		t.Fatal("uppercase rune did not dispatch")
	}
	if !fired {
		t.Fatal("action not run")
	}
}

func TestRegistryCodeFallback(t *testing.T) {
	r := NewRegistry(nil)
	fired := false
	r.Register("delete", shortcutList{
		{Code: key.CodeDeleteForward},
		{Code: key.CodeDeleteBackspace},
	}, func() { fired = true })

	// Delete keys produce no printable rune.
	if !r.Handle(key.Event{Rune: -1, Code: key.CodeDeleteForward}) {
		t.Fatal("delete did not dispatch")
	}
	if !fired {
		t.Fatal("action not run")
	}
}

func TestRegistryModifierMismatch(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("undo", shortcutList{{Rune: 'z', Modifiers: key.ModControl}}, func() {
		t.Fatal("plain z must not trigger ctrl+z")
	})

	if r.Handle(key.Event{Rune: 'z', Code: key.CodeZ}) {
		t.Fatal("unmodified z should not dispatch")
	}
}

func TestRegistryTrigger(t *testing.T) {
	r := NewRegistry(nil)
	fired := false
	r.Register("save", nil, func() { fired = true })

	if !r.Trigger("save") {
		t.Fatal("Trigger(save) failed")
	}
	if !fired {
		t.Fatal("action not run")
	}
	if r.Trigger("missing") {
		t.Fatal("unknown action should report false")
	}
}
