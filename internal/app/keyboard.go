package app

import (
	"log/slog"
	"unicode"

	"golang.org/x/mobile/event/key"
)

// Shortcut describes a keyboard combination that triggers an action.
// Either Rune or Code identifies the key; Modifiers must match exactly.
type Shortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []Shortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []Shortcut

func (s shortcutList) KeyboardShortcuts() []Shortcut { return []Shortcut(s) }

// Registry maps keyboard shortcuts to named actions. Key events carry both
// a rune and a code; dispatch tries the rune binding first and falls back
// to the code binding, so actions can register under whichever identifies
// them best (letters by rune, Delete/Escape by code).
type Registry struct {
	logger  *slog.Logger
	actions map[string]func()
	byKey   map[Shortcut]string
}

// NewRegistry returns an empty registry. A nil logger silences diagnostics.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(nopHandler{})
	}
	return &Registry{
		logger:  logger,
		actions: map[string]func(){},
		byKey:   map[Shortcut]string{},
	}
}

// Register binds fn to name and its shortcuts. Registering a name again
// replaces the function and adds the new bindings.
func (r *Registry) Register(name string, keys KeyboardShortcuts, fn func()) {
	r.actions[name] = fn
	if keys == nil {
		return
	}
	for _, sc := range keys.KeyboardShortcuts() {
		r.byKey[sc] = name
	}
}

// Trigger runs a named action directly, e.g. from a status strip button.
func (r *Registry) Trigger(name string) bool {
	fn, ok := r.actions[name]
	if !ok {
		r.logger.Warn("unknown action", "action", name)
		return false
	}
	fn()
	return true
}

// Handle dispatches one key press. Returns false when nothing is bound.
func (r *Registry) Handle(e key.Event) bool {
	if e.Rune > 0 {
		sc := Shortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers}
		if name, ok := r.byKey[sc]; ok {
			return r.Trigger(name)
		}
	}
	if name, ok := r.byKey[Shortcut{Code: e.Code, Modifiers: e.Modifiers}]; ok {
		return r.Trigger(name)
	}
	return false
}
