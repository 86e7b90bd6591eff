package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/vecdraw/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave emits a notification when a drawing is persisted to disk.
	EventSave Event = "save"
	// EventExport emits a notification when annotations are written to a PDF.
	EventExport Event = "export"
	// EventCopy emits a notification when data is copied to the clipboard.
	EventCopy Event = "copy"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "VecDraw",
		Events: map[Event]EventPreference{
			EventSave:   {Template: "Saved %s"},
			EventExport: {Template: "Exported %s"},
			EventCopy:   {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences reads notification settings from the environment.
// VECDRAW_NOTIFY_TITLE renames the toast; the per-event *_TEXT variables
// replace the body templates.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("VECDRAW_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	overrides := map[Event]string{
		EventSave:   "VECDRAW_NOTIFY_SAVE_TEXT",
		EventExport: "VECDRAW_NOTIFY_EXPORT_TEXT",
		EventCopy:   "VECDRAW_NOTIFY_COPY_TEXT",
	}
	for event, key := range overrides {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Events[event] = EventPreference{Template: v}
		}
	}
	return prefs
}

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New returns a Notifier with every event disabled. The preferences are
// copied so later mutation by the caller cannot change a queued toast.
func New(prefs Preferences) *Notifier {
	prefs.Events = maps.Clone(prefs.Events)
	if prefs.Events == nil {
		prefs.Events = make(map[Event]EventPreference)
	}
	return &Notifier{prefs: prefs, enabled: make(map[Event]bool)}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Save announces a persisted drawing, using the file itself as the icon.
func (n *Notifier) Save(path string) {
	detail, opts := strings.TrimSpace(path), platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, statErr := os.Stat(abs); statErr == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventSave, detail, opts)
}

// Export announces a written PDF.
func (n *Notifier) Export(path string) {
	detail := strings.TrimSpace(path)
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
	}
	n.dispatch(EventExport, detail, platform.Options{})
}

// Copy announces a clipboard write with an optional image preview. The
// enabled check runs first so disabled sessions never touch the temp dir.
func (n *Notifier) Copy(detail string, img image.Image) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "image"
	}
	opts := platform.Options{}
	if img != nil {
		path, remove, err := previewIcon(img)
		if err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer remove()
			opts.IconPath = path
		}
	}
	n.dispatch(EventCopy, detail, opts)
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.enabledFor(event) {
		return
	}
	tmpl := strings.TrimSpace(n.prefs.Events[event].Template)
	if tmpl == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(tmpl, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := platform.Notify(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

// previewIcon writes img to a temporary PNG the notification daemon can
// read, returning its path and a remover.
func previewIcon(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "vecdraw-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", nil, err
	}
	remove := func() {
		if err := os.Remove(f.Name()); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return f.Name(), remove, nil
}
