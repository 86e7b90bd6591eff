// Package history is the linear undo/redo log of the editing session. Every
// committed edit pushes exactly one Entry; pushing clears the redo stack, so
// history never branches. Entries carry enough captured state (shapes,
// indices, geometry snapshots) to replay themselves in either direction
// against a Target.
package history

import (
	"log/slog"

	"github.com/example/vecdraw/internal/geom"
	"github.com/example/vecdraw/internal/shape"
)

// Target is the mutable state an Entry replays against. The shape collection
// implements it; tests can substitute a recorder.
type Target interface {
	// InsertShape places s at index, or appends when index is -1 or past
	// the end.
	InsertShape(s shape.Shape, index int)
	// RemoveShape deletes s by identity and returns the index it occupied,
	// or -1 if s was not present.
	RemoveShape(s shape.Shape) int
	// SetProperty overwrites a named editor-level property, e.g. the
	// current stroke color.
	SetProperty(name string, value any)
}

// Entry is one reversible edit.
type Entry interface {
	// Kind names the edit for diagnostics: add, delete, delete-multi,
	// move, resize, property-change.
	Kind() string
	Undo(t Target)
	Redo(t Target)
}

// Add records a shape committed to the collection.
type Add struct {
	Shape shape.Shape
}

func (e *Add) Kind() string   { return "add" }
func (e *Add) Undo(t Target)  { t.RemoveShape(e.Shape) }
func (e *Add) Redo(t Target)  { t.InsertShape(e.Shape, -1) }

// Delete records a single removal and the index the shape occupied, so undo
// restores the original z-order.
type Delete struct {
	Shape shape.Shape
	Index int
}

func (e *Delete) Kind() string  { return "delete" }
func (e *Delete) Undo(t Target) { t.InsertShape(e.Shape, e.Index) }
func (e *Delete) Redo(t Target) { t.RemoveShape(e.Shape) }

// DeleteMulti batches one selection-wide delete into a single entry.
// Shapes and Indices are parallel and must be ordered by ascending index:
// undo reinserts front to back so each shape lands back at its recorded
// slot.
type DeleteMulti struct {
	Shapes  []shape.Shape
	Indices []int
}

func (e *DeleteMulti) Kind() string { return "delete-multi" }

func (e *DeleteMulti) Undo(t Target) {
	for i, s := range e.Shapes {
		t.InsertShape(s, e.Indices[i])
	}
}

func (e *DeleteMulti) Redo(t Target) {
	for _, s := range e.Shapes {
		t.RemoveShape(s)
	}
}

// Move records full geometry snapshots of the dragged shapes before and
// after the gesture. Snapshots, not deltas: replaying is then exact even
// for shapes with derived point rules like horizontal-locked lines.
type Move struct {
	Shapes []shape.Shape
	Before [][]geom.Point
	After  [][]geom.Point
}

func (e *Move) Kind() string { return "move" }

func (e *Move) Undo(Target) {
	for i, s := range e.Shapes {
		s.SetPoints(e.Before[i])
	}
}

func (e *Move) Redo(Target) {
	for i, s := range e.Shapes {
		s.SetPoints(e.After[i])
	}
}

// Resize records one shape's geometry before and after a handle drag.
type Resize struct {
	Shape  shape.Shape
	Before []geom.Point
	After  []geom.Point
}

func (e *Resize) Kind() string  { return "resize" }
func (e *Resize) Undo(Target)   { e.Shape.SetPoints(e.Before) }
func (e *Resize) Redo(Target)   { e.Shape.SetPoints(e.After) }

// Property records a change to a named editor-level setting (current
// color, width, dash), not per-shape state.
type Property struct {
	Name   string
	Before any
	After  any
}

func (e *Property) Kind() string  { return "property-change" }
func (e *Property) Undo(t Target) { t.SetProperty(e.Name, e.Before) }
func (e *Property) Redo(t Target) { t.SetProperty(e.Name, e.After) }

// Log holds the two stacks. The zero value is not usable; construct with
// NewLog.
type Log struct {
	undo   []Entry
	redo   []Entry
	logger *slog.Logger
}

// NewLog returns an empty log. A nil logger silences diagnostics.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.New(nopHandler{})
	}
	return &Log{logger: logger}
}

// Push records a committed edit and discards any redoable future.
func (l *Log) Push(e Entry) {
	l.undo = append(l.undo, e)
	l.redo = l.redo[:0]
	l.logger.Debug("history push", "kind", e.Kind(), "depth", len(l.undo))
}

// CutRedo discards the redo stack without recording anything. Duplicate
// uses it: the copy is not undoable, but stale redo entries must not
// replay on top of it.
func (l *Log) CutRedo() {
	l.redo = l.redo[:0]
}

// Undo reverts the most recent entry. Returns false on an empty stack.
func (l *Log) Undo(t Target) bool {
	if len(l.undo) == 0 {
		l.logger.Debug("undo on empty stack")
		return false
	}
	e := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	e.Undo(t)
	l.redo = append(l.redo, e)
	l.logger.Debug("undo", "kind", e.Kind(), "depth", len(l.undo))
	return true
}

// Redo re-applies the most recently undone entry. Returns false on an
// empty stack.
func (l *Log) Redo(t Target) bool {
	if len(l.redo) == 0 {
		l.logger.Debug("redo on empty stack")
		return false
	}
	e := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	e.Redo(t)
	l.undo = append(l.undo, e)
	l.logger.Debug("redo", "kind", e.Kind(), "depth", len(l.undo))
	return true
}

// Depth returns the number of undoable entries.
func (l *Log) Depth() int { return len(l.undo) }

// RedoDepth returns the number of redoable entries.
func (l *Log) RedoDepth() int { return len(l.redo) }

var (
	_ Entry = (*Add)(nil)
	_ Entry = (*Delete)(nil)
	_ Entry = (*DeleteMulti)(nil)
	_ Entry = (*Move)(nil)
	_ Entry = (*Resize)(nil)
	_ Entry = (*Property)(nil)
)
