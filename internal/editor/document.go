package editor

import "github.com/example/vecdraw/internal/shape"

// Document is the ordered shape collection of one editing session. Order
// is z-order: later shapes draw on top and win hit-test ties. Selection
// lives on the shapes themselves; Document only aggregates it.
type Document struct {
	shapes []shape.Shape
}

func NewDocument() *Document {
	return &Document{}
}

// Shapes returns the collection in z-order. Callers must not mutate it.
func (d *Document) Shapes() []shape.Shape { return d.shapes }

func (d *Document) Len() int { return len(d.shapes) }

// Append commits a shape on top of the stack.
func (d *Document) Append(s shape.Shape) {
	d.shapes = append(d.shapes, s)
}

// Insert places s at index; -1 or past-the-end appends.
func (d *Document) Insert(s shape.Shape, index int) {
	if index < 0 || index >= len(d.shapes) {
		d.shapes = append(d.shapes, s)
		return
	}
	d.shapes = append(d.shapes[:index], append([]shape.Shape{s}, d.shapes[index:]...)...)
}

// Remove deletes s by identity and returns the index it occupied, or -1.
func (d *Document) Remove(s shape.Shape) int {
	for i, have := range d.shapes {
		if have == s {
			d.shapes = append(d.shapes[:i], d.shapes[i+1:]...)
			return i
		}
	}
	return -1
}

// IndexOf returns the position of s, or -1.
func (d *Document) IndexOf(s shape.Shape) int {
	for i, have := range d.shapes {
		if have == s {
			return i
		}
	}
	return -1
}

// Selected returns the selected shapes in z-order.
func (d *Document) Selected() []shape.Shape {
	var out []shape.Shape
	for _, s := range d.shapes {
		if s.Selected() {
			out = append(out, s)
		}
	}
	return out
}

// SelectionCount avoids allocating when only the size matters.
func (d *Document) SelectionCount() int {
	n := 0
	for _, s := range d.shapes {
		if s.Selected() {
			n++
		}
	}
	return n
}

func (d *Document) ClearSelection() {
	for _, s := range d.shapes {
		s.SetSelected(false)
	}
}

// SelectAll marks every shape selected and returns how many.
func (d *Document) SelectAll() int {
	for _, s := range d.shapes {
		s.SetSelected(true)
	}
	return len(d.shapes)
}
