package raffle

import "slices"

// Class names toggled on the widget's elements.
const (
	ClassFullscreenActive = "fullscreen-active" // container, while a fullscreen draw is shown
	ClassActive           = "active"            // canvas, while a celebration plays
	ClassDrawing          = "drawing"           // button, while the number rolls
	ClassRolling          = "rolling"           // number, while the number rolls
	ClassRevealed         = "revealed"          // number, once the result is shown
)

// Element is the observable state of one part of the widget: its text, its
// class list and whether it is disabled. Hosts read it to mirror the widget
// in their own markup or drawing.
type Element struct {
	name     string
	text     string
	classes  []string
	disabled bool
}

func newElement(name string) Element {
	return Element{name: name}
}

// Name returns the element's role: "container", "canvas", "button" or
// "number".
func (e *Element) Name() string { return e.name }

// Text returns the element's text content.
func (e *Element) Text() string { return e.text }

// Disabled reports whether the element is disabled.
func (e *Element) Disabled() bool { return e.disabled }

// HasClass reports whether the class list contains class.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

func (e *Element) setText(s string) { e.text = s }

func (e *Element) setDisabled(d bool) { e.disabled = d }

func (e *Element) addClass(class string) {
	if !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
}

func (e *Element) removeClass(class string) {
	if i := slices.Index(e.classes, class); i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
	}
}
