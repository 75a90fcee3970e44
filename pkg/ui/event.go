// Package ui holds the headless user-interface shell: the event
// routing state, the rack scene graph, and the window that drives the
// main loop. No graphics backend is attached in server builds; the
// window exists so the runtime loop and the scene lifecycle match the
// desktop build.
package ui

// Widget is a node in the scene graph that can receive routed events.
type Widget interface {
	// Name identifies the widget in logs.
	Name() string
}

// EventState routes input events into the widget tree. RootWidget is a
// non-owning reference: the scene it points at is owned and destroyed
// by the host, and the host clears the reference before the scene goes
// away.
type EventState struct {
	// RootWidget receives all routed events. Nil while no scene is
	// attached.
	RootWidget Widget

	hovered Widget
	dragged Widget
}

// NewEventState constructs an event state with no scene attached.
func NewEventState() *EventState {
	return &EventState{}
}

// SetRoot attaches the scene root the state routes into.
func (s *EventState) SetRoot(w Widget) {
	s.RootWidget = w
}

// Hover marks a widget as hovered.
func (s *EventState) Hover(w Widget) {
	s.hovered = w
}

// Hovered returns the currently hovered widget, or nil.
func (s *EventState) Hovered() Widget {
	return s.hovered
}

// StartDrag begins a drag on a widget.
func (s *EventState) StartDrag(w Widget) {
	s.dragged = w
}

// EndDrag finishes any active drag.
func (s *EventState) EndDrag() {
	s.dragged = nil
}

// Dragged returns the widget currently being dragged, or nil.
func (s *EventState) Dragged() Widget {
	return s.dragged
}

// Reset drops every widget reference held by the state. The host calls
// this before destroying the scene so no dangling reference survives.
func (s *EventState) Reset() {
	s.RootWidget = nil
	s.hovered = nil
	s.dragged = nil
}
