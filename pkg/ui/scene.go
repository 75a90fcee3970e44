package ui

import (
	"github.com/Wasted-Audio/Cardinal/pkg/patch"
)

// ScrollState is the rack viewport position.
type ScrollState struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64
}

// Reset recenters the viewport at default zoom.
func (s *ScrollState) Reset() {
	s.OffsetX = 0
	s.OffsetY = 0
	s.Zoom = 1
}

// Scene is the root widget of the rack view. It is registered as the
// event state's root on construction and owns the rack scroll state.
type Scene struct {
	events *EventState
	patch  *patch.Manager

	// RackScroll is the rack viewport. The host resets it after the
	// template patch loads so every run starts from the same view.
	RackScroll ScrollState
}

// NewScene builds the scene over the patch session and registers it as
// the event root.
func NewScene(events *EventState, patchMgr *patch.Manager) *Scene {
	s := &Scene{
		events: events,
		patch:  patchMgr,
	}
	s.RackScroll.Reset()
	events.SetRoot(s)
	return s
}

// Name implements Widget.
func (s *Scene) Name() string {
	return "RackScene"
}

// Patch returns the patch session the scene renders.
func (s *Scene) Patch() *patch.Manager {
	return s.patch
}
