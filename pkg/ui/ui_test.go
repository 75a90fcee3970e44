package ui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wasted-Audio/Cardinal/pkg/engine"
	"github.com/Wasted-Audio/Cardinal/pkg/history"
	"github.com/Wasted-Audio/Cardinal/pkg/patch"
)

func newTestScene() *Scene {
	mgr := patch.NewManager(engine.New(), history.NewState(), "test")
	return NewScene(NewEventState(), mgr)
}

func TestSceneRegistersAsEventRoot(t *testing.T) {
	events := NewEventState()
	mgr := patch.NewManager(engine.New(), history.NewState(), "test")

	scene := NewScene(events, mgr)
	assert.Same(t, Widget(scene), events.RootWidget)
	assert.Equal(t, "RackScene", scene.Name())
}

func TestEventStateReset(t *testing.T) {
	events := NewEventState()
	scene := NewScene(events, patch.NewManager(engine.New(), history.NewState(), "test"))

	events.Hover(scene)
	events.StartDrag(scene)
	require.NotNil(t, events.Hovered())
	require.NotNil(t, events.Dragged())

	events.Reset()
	assert.Nil(t, events.RootWidget)
	assert.Nil(t, events.Hovered())
	assert.Nil(t, events.Dragged())
}

func TestScrollReset(t *testing.T) {
	scene := newTestScene()
	scene.RackScroll.OffsetX = 120
	scene.RackScroll.OffsetY = -40
	scene.RackScroll.Zoom = 0.5

	scene.RackScroll.Reset()
	assert.Equal(t, float64(0), scene.RackScroll.OffsetX)
	assert.Equal(t, float64(0), scene.RackScroll.OffsetY)
	assert.Equal(t, float64(1), scene.RackScroll.Zoom)
}

func TestWindowSetupState(t *testing.T) {
	w := NewWindow(newTestScene())
	assert.Equal(t, "Cardinal", w.Title())
	assert.False(t, w.Visible())

	w.SetTitle("Cardinal v1.0")
	w.SetResizable(true)
	w.Show()

	assert.Equal(t, "Cardinal v1.0", w.Title())
	assert.True(t, w.Visible())
}

func TestSettings(t *testing.T) {
	defer Apply(Settings{})

	Apply(Settings{
		ShowTips:    true,
		CableColors: []string{"#f3374b", "#ffb437", "#00b56e"},
	})

	got := CurrentSettings()
	assert.True(t, got.ShowTips)
	assert.Len(t, got.CableColors, 3)

	assert.Equal(t, "#f3374b", CableColor(0))
	assert.Equal(t, "#00b56e", CableColor(2))
	// Palette cycles.
	assert.Equal(t, "#f3374b", CableColor(3))
}

func TestCableColorEmptyPalette(t *testing.T) {
	defer Apply(Settings{})
	Apply(Settings{})
	assert.Equal(t, "", CableColor(0))
}

func TestWindowRunStopsOnContextCancel(t *testing.T) {
	w := NewWindow(newTestScene())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancel")
	}
}

func TestWindowRunStopsOnClose(t *testing.T) {
	w := NewWindow(newTestScene())

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background()) }()

	w.Close()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Close")
	}

	// Close is idempotent.
	w.Close()
}
