package ui

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
)

// Window drives the main loop over a scene. In this headless build no
// surface is created; the loop blocks until the context is cancelled,
// the process receives SIGINT or SIGTERM, or Close is called.
type Window struct {
	scene *Scene

	title     string
	resizable bool
	visible   bool

	mu        sync.Mutex
	closeCh   chan struct{}
	closeOnce sync.Once
}

// NewWindow builds the window over the scene.
func NewWindow(scene *Scene) *Window {
	return &Window{
		scene:   scene,
		title:   "Cardinal",
		closeCh: make(chan struct{}),
	}
}

// SetTitle sets the window title used in logs and, on desktop builds,
// the surface caption.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
}

// Title returns the window title.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// SetResizable toggles surface resizability. A no-op surface-wise in
// headless builds, kept so setup code is identical across builds.
func (w *Window) SetResizable(resizable bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resizable = resizable
}

// Show marks the window visible and logs the run banner.
func (w *Window) Show() {
	w.mu.Lock()
	w.visible = true
	title := w.title
	w.mu.Unlock()

	logger.Info("Window shown", "title", title)
	if CurrentSettings().ShowTips {
		logger.Info("Tip: right-click an empty rack space to browse modules")
	}
}

// Visible reports whether Show has been called.
func (w *Window) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Scene returns the scene the window renders.
func (w *Window) Scene() *Scene {
	return w.scene
}

// Run blocks until the context is cancelled, SIGINT or SIGTERM
// arrives, or Close is called. It owns the process main loop the same
// way the desktop build's UI loop does.
func (w *Window) Run(ctx context.Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	logger.Info("Main loop running, press Ctrl+C to quit")

	select {
	case sig := <-sigCh:
		logger.Info("Received signal, shutting down", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Run context cancelled, shutting down")
	case <-w.closeCh:
		logger.Info("Window closed, shutting down")
	}
	return nil
}

// Close requests the main loop to exit. Safe to call more than once
// and before Run.
func (w *Window) Close() {
	w.closeOnce.Do(func() {
		close(w.closeCh)
	})
}
