// Package host assembles the per-run context graph: engine, undo
// history, patch session, event state, scene and window, built in a
// fixed order with every dependency passed explicitly. One context
// exists per process run and is installed as the process-wide current
// context for the duration of the run.
package host

import (
	"fmt"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
	"github.com/Wasted-Audio/Cardinal/pkg/engine"
	"github.com/Wasted-Audio/Cardinal/pkg/history"
	"github.com/Wasted-Audio/Cardinal/pkg/patch"
	"github.com/Wasted-Audio/Cardinal/pkg/ui"
)

// Options binds the run parameters a context is built with.
type Options struct {
	// Version is stamped into saved patches.
	Version string

	// SampleRate is the engine sample rate in Hz.
	SampleRate float64

	// BufferSize is the engine buffer size in frames.
	BufferSize int

	// AutosavePath is the scratch directory for autosaves. Empty
	// disables autosave persistence.
	AutosavePath string

	// TemplatePath is the factory template patch. Empty or missing
	// starts the session with an empty patch.
	TemplatePath string
}

// Context is the per-run object graph. Members are built in dependency
// order and torn down in reverse; the struct owns all of them.
type Context struct {
	// SampleRate and BufferSize are the run parameters the graph was
	// built with.
	SampleRate float64
	BufferSize int

	Engine  *engine.Engine
	History *history.State
	Patch   *patch.Manager
	Event   *ui.EventState
	Scene   *ui.Scene
	Window  *ui.Window
}

// New builds the context graph and installs it as the current context.
// The current-context slot is claimed first so collaborators that read
// it during construction already see this context. On failure the slot
// is released and no context is left behind.
func New(opts Options) (*Context, error) {
	ctx := &Context{}
	if err := SetCurrent(ctx); err != nil {
		return nil, fmt.Errorf("failed to install context: %w", err)
	}

	ctx.SampleRate = opts.SampleRate
	ctx.BufferSize = opts.BufferSize

	ctx.Engine = engine.New()
	ctx.Engine.SetSampleRate(opts.SampleRate)

	ctx.History = history.NewState()

	ctx.Patch = patch.NewManager(ctx.Engine, ctx.History, opts.Version)
	ctx.Patch.AutosavePath = opts.AutosavePath
	ctx.Patch.TemplatePath = opts.TemplatePath

	ctx.Event = ui.NewEventState()
	ctx.Scene = ui.NewScene(ctx.Event, ctx.Patch)
	ctx.Window = ui.NewWindow(ctx.Scene)

	ctx.Patch.LoadTemplate()
	ctx.Scene.RackScroll.Reset()

	logger.Debug("Context graph built",
		logger.KeySampleRate, opts.SampleRate,
		logger.KeyScratch, opts.AutosavePath)
	return ctx, nil
}

// Close tears the member graph down in reverse construction order:
// window, scene references, event state, patch machinery, engine. It
// does not touch the current-context slot; the caller clears that
// after teardown completes.
func (c *Context) Close() {
	if c.Window != nil {
		c.Window.Close()
	}
	if c.Patch != nil {
		c.Patch.StopAutosave()
	}
	if c.Event != nil {
		c.Event.Reset()
	}
	if c.Engine != nil {
		c.Engine.Clear()
	}
	logger.Debug("Context graph destroyed")
}
