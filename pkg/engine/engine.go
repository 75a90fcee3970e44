// Package engine wraps the audio-synthesis engine for the host. Signal
// processing itself lives behind an external DSP backend; this layer
// only owns the engine's lifecycle, its run parameters, and the module
// instances the patch manager hands it.
package engine

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
)

// Module is a single DSP module instance owned by the engine.
type Module struct {
	ID    int64  `json:"id"`
	Slug  string `json:"slug"`
	Label string `json:"label,omitempty"`
}

// Cable connects an output port of one module to an input port of
// another.
type Cable struct {
	ID       int64  `json:"id"`
	OutputID int64  `json:"output_id"`
	InputID  int64  `json:"input_id"`
	Color    string `json:"color,omitempty"`
}

// Engine owns the DSP module graph for a run. The audio thread is an
// internal concern of the DSP backend; everything here is called from
// the single setup/teardown thread.
type Engine struct {
	mu         sync.Mutex
	sampleRate float64
	modules    map[int64]*Module
	cables     map[int64]*Cable
	nextID     int64
}

// New constructs an empty engine. The sample rate must be bound with
// SetSampleRate before modules can run.
func New() *Engine {
	return &Engine{
		modules: make(map[int64]*Module),
		cables:  make(map[int64]*Cable),
		nextID:  1,
	}
}

// SetSampleRate binds the engine's sample rate in Hz.
func (e *Engine) SetSampleRate(rate float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sampleRate = rate
	logger.Debug("Engine sample rate bound", logger.KeySampleRate, rate)
}

// SampleRate returns the currently bound sample rate.
func (e *Engine) SampleRate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sampleRate
}

// AddModule instantiates a module for the given plugin slug and adds it
// to the graph.
func (e *Engine) AddModule(slug string) *Module {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := &Module{ID: e.nextID, Slug: slug}
	e.nextID++
	e.modules[m.ID] = m
	return m
}

// RemoveModule detaches a module and its cables from the graph.
func (e *Engine) RemoveModule(id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.modules[id]; !ok {
		return fmt.Errorf("module %d not found", id)
	}

	for cid, c := range e.cables {
		if c.OutputID == id || c.InputID == id {
			delete(e.cables, cid)
		}
	}
	delete(e.modules, id)
	return nil
}

// AddCable connects two modules.
func (e *Engine) AddCable(outputID, inputID int64, color string) (*Cable, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.modules[outputID]; !ok {
		return nil, fmt.Errorf("output module %d not found", outputID)
	}
	if _, ok := e.modules[inputID]; !ok {
		return nil, fmt.Errorf("input module %d not found", inputID)
	}

	c := &Cable{ID: e.nextID, OutputID: outputID, InputID: inputID, Color: color}
	e.nextID++
	e.cables[c.ID] = c
	return c, nil
}

// ModuleCount returns the number of modules in the graph.
func (e *Engine) ModuleCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.modules)
}

// CableCount returns the number of cables in the graph.
func (e *Engine) CableCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.cables)
}

// Modules returns a stable snapshot of the module graph, ordered by
// module ID.
func (e *Engine) Modules() []Module {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Module, 0, len(e.modules))
	for _, m := range e.modules {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Cables returns a stable snapshot of the cable list, ordered by cable
// ID.
func (e *Engine) Cables() []Cable {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Cable, 0, len(e.cables))
	for _, c := range e.cables {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Clear removes every module and cable. Used when the patch manager
// releases patch-owned engine resources.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.modules = make(map[int64]*Module)
	e.cables = make(map[int64]*Cable)
}
