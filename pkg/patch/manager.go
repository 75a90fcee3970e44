package patch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
	"github.com/Wasted-Audio/Cardinal/pkg/engine"
	"github.com/Wasted-Audio/Cardinal/pkg/history"
	"github.com/Wasted-Audio/Cardinal/pkg/metrics"
)

// Manager owns the current patch session. It holds the paths the host
// binds at setup and drives the engine graph through load, save,
// autosave and teardown.
type Manager struct {
	engine  *engine.Engine
	history *history.State

	// AutosavePath is the scratch directory autosaves are written
	// into. Empty disables autosave persistence.
	AutosavePath string

	// TemplatePath is the factory template patch. Empty or missing is
	// tolerated: the session starts from an empty patch.
	TemplatePath string

	version string

	mu   sync.Mutex
	path string

	autosaveWG   sync.WaitGroup
	autosaveStop chan struct{}
}

// NewManager constructs a patch manager bound to an engine and a
// history stack.
func NewManager(eng *engine.Engine, hist *history.State, version string) *Manager {
	return &Manager{
		engine:  eng,
		history: hist,
		version: version,
	}
}

// Path returns the file path of the currently loaded patch, or "" for
// an unsaved session.
func (m *Manager) Path() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.path
}

// LoadTemplate loads the factory template into the engine. It never
// fails: a missing, unreadable or unparseable template falls back to
// an empty patch and the session starts from there.
func (m *Manager) LoadTemplate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.engine.Clear()
	m.history.Clear()
	m.path = ""

	if m.TemplatePath == "" {
		logger.Debug("No template path bound, starting with empty patch")
		return
	}

	p, err := load(m.TemplatePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("Template patch missing, starting with empty patch",
				logger.KeyTemplate, m.TemplatePath)
			return
		}
		logger.Warn("Failed to load template patch, starting with empty patch",
			logger.KeyTemplate, m.TemplatePath, logger.Err(err))
		return
	}

	if err := apply(m.engine, p); err != nil {
		m.engine.Clear()
		logger.Warn("Failed to apply template patch, starting with empty patch",
			logger.KeyTemplate, m.TemplatePath, logger.Err(err))
		return
	}

	metrics.ObservePatchLoad("template")
	metrics.SetActiveModules(m.engine.ModuleCount())
	logger.Info("Template patch loaded",
		logger.KeyTemplate, m.TemplatePath,
		logger.KeyModule, m.engine.ModuleCount())
}

// Load replaces the session with the patch at path.
func (m *Manager) Load(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := load(path)
	if err != nil {
		return err
	}
	if err := apply(m.engine, p); err != nil {
		return fmt.Errorf("failed to apply patch %s: %w", path, err)
	}

	m.history.Clear()
	m.path = path
	metrics.ObservePatchLoad("file")
	metrics.SetActiveModules(m.engine.ModuleCount())
	logger.Info("Patch loaded", logger.KeyPatch, path,
		logger.KeyModule, m.engine.ModuleCount())
	return nil
}

// Save writes the current engine graph to path and makes it the
// session's patch file.
func (m *Manager) Save(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := save(path, snapshot(m.engine, m.version)); err != nil {
		return err
	}
	m.path = path
	logger.Info("Patch saved", logger.KeyPatch, path)
	return nil
}

// Autosave writes the current graph into the autosave directory. It is
// a no-op when no autosave path is bound.
func (m *Manager) Autosave() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.autosaveLocked()
}

func (m *Manager) autosaveLocked() error {
	if m.AutosavePath == "" {
		return nil
	}

	start := time.Now()
	if err := save(autosaveFile(m.AutosavePath), snapshot(m.engine, m.version)); err != nil {
		return err
	}

	elapsed := logger.Duration(start)
	metrics.ObserveAutosave(elapsed)
	logger.Debug("Autosaved patch",
		logger.KeyScratch, m.AutosavePath,
		logger.KeyDurationMs, elapsed)
	return nil
}

// StartAutosave runs periodic autosaves until the context is cancelled
// or StopAutosave is called. Interval zero disables the ticker.
func (m *Manager) StartAutosave(ctx context.Context, interval time.Duration) {
	if interval <= 0 || m.AutosavePath == "" {
		return
	}

	m.autosaveStop = make(chan struct{})
	m.autosaveWG.Add(1)
	go func() {
		defer m.autosaveWG.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := m.Autosave(); err != nil {
					logger.Warn("Autosave failed", logger.Err(err))
				}
			case <-ctx.Done():
				return
			case <-m.autosaveStop:
				return
			}
		}
	}()

	logger.Info("Autosave enabled", "interval", interval.String())
}

// StopAutosave stops the autosave ticker and waits for any in-flight
// save to finish.
func (m *Manager) StopAutosave() {
	if m.autosaveStop != nil {
		close(m.autosaveStop)
		m.autosaveStop = nil
	}
	m.autosaveWG.Wait()
}

// Clear releases every patch-owned engine resource and resets the
// session. The host calls this first during teardown, before the
// scratch directory is removed.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.engine.Clear()
	m.history.Clear()
	m.path = ""
	metrics.SetActiveModules(0)
	logger.Debug("Patch cleared")
}
