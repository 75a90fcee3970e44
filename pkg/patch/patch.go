// Package patch manages the lifecycle of the loaded patch: template
// bootstrap, load/save, periodic autosave into the scratch directory,
// and final teardown of patch-owned engine state.
package patch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Wasted-Audio/Cardinal/pkg/engine"
)

// autosaveFileName is the patch file written inside the autosave
// directory.
const autosaveFileName = "patch.json"

// Patch is the serialized form of a module graph.
type Patch struct {
	ID      string          `json:"id,omitempty"`
	Version string          `json:"version"`
	Modules []engine.Module `json:"modules"`
	Cables  []engine.Cable  `json:"cables"`
}

// load reads and decodes a patch file.
func load(path string) (*Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read patch %s: %w", path, err)
	}

	var p Patch
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse patch %s: %w", path, err)
	}
	return &p, nil
}

// save encodes and writes a patch file.
func save(path string, p *Patch) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode patch: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write patch %s: %w", path, err)
	}
	return nil
}

// snapshot captures the engine's current graph as a patch.
func snapshot(eng *engine.Engine, version string) *Patch {
	return &Patch{
		Version: version,
		Modules: eng.Modules(),
		Cables:  eng.Cables(),
	}
}

// apply replaces the engine graph with the patch contents. Module and
// cable IDs are reassigned by the engine.
func apply(eng *engine.Engine, p *Patch) error {
	eng.Clear()

	ids := make(map[int64]int64, len(p.Modules))
	for _, m := range p.Modules {
		nm := eng.AddModule(m.Slug)
		nm.Label = m.Label
		ids[m.ID] = nm.ID
	}
	for _, c := range p.Cables {
		out, ok := ids[c.OutputID]
		if !ok {
			return fmt.Errorf("cable %d references unknown output module %d", c.ID, c.OutputID)
		}
		in, ok := ids[c.InputID]
		if !ok {
			return fmt.Errorf("cable %d references unknown input module %d", c.ID, c.InputID)
		}
		if _, err := eng.AddCable(out, in, c.Color); err != nil {
			return err
		}
	}
	return nil
}

// autosaveFile returns the patch path inside an autosave directory.
func autosaveFile(dir string) string {
	return filepath.Join(dir, autosaveFileName)
}
