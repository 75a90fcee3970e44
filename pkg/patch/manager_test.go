package patch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wasted-Audio/Cardinal/pkg/engine"
	"github.com/Wasted-Audio/Cardinal/pkg/history"
)

func newTestManager() (*Manager, *engine.Engine) {
	eng := engine.New()
	return NewManager(eng, history.NewState(), "test"), eng
}

func writeTemplate(t *testing.T, dir string, p *Patch) string {
	t.Helper()
	path := filepath.Join(dir, "template.vcv")
	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadTemplateMissingIsTolerated(t *testing.T) {
	m, eng := newTestManager()
	m.TemplatePath = filepath.Join(t.TempDir(), "nope", "template.vcv")

	m.LoadTemplate()
	assert.Equal(t, 0, eng.ModuleCount())
	assert.Equal(t, "", m.Path())
}

func TestLoadTemplateUnset(t *testing.T) {
	m, eng := newTestManager()
	m.LoadTemplate()
	assert.Equal(t, 0, eng.ModuleCount())
}

func TestLoadTemplateAppliesGraph(t *testing.T) {
	m, eng := newTestManager()
	m.TemplatePath = writeTemplate(t, t.TempDir(), &Patch{
		Version: "test",
		Modules: []engine.Module{
			{ID: 10, Slug: "Fundamental.VCO"},
			{ID: 20, Slug: "Cardinal.HostAudio2"},
		},
		Cables: []engine.Cable{
			{ID: 30, OutputID: 10, InputID: 20, Color: "#f3374b"},
		},
	})

	m.LoadTemplate()
	assert.Equal(t, 2, eng.ModuleCount())
	assert.Equal(t, 1, eng.CableCount())
	// Template load is not a file session.
	assert.Equal(t, "", m.Path())
}

func TestLoadTemplateCorruptStartsEmpty(t *testing.T) {
	m, eng := newTestManager()
	path := filepath.Join(t.TempDir(), "template.vcv")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))
	m.TemplatePath = path

	// Previous session state is gone and the engine holds an empty patch.
	eng.AddModule("Fundamental.VCO")
	m.LoadTemplate()
	assert.Equal(t, 0, eng.ModuleCount())
	assert.Equal(t, "", m.Path())
}

func TestLoadTemplateDanglingCableStartsEmpty(t *testing.T) {
	m, eng := newTestManager()
	m.TemplatePath = writeTemplate(t, t.TempDir(), &Patch{
		Version: "test",
		Modules: []engine.Module{{ID: 1, Slug: "a"}},
		Cables:  []engine.Cable{{ID: 2, OutputID: 1, InputID: 99}},
	})

	m.LoadTemplate()
	assert.Equal(t, 0, eng.ModuleCount())
	assert.Equal(t, 0, eng.CableCount())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	m, eng := newTestManager()
	vco := eng.AddModule("Fundamental.VCO")
	out := eng.AddModule("Cardinal.HostAudio2")
	_, err := eng.AddCable(vco.ID, out.ID, "#ffb437")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "song.vcv")
	require.NoError(t, m.Save(path))
	assert.Equal(t, path, m.Path())

	m2, eng2 := newTestManager()
	require.NoError(t, m2.Load(path))
	assert.Equal(t, 2, eng2.ModuleCount())
	assert.Equal(t, 1, eng2.CableCount())
	assert.Equal(t, path, m2.Path())
}

func TestLoadMissingFails(t *testing.T) {
	m, _ := newTestManager()
	assert.Error(t, m.Load(filepath.Join(t.TempDir(), "nope.vcv")))
}

func TestLoadDanglingCableFails(t *testing.T) {
	m, _ := newTestManager()
	path := writeTemplate(t, t.TempDir(), &Patch{
		Version: "test",
		Modules: []engine.Module{{ID: 1, Slug: "a"}},
		Cables:  []engine.Cable{{ID: 2, OutputID: 1, InputID: 99}},
	})
	assert.Error(t, m.Load(path))
}

func TestAutosaveWritesIntoScratch(t *testing.T) {
	m, eng := newTestManager()
	eng.AddModule("Fundamental.VCO")
	m.AutosavePath = t.TempDir()

	require.NoError(t, m.Autosave())

	data, err := os.ReadFile(filepath.Join(m.AutosavePath, "patch.json"))
	require.NoError(t, err)

	var p Patch
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Len(t, p.Modules, 1)
	assert.NotEmpty(t, p.ID)
}

func TestAutosaveWithoutPathIsNoOp(t *testing.T) {
	m, _ := newTestManager()
	require.NoError(t, m.Autosave())
}

func TestAutosaveTicker(t *testing.T) {
	m, eng := newTestManager()
	eng.AddModule("Fundamental.VCO")
	m.AutosavePath = t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.StartAutosave(ctx, 10*time.Millisecond)

	file := filepath.Join(m.AutosavePath, "patch.json")
	require.Eventually(t, func() bool {
		_, err := os.Stat(file)
		return err == nil
	}, 2*time.Second, 5*time.Millisecond)

	m.StopAutosave()
}

func TestStopAutosaveWithoutStart(t *testing.T) {
	m, _ := newTestManager()
	m.StopAutosave()
}

func TestClearReleasesEngineState(t *testing.T) {
	m, eng := newTestManager()
	a := eng.AddModule("a")
	b := eng.AddModule("b")
	_, err := eng.AddCable(a.ID, b.ID, "")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "song.vcv")
	require.NoError(t, m.Save(path))

	m.Clear()
	assert.Equal(t, 0, eng.ModuleCount())
	assert.Equal(t, 0, eng.CableCount())
	assert.Equal(t, "", m.Path())
}
