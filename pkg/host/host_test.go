package host

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wasted-Audio/Cardinal/pkg/ui"
)

func clearForTest(t *testing.T) {
	t.Helper()
	currentMu.Lock()
	currentCtx = nil
	currentMu.Unlock()
}

func TestNewBuildsFullGraph(t *testing.T) {
	clearForTest(t)

	ctx, err := New(Options{Version: "test", SampleRate: 48000, BufferSize: 512})
	require.NoError(t, err)
	defer func() {
		ctx.Close()
		require.NoError(t, ClearCurrent())
	}()

	assert.Equal(t, float64(48000), ctx.SampleRate)
	assert.Equal(t, 512, ctx.BufferSize)
	require.NotNil(t, ctx.Engine)
	require.NotNil(t, ctx.History)
	require.NotNil(t, ctx.Patch)
	require.NotNil(t, ctx.Event)
	require.NotNil(t, ctx.Scene)
	require.NotNil(t, ctx.Window)

	assert.Equal(t, float64(48000), ctx.Engine.SampleRate())
	// The scene is wired as the event root.
	assert.Same(t, ui.Widget(ctx.Scene), ctx.Event.RootWidget)
	assert.Same(t, ctx, Current())
}

func TestNewInstallsBeforeBuilding(t *testing.T) {
	clearForTest(t)

	ctx, err := New(Options{Version: "test", SampleRate: 44100})
	require.NoError(t, err)
	defer func() {
		ctx.Close()
		require.NoError(t, ClearCurrent())
	}()

	_, err = New(Options{Version: "test", SampleRate: 44100})
	assert.Error(t, err)
	assert.Same(t, ctx, Current())
}

func TestNewLoadsTemplate(t *testing.T) {
	clearForTest(t)

	dir := t.TempDir()
	template := filepath.Join(dir, "template.vcv")
	data, err := json.Marshal(map[string]any{
		"version": "test",
		"modules": []map[string]any{
			{"id": 1, "slug": "Fundamental.VCO"},
		},
		"cables": []map[string]any{},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(template, data, 0644))

	ctx, err := New(Options{Version: "test", SampleRate: 48000, TemplatePath: template})
	require.NoError(t, err)
	defer func() {
		ctx.Close()
		require.NoError(t, ClearCurrent())
	}()

	assert.Equal(t, 1, ctx.Engine.ModuleCount())
}

func TestNewCorruptTemplateStartsEmpty(t *testing.T) {
	clearForTest(t)

	template := filepath.Join(t.TempDir(), "template.vcv")
	require.NoError(t, os.WriteFile(template, []byte("{nope"), 0644))

	ctx, err := New(Options{Version: "test", SampleRate: 48000, TemplatePath: template})
	require.NoError(t, err)
	defer func() {
		ctx.Close()
		require.NoError(t, ClearCurrent())
	}()

	assert.Equal(t, 0, ctx.Engine.ModuleCount())
	assert.Same(t, ctx, Current())
}

func TestCurrentRegistry(t *testing.T) {
	clearForTest(t)

	assert.Nil(t, Current())
	assert.Error(t, ClearCurrent())

	ctx := &Context{}
	require.NoError(t, SetCurrent(ctx))
	assert.Same(t, ctx, Current())
	assert.Error(t, SetCurrent(&Context{}))

	require.NoError(t, ClearCurrent())
	assert.Nil(t, Current())
	assert.Error(t, ClearCurrent())
}

func TestCloseIsSafeOnPartialGraph(t *testing.T) {
	c := &Context{}
	c.Close()
}
