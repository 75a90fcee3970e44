package commands

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
	"github.com/Wasted-Audio/Cardinal/pkg/asset"
	"github.com/Wasted-Audio/Cardinal/pkg/engine"
	"github.com/Wasted-Audio/Cardinal/pkg/history"
	"github.com/Wasted-Audio/Cardinal/pkg/patch"
	"github.com/Wasted-Audio/Cardinal/pkg/plugin"
)

func TestWindowTitle(t *testing.T) {
	mgr := patch.NewManager(engine.New(), history.NewState(), "test")
	assert.Equal(t, "Cardinal", windowTitle(mgr))
}

func TestDescribePath(t *testing.T) {
	assert.Equal(t, "(unresolved)", describePath(""))
	dir := t.TempDir()
	assert.Equal(t, dir, describePath(dir))
	assert.Contains(t, describePath("/nope/definitely/missing"), "(missing)")
}

func TestLogResolvedPaths(t *testing.T) {
	t.Cleanup(func() { logger.InitWithWriter(io.Discard, "INFO", "text", false) })

	t.Run("resolved directories and template are always reported", func(t *testing.T) {
		dir := t.TempDir()
		var buf bytes.Buffer
		logger.InitWithWriter(&buf, "INFO", "text", false)

		logResolvedPaths(asset.Paths{
			SystemDir:    dir,
			UserDir:      dir,
			BundlePath:   filepath.Join(dir, "PluginManifests"),
			TemplatePath: filepath.Join(dir, "template.vcv"),
		})

		out := buf.String()
		assert.Contains(t, out, "Asset directories resolved")
		assert.Contains(t, out, "template="+filepath.Join(dir, "template.vcv"))
		assert.NotContains(t, out, "[WARN]")
	})

	t.Run("unresolved system directory still logs then warns", func(t *testing.T) {
		var buf bytes.Buffer
		logger.InitWithWriter(&buf, "INFO", "text", false)

		logResolvedPaths(asset.Paths{})

		out := buf.String()
		assert.Contains(t, out, "Asset directories resolved")
		assert.Contains(t, out, "could not be resolved")
	})

	t.Run("missing system directory still logs then warns", func(t *testing.T) {
		var buf bytes.Buffer
		logger.InitWithWriter(&buf, "INFO", "text", false)

		logResolvedPaths(asset.Paths{SystemDir: "/nope/definitely/missing"})

		out := buf.String()
		assert.Contains(t, out, "Asset directories resolved")
		assert.Contains(t, out, "does not exist")
	})
}

func TestModuleListRows(t *testing.T) {
	list := moduleList([]plugin.Entry{
		{PluginSlug: "Fundamental", ModelSlug: "VCO", ModelName: "VCO", Tags: []string{"Oscillator"}},
		{PluginSlug: "Fundamental", ModelSlug: "VCF", ModelName: "VCF", Tags: []string{"Filter"}},
	})

	rows := list.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Fundamental", "VCO", "VCO", "Oscillator"}, rows[0])
	assert.Len(t, list.Headers(), 4)
}
