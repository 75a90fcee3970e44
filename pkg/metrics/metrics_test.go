package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordersAreNoOpsWhenDisabled(t *testing.T) {
	if IsEnabled() {
		t.Skip("metrics already initialized by another test binary state")
	}

	// None of these may panic before Init.
	SetEngineParams(48000, 512)
	ObservePatchLoad("template")
	ObserveAutosave(1.5)
	SetActiveModules(3)

	assert.Nil(t, Registry())
}

func TestInitAndRecord(t *testing.T) {
	Init()
	require.True(t, IsEnabled())
	require.NotNil(t, Registry())

	// Init is idempotent.
	reg := Registry()
	Init()
	assert.Same(t, reg, Registry())

	SetEngineParams(48000, 512)
	ObservePatchLoad("template")
	ObservePatchLoad("template")
	ObservePatchLoad("default")
	ObserveAutosave(2.0)
	SetActiveModules(5)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["cardinal_engine_sample_rate_hz"])
	assert.True(t, names["cardinal_patch_loads_total"])
	assert.True(t, names["cardinal_autosaves_total"])

	assert.Equal(t, float64(2), testutil.ToFloat64(host.patchLoads.WithLabelValues("template")))
	assert.Equal(t, float64(1), testutil.ToFloat64(host.autosaves))
	assert.Equal(t, float64(5), testutil.ToFloat64(host.modulesActive))
}

func TestNewServer(t *testing.T) {
	Init()

	s := NewServer(9090)
	require.NotNil(t, s)
	assert.Equal(t, 9090, s.Port())
}
