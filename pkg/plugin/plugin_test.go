package plugin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDestroyOnce(t *testing.T) {
	resetForTest()

	require.NoError(t, InitStatic())
	assert.Error(t, InitStatic())

	require.NoError(t, DestroyStatic())
	assert.Error(t, DestroyStatic())
}

func TestDestroyWithoutInit(t *testing.T) {
	resetForTest()
	assert.Error(t, DestroyStatic())
}

func TestListIsOrdered(t *testing.T) {
	resetForTest()
	require.NoError(t, InitStatic())
	defer DestroyStatic()

	list := List()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Slug, list[i].Slug)
	}
}

func TestFindModel(t *testing.T) {
	resetForTest()
	require.NoError(t, InitStatic())
	defer DestroyStatic()

	p, m, err := FindModel("Fundamental.VCO")
	require.NoError(t, err)
	assert.Equal(t, "Fundamental", p.Slug)
	assert.Equal(t, "VCO", m.Slug)

	_, _, err = FindModel("VCO")
	assert.Error(t, err)
	_, _, err = FindModel("Nope.VCO")
	assert.Error(t, err)
	_, _, err = FindModel("Fundamental.Nope")
	assert.Error(t, err)
}

func TestBrowse(t *testing.T) {
	resetForTest()
	require.NoError(t, InitStatic())
	defer DestroyStatic()

	entries := Browse()
	require.Equal(t, ModelCount(), len(entries))
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Ref(), entries[i].Ref())
	}
}

func TestSearch(t *testing.T) {
	resetForTest()
	require.NoError(t, InitStatic())
	defer DestroyStatic()

	// Empty query returns everything.
	assert.Len(t, Search(""), ModelCount())

	byModel := Search("vco")
	require.NotEmpty(t, byModel)
	for _, e := range byModel {
		assert.Contains(t, strings.ToLower(e.Ref()), "vco")
	}

	byTag := Search("oscillator")
	require.NotEmpty(t, byTag)

	assert.Empty(t, Search("definitely-not-a-module"))
}

func TestModelCount(t *testing.T) {
	resetForTest()
	require.NoError(t, InitStatic())
	defer DestroyStatic()

	assert.Greater(t, ModelCount(), 0)

	want := 0
	for _, p := range List() {
		want += len(p.Models)
	}
	assert.Equal(t, want, ModelCount())
}
