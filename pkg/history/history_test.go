package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAction struct {
	name    string
	undos   int
	redos   int
	undoErr error
}

func (f *fakeAction) Name() string { return f.name }
func (f *fakeAction) Undo() error  { f.undos++; return f.undoErr }
func (f *fakeAction) Redo() error  { f.redos++; return nil }

func TestUndoRedo(t *testing.T) {
	s := NewState()
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())

	a := &fakeAction{name: "add module"}
	s.Push(a)
	assert.True(t, s.CanUndo())
	assert.Equal(t, "add module", s.UndoName())

	require.NoError(t, s.Undo())
	assert.Equal(t, 1, a.undos)
	assert.False(t, s.CanUndo())
	assert.True(t, s.CanRedo())

	require.NoError(t, s.Redo())
	assert.Equal(t, 1, a.redos)
	assert.True(t, s.CanUndo())
}

func TestUndoEmptyIsNoOp(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Undo())
	require.NoError(t, s.Redo())
}

func TestPushTruncatesRedoTail(t *testing.T) {
	s := NewState()
	a := &fakeAction{name: "a"}
	b := &fakeAction{name: "b"}
	s.Push(a)
	s.Push(b)

	require.NoError(t, s.Undo())
	require.True(t, s.CanRedo())

	c := &fakeAction{name: "c"}
	s.Push(c)
	assert.False(t, s.CanRedo())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "c", s.UndoName())
}

func TestUndoErrorKeepsPosition(t *testing.T) {
	s := NewState()
	a := &fakeAction{name: "a", undoErr: errors.New("boom")}
	s.Push(a)

	require.Error(t, s.Undo())
	assert.True(t, s.CanUndo())
}

func TestClear(t *testing.T) {
	s := NewState()
	s.Push(&fakeAction{name: "a"})
	s.Push(&fakeAction{name: "b"})

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
}
