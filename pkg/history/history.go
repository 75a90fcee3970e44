// Package history tracks undoable edit actions for the current patch
// session. The host constructs one State per process run; actions are
// pushed by editing operations and walked by undo/redo.
package history

import (
	"sync"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
)

// Action is a single reversible edit.
type Action interface {
	// Name describes the action for display ("add module", "move
	// module", ...).
	Name() string
	Undo() error
	Redo() error
}

// State is the undo stack for a session. Pushing a new action discards
// any previously undone actions.
type State struct {
	mu      sync.Mutex
	actions []Action
	// index points one past the last applied action.
	index int
}

// NewState constructs an empty undo stack.
func NewState() *State {
	return &State{}
}

// Push records an applied action, truncating the redo tail.
func (s *State) Push(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.actions = append(s.actions[:s.index], a)
	s.index = len(s.actions)
}

// CanUndo reports whether an action is available to undo.
func (s *State) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index > 0
}

// CanRedo reports whether an undone action is available to redo.
func (s *State) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index < len(s.actions)
}

// Undo reverts the most recent applied action. It is a no-op when the
// stack is empty.
func (s *State) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index == 0 {
		return nil
	}
	a := s.actions[s.index-1]
	if err := a.Undo(); err != nil {
		return err
	}
	s.index--
	logger.Debug("Undid action", "action", a.Name())
	return nil
}

// Redo re-applies the most recently undone action. It is a no-op when
// there is nothing to redo.
func (s *State) Redo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.actions) {
		return nil
	}
	a := s.actions[s.index]
	if err := a.Redo(); err != nil {
		return err
	}
	s.index++
	logger.Debug("Redid action", "action", a.Name())
	return nil
}

// UndoName returns the name of the next action Undo would revert, or
// "" when the stack is empty.
func (s *State) UndoName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == 0 {
		return ""
	}
	return s.actions[s.index-1].Name()
}

// Len returns the number of recorded actions, applied or undone.
func (s *State) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.actions)
}

// Clear drops every recorded action. Called when a new patch replaces
// the session.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = nil
	s.index = 0
}
