// Package history provides linear undo/redo over full-scene snapshots.
package history

import "github.com/HyperSoWeak/whiteboard/internal/scene"

// Log records one snapshot per committed user action. The cursor points
// at the snapshot that is currently live; -1 means the empty initial
// scene before anything was drawn.
type Log struct {
	snapshots []scene.Scene
	cursor    int
}

func NewLog() *Log {
	return &Log{cursor: -1}
}

// Commit appends a snapshot of s and makes it current. Any redo entries
// past the cursor are discarded, standard linear-undo truncation.
func (l *Log) Commit(s scene.Scene) {
	l.snapshots = append(l.snapshots[:l.cursor+1], s.Clone())
	l.cursor = len(l.snapshots) - 1
}

// Undo steps the cursor back one snapshot and returns the scene to
// restore. Stepping back from the first snapshot yields the empty scene.
// At the empty initial state it reports false and returns nothing.
func (l *Log) Undo() (scene.Scene, bool) {
	if l.cursor < 0 {
		return nil, false
	}
	l.cursor--
	return l.current(), true
}

// Redo re-advances the cursor after an undo. At the newest snapshot it
// reports false.
func (l *Log) Redo() (scene.Scene, bool) {
	if l.cursor >= len(l.snapshots)-1 {
		return nil, false
	}
	l.cursor++
	return l.current(), true
}

func (l *Log) CanUndo() bool { return l.cursor >= 0 }

func (l *Log) CanRedo() bool { return l.cursor < len(l.snapshots)-1 }

// current returns a copy of the snapshot under the cursor; callers own
// the returned scene and may mutate it freely.
func (l *Log) current() scene.Scene {
	if l.cursor < 0 {
		return scene.Scene{}
	}
	return l.snapshots[l.cursor].Clone()
}
