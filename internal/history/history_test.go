package history

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HyperSoWeak/whiteboard/internal/scene"
)

func sceneWith(n int) scene.Scene {
	s := make(scene.Scene, 0, n)
	for i := 0; i < n; i++ {
		e := scene.NewElement(scene.TypePen, scene.Point{X: float32(i), Y: float32(i)}, color.NRGBA{A: 255}, 2)
		e.Resize(scene.Point{X: float32(i + 10), Y: float32(i + 10)})
		s = append(s, e)
	}
	return s
}

func TestUndoRedoRoundTrip(t *testing.T) {
	const n = 5
	l := NewLog()
	for i := 1; i <= n; i++ {
		l.Commit(sceneWith(i))
	}
	final := sceneWith(n)

	var last scene.Scene
	for i := 0; i < n; i++ {
		s, ok := l.Undo()
		require.True(t, ok, "undo %d", i)
		last = s
	}
	assert.Empty(t, last, "n undos from n commits reach the empty scene")

	for i := 0; i < n; i++ {
		s, ok := l.Redo()
		require.True(t, ok, "redo %d", i)
		last = s
	}
	assert.Equal(t, len(final), len(last))
	for i := range final {
		assert.Equal(t, final[i].Points, last[i].Points, fmt.Sprintf("element %d", i))
	}
}

func TestBoundaryNoOps(t *testing.T) {
	l := NewLog()

	_, ok := l.Undo()
	assert.False(t, ok, "undo on the empty initial state")
	_, ok = l.Redo()
	assert.False(t, ok, "redo with nothing undone")

	l.Commit(sceneWith(1))
	_, ok = l.Redo()
	assert.False(t, ok, "redo at the latest snapshot")

	_, ok = l.Undo()
	require.True(t, ok)
	_, ok = l.Undo()
	assert.False(t, ok, "second undo falls off the initial state")
}

func TestCommitTruncatesRedoEntries(t *testing.T) {
	l := NewLog()
	l.Commit(sceneWith(1))
	l.Commit(sceneWith(2))
	l.Commit(sceneWith(3))

	_, ok := l.Undo()
	require.True(t, ok)
	_, ok = l.Undo()
	require.True(t, ok)

	branch := sceneWith(7)
	l.Commit(branch)

	// The overwritten future is gone.
	_, ok = l.Redo()
	assert.False(t, ok)

	s, ok := l.Undo()
	require.True(t, ok)
	assert.Len(t, s, 1, "undo lands on the first snapshot, not a stale branch")
}

func TestSnapshotsAreIsolated(t *testing.T) {
	l := NewLog()
	live := sceneWith(1)
	l.Commit(live)

	// Mutating the live scene after commit must not leak into history.
	live[0].Translate(100, 100)
	_, ok := l.Undo()
	require.True(t, ok)
	restored, ok := l.Redo()
	require.True(t, ok)

	assert.Equal(t, float32(0), restored[0].Points[0].X)
}

func TestCanUndoCanRedo(t *testing.T) {
	l := NewLog()
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())

	l.Commit(sceneWith(1))
	assert.True(t, l.CanUndo())
	assert.False(t, l.CanRedo())

	_, _ = l.Undo()
	assert.False(t, l.CanUndo())
	assert.True(t, l.CanRedo())
}
