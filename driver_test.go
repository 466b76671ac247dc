package pathrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverRectangleAndPolygon(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.BeginPath())
	d := ctx.Driver()

	d.Rectangle(0, 0, 10, 10)
	d.Polygon([]Pointf{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 25, Y: 30}})

	require.NoError(t, ctx.EndPath())
	n, err := ctx.GetPath(nil, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, n) // 4 rectangle entries + 3 polygon entries
}

func TestDriverPolyPolygonPropagatesError(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.BeginPath())
	d := ctx.Driver()

	err := d.PolyPolygon([]Pointf{{X: 0, Y: 0}}, []int{1})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDriverArcNoOpOnDegenerateBox(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.BeginPath())
	d := ctx.Driver()

	err := d.Arc(5, 0, 5, 10, 5, 0, 5, 10, ArcClockwise, 0)
	require.NoError(t, err)
	require.NoError(t, ctx.EndPath())
	n, _ := ctx.GetPath(nil, nil, 0)
	assert.Equal(t, 0, n)
}

func TestAbortPathRecordingKeepsPreviousCommitted(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.BeginPath())
	ctx.Driver().MoveTo(0, 0)
	ctx.Driver().LineTo(5, 5)
	require.NoError(t, ctx.EndPath())

	require.NoError(t, ctx.BeginPath())
	ctx.Driver().MoveTo(9, 9)
	require.NoError(t, ctx.AbortPathRecording())

	n, err := ctx.GetPath(nil, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
