package pathrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityDevice(p Pointf) Point { return RoundPoint(p) }

func TestRecorderTriangle(t *testing.T) {
	r := NewRecorder(NewPath(), identityDevice)
	r.MoveTo(0, 0)
	r.LineTo(10, 0)
	r.LineTo(5, 10)
	r.CloseFigure()

	require.Equal(t, 3, r.Path.Len())
	assert.Equal(t, Move, r.Path.Tag(0))
	assert.Equal(t, Line, r.Path.Tag(1))
	assert.True(t, r.Path.Tag(2).Closed())
	assert.NoError(t, r.Path.checkInvariants())
}

func TestRecorderEnsureStrokeAfterClose(t *testing.T) {
	r := NewRecorder(NewPath(), identityDevice)
	r.MoveTo(0, 0)
	r.LineTo(10, 0)
	r.CloseFigure()
	// A further LineTo after a Close must start a new stroke (an
	// implicit Move) rather than continuing from the closed figure.
	r.LineTo(20, 0)

	assert.Equal(t, Move, r.Path.Tag(2))
	assert.Equal(t, Point{X: 10, Y: 0}, r.Path.Point(2))
}

func TestRecorderPolygon(t *testing.T) {
	r := NewRecorder(NewPath(), identityDevice)
	r.Polygon([]Pointf{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})

	require.Equal(t, 3, r.Path.Len())
	assert.Equal(t, Move, r.Path.Tag(0))
	assert.True(t, r.Path.Tag(2).Closed())
}

func TestRecorderPolyPolygonRejectsShortContour(t *testing.T) {
	r := NewRecorder(NewPath(), identityDevice)
	err := r.PolyPolygon([]Pointf{{X: 0, Y: 0}}, []int{1})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Equal(t, 0, r.Path.Len())
}

func TestRecorderPolyPolygonTwoContours(t *testing.T) {
	r := NewRecorder(NewPath(), identityDevice)
	pts := []Pointf{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10},
		{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 30},
	}
	err := r.PolyPolygon(pts, []int{3, 3})
	require.NoError(t, err)
	assert.Equal(t, 6, r.Path.Len())
	assert.Equal(t, Move, r.Path.Tag(0))
	assert.Equal(t, Move, r.Path.Tag(3))
	assert.True(t, r.Path.Tag(2).Closed())
	assert.True(t, r.Path.Tag(5).Closed())
}

func TestRecorderPolyDrawRejectsIncompleteBezierAndRollsBack(t *testing.T) {
	r := NewRecorder(NewPath(), identityDevice)
	r.MoveTo(0, 0)
	before := r.Path.Len()

	err := r.PolyDraw([]DrawEntry{
		{Point: Pointf{X: 1, Y: 1}, Tag: Bezier},
		{Point: Pointf{X: 2, Y: 2}, Tag: Bezier},
		// missing third Bezier entry
	})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Equal(t, before, r.Path.Len())
}

func TestRecorderPolyDrawValidBezier(t *testing.T) {
	r := NewRecorder(NewPath(), identityDevice)
	err := r.PolyDraw([]DrawEntry{
		{Point: Pointf{X: 0, Y: 0}, Tag: Move},
		{Point: Pointf{X: 1, Y: 1}, Tag: Bezier},
		{Point: Pointf{X: 2, Y: 2}, Tag: Bezier},
		{Point: Pointf{X: 3, Y: 3}, Tag: Bezier | Close},
	})
	require.NoError(t, err)
	require.Equal(t, 4, r.Path.Len())
	assert.True(t, r.Path.Tag(3).Closed())
	assert.Equal(t, Point{X: 0, Y: 0}, r.Path.CurrentPosition())
}
