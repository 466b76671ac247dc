package pathrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePath() *Path {
	p := NewPath()
	p.append(Point{X: 0, Y: 0}, Move)
	p.append(Point{X: 10, Y: 0}, Line)
	p.append(Point{X: 10, Y: 10}, Line)
	p.append(Point{X: 0, Y: 10}, Line|Close)
	return p
}

func TestToRegionEmptyPath(t *testing.T) {
	region, err := ToRegion(NewPath(), FillAlternate, ScanlineRegionConstructor{})
	require.NoError(t, err)
	assert.Nil(t, region)
}

func TestToRegionSquareProducesOneSpanPerRow(t *testing.T) {
	region, err := ToRegion(squarePath(), FillAlternate, ScanlineRegionConstructor{})
	require.NoError(t, err)
	sr, ok := region.(*ScanlineRegion)
	require.True(t, ok)
	assert.Equal(t, 10, len(sr.Spans))
	for _, s := range sr.Spans {
		assert.Equal(t, 0, s.X0)
		assert.Equal(t, 10, s.X1)
	}
}

func TestToRegionRejectsUnflattenedPath(t *testing.T) {
	p := NewPath()
	p.append(Point{X: 0, Y: 0}, Move)
	p.append(Point{X: 1, Y: 1}, Bezier)
	p.append(Point{X: 2, Y: 2}, Bezier)
	p.append(Point{X: 3, Y: 3}, Bezier)

	_, err := ToRegion(p, FillAlternate, ScanlineRegionConstructor{})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestToRegionNestedRingsUnderWindingVsAlternate(t *testing.T) {
	// Outer square 0..20 wound clockwise, inner square 5..15 wound the
	// same direction: under the nonzero rule the inner square is NOT a
	// hole (same winding direction reinforces); under alternate it is.
	p := NewPath()
	p.append(Point{X: 0, Y: 0}, Move)
	p.append(Point{X: 20, Y: 0}, Line)
	p.append(Point{X: 20, Y: 20}, Line)
	p.append(Point{X: 0, Y: 20}, Line|Close)
	p.append(Point{X: 5, Y: 5}, Move)
	p.append(Point{X: 15, Y: 5}, Line)
	p.append(Point{X: 15, Y: 15}, Line)
	p.append(Point{X: 5, Y: 15}, Line|Close)

	alt, err := ToRegion(p, FillAlternate, ScanlineRegionConstructor{})
	require.NoError(t, err)
	winding, err := ToRegion(p, FillWinding, ScanlineRegionConstructor{})
	require.NoError(t, err)

	altSpans := alt.(*ScanlineRegion).Spans
	windSpans := winding.(*ScanlineRegion).Spans

	altRowSpans := 0
	windRowSpans := 0
	for _, s := range altSpans {
		if s.Y == 10 {
			altRowSpans++
		}
	}
	for _, s := range windSpans {
		if s.Y == 10 {
			windRowSpans++
		}
	}
	// alternate punches a hole (two spans on the middle row); winding
	// does not (one span spanning the whole row).
	assert.Equal(t, 2, altRowSpans)
	assert.Equal(t, 1, windRowSpans)
}
