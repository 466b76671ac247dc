package pathrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFillSink struct {
	called bool
	region Region
	mode   FillMode
}

func (s *recordingFillSink) Fill(region Region, mode FillMode) error {
	s.called = true
	s.region = region
	s.mode = mode
	return nil
}

type recordingStrokeSink struct {
	called  bool
	outline *Path
}

func (s *recordingStrokeSink) Stroke(outline *Path) error {
	s.called = true
	s.outline = outline
	return nil
}

type recordingClipSink struct {
	called bool
	region Region
}

func (s *recordingClipSink) SetClip(region Region) error {
	s.called = true
	s.region = region
	return nil
}

func newCommittedSquareContext() *Context {
	ctx := NewContext()
	_ = ctx.BeginPath()
	d := ctx.Driver()
	d.Rectangle(0, 0, 10, 10)
	_ = ctx.EndPath()
	return ctx
}

func TestFlattenPathRequiresCommittedPath(t *testing.T) {
	ctx := NewContext()
	err := ctx.FlattenPath(straightFlattener{})
	assert.ErrorIs(t, err, ErrCanNotComplete)
}

func TestFlattenPathNoOpOnLineOnlyPath(t *testing.T) {
	ctx := newCommittedSquareContext()
	require.NoError(t, ctx.FlattenPath(straightFlattener{}))
	n, _ := ctx.GetPath(nil, nil, 0)
	assert.Equal(t, 4, n)
}

func TestWidenPathReplacesCommittedPath(t *testing.T) {
	ctx := newCommittedSquareContext()
	ctx.PenState = Pen{Width: 4, Style: JoinBevel}
	require.NoError(t, ctx.WidenPath(straightFlattener{}))
	n, _ := ctx.GetPath(nil, nil, 0)
	assert.Greater(t, n, 4)
}

func TestPathToRegionClearsCommittedPath(t *testing.T) {
	ctx := newCommittedSquareContext()
	region, err := ctx.PathToRegion(straightFlattener{}, ScanlineRegionConstructor{})
	require.NoError(t, err)
	assert.NotNil(t, region)
	assert.Nil(t, ctx.CommittedPath())
}

func TestFillPathInvokesSinkAndClears(t *testing.T) {
	ctx := newCommittedSquareContext()
	sink := &recordingFillSink{}
	require.NoError(t, ctx.FillPath(straightFlattener{}, ScanlineRegionConstructor{}, sink))
	assert.True(t, sink.called)
	assert.Nil(t, ctx.CommittedPath())
}

func TestStrokePathInvokesSinkAndClears(t *testing.T) {
	ctx := newCommittedSquareContext()
	ctx.PenState = Pen{Width: 2, Style: JoinBevel}
	sink := &recordingStrokeSink{}
	require.NoError(t, ctx.StrokePath(straightFlattener{}, sink))
	assert.True(t, sink.called)
	assert.NotNil(t, sink.outline)
	assert.Nil(t, ctx.CommittedPath())
}

func TestStrokeAndFillPathInvokesBothSinks(t *testing.T) {
	ctx := newCommittedSquareContext()
	ctx.PenState = Pen{Width: 2, Style: JoinBevel}
	fillSink := &recordingFillSink{}
	strokeSink := &recordingStrokeSink{}
	require.NoError(t, ctx.StrokeAndFillPath(straightFlattener{}, ScanlineRegionConstructor{}, fillSink, strokeSink))
	assert.True(t, fillSink.called)
	assert.True(t, strokeSink.called)
	assert.Nil(t, ctx.CommittedPath())
}

func TestSelectClipPathInvokesSink(t *testing.T) {
	ctx := newCommittedSquareContext()
	sink := &recordingClipSink{}
	require.NoError(t, ctx.SelectClipPath(straightFlattener{}, ScanlineRegionConstructor{}, sink))
	assert.True(t, sink.called)
}

func TestStrokePathFailsWithoutCommittedPath(t *testing.T) {
	ctx := NewContext()
	sink := &recordingStrokeSink{}
	assert.ErrorIs(t, ctx.StrokePath(straightFlattener{}, sink), ErrCanNotComplete)
}
