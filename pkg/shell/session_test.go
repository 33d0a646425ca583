package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/affinetool"
)

func TestNewSessionShowsCanonical(t *testing.T) {
	rec := &Recorder{}
	s, err := NewSession(nil, rec)
	require.NoError(t, err)

	require.Len(t, rec.Shapes, 1)
	assert.Equal(t, affinetool.Canonical(), rec.Shapes[0])
	assert.Equal(t, 1, rec.Flushes)
	assert.Equal(t, affinetool.Reset, s.Last())
}

func TestHandleReplacesShape(t *testing.T) {
	rec := &Recorder{}
	s, err := NewSession(nil, rec)
	require.NoError(t, err)

	for _, i := range affinetool.Intents() {
		require.NoError(t, s.Handle(i))
		require.Len(t, rec.Shapes, 1, "more than one shape displayed after %v", i)
		assert.Equal(t, s.Current(), rec.Shapes[0])
	}
	assert.Equal(t, 1+len(affinetool.Intents()), rec.Flushes)
}

func TestHandleNotCumulative(t *testing.T) {
	rec := &Recorder{}
	s, err := NewSession(nil, rec)
	require.NoError(t, err)

	hm := affinetool.Homogenize(affinetool.Canonical())
	expected := affinetool.Translate(2, 1, hm)

	require.NoError(t, s.Handle(affinetool.RotateIntent))
	require.NoError(t, s.Handle(affinetool.TranslateIntent))
	assert.Equal(t, expected, s.Current())

	require.NoError(t, s.Handle(affinetool.ScaleDown))
	require.NoError(t, s.Handle(affinetool.TranslateIntent))
	assert.Equal(t, expected, s.Current())
}

func TestReset(t *testing.T) {
	rec := &Recorder{}
	s, err := NewSession(nil, rec)
	require.NoError(t, err)

	require.NoError(t, s.Handle(affinetool.ReflectIntent))
	require.NoError(t, s.Handle(affinetool.Reset))
	assert.Equal(t, affinetool.Canonical(), s.Current())
}

func TestHandleName(t *testing.T) {
	s, err := NewSession(nil, &Recorder{})
	require.NoError(t, err)

	i, err := s.HandleName("scale-up")
	require.NoError(t, err)
	assert.Equal(t, affinetool.ScaleUp, i)

	_, err = s.HandleName("explode")
	assert.True(t, affinetool.IsValidationError(err))
	assert.Equal(t, affinetool.ScaleUp, s.Last())
}

func TestCurrentIsCopy(t *testing.T) {
	s, err := NewSession(nil, &Recorder{})
	require.NoError(t, err)

	c := s.Current()
	c[0].X = 42
	assert.Equal(t, -2.0, s.Current()[0].X)
}

func TestInvalidPolygon(t *testing.T) {
	_, err := NewSession(affinetool.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}, &Recorder{})
	assert.True(t, affinetool.IsValidationError(err))
}

type failingTarget struct{}

func (failingTarget) ClearAndAdd(affinetool.Polygon) error { return errors.New("no canvas") }
func (failingTarget) Flush() error                         { return nil }

func TestTargetError(t *testing.T) {
	_, err := NewSession(nil, failingTarget{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no canvas")
}
