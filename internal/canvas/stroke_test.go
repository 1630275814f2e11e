package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrokerTransitions(t *testing.T) {
	var k Stroker
	require.Equal(t, StateIdle, k.State())

	// Extend while idle reports nothing to draw.
	_, ok := k.Extend(image.Pt(5, 5))
	require.False(t, ok)

	seg := k.Begin(image.Pt(1, 1))
	require.Equal(t, StateStroking, k.State())
	require.Equal(t, image.Pt(1, 1), seg.From)

	seg, ok = k.Extend(image.Pt(4, 4))
	require.True(t, ok)
	require.Equal(t, image.Pt(1, 1), seg.From)
	require.Equal(t, image.Pt(4, 4), seg.To)

	require.True(t, k.End())
	require.Equal(t, StateIdle, k.State())
	require.False(t, k.End(), "ending an idle stroker is a no-op")
}

func TestExtendStrokeWithoutBeginDrawsNothing(t *testing.T) {
	s, err := NewSurface(50, 50)
	require.NoError(t, err)

	// A pointer entering the surface already "down".
	s.ExtendStroke(image.Pt(25, 25))

	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			require.Equal(t, DefaultBackground, s.At(x, y),
				"pixel (%d,%d) painted without an active stroke", x, y)
		}
	}
}

func TestStrokePaintsPath(t *testing.T) {
	s, err := NewSurface(100, 100)
	require.NoError(t, err)

	black := color.RGBA{A: 0xFF}
	s.SetTool(Tool{Color: black, Width: 4})
	s.BeginStroke(image.Pt(10, 50))
	s.ExtendStroke(image.Pt(90, 50))
	s.EndStroke()

	// The line itself plus midpoints are painted; far corners are not.
	require.Equal(t, black, s.At(10, 50))
	require.Equal(t, black, s.At(50, 50))
	require.Equal(t, black, s.At(90, 50))
	require.Equal(t, DefaultBackground, s.At(10, 10))
}

func TestEraserPaintsBackground(t *testing.T) {
	s, err := NewSurface(100, 100)
	require.NoError(t, err)

	black := color.RGBA{A: 0xFF}
	s.SetTool(Tool{Color: black, Width: 8})
	s.BeginStroke(image.Pt(50, 50))
	s.EndStroke()
	require.Equal(t, black, s.At(50, 50))

	s.SetTool(Tool{Width: 8, Erase: true})
	s.BeginStroke(image.Pt(50, 50))
	s.EndStroke()
	require.Equal(t, DefaultBackground, s.At(50, 50))
}

func TestResizeDeferredDuringStroke(t *testing.T) {
	s, err := NewSurface(100, 100)
	require.NoError(t, err)

	s.BeginStroke(image.Pt(50, 50))
	require.NoError(t, s.Resize(200, 200))

	// In-progress stroke keeps the old buffer.
	w, h := s.Size()
	require.Equal(t, 100, w)
	require.Equal(t, 100, h)

	s.ExtendStroke(image.Pt(60, 60))
	s.EndStroke()

	// The deferred resize lands once the stroke finishes.
	w, h = s.Size()
	require.Equal(t, 200, w)
	require.Equal(t, 200, h)
}

func TestResizeRejectsZeroDimensions(t *testing.T) {
	s, err := NewSurface(100, 100)
	require.NoError(t, err)
	require.Error(t, s.Resize(0, 50))
	require.Error(t, s.Resize(50, 0))

	// State is untouched by the rejected mutation.
	w, h := s.Size()
	require.Equal(t, 100, w)
	require.Equal(t, 100, h)
}
