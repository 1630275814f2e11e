// Package canvas implements the drawing surface as a software raster buffer,
// independent of any display. Pointer input drives a small stroke state
// machine; scaling goes through filtered resampling so content survives
// resizes without distortion.
package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// Surface owns a pixel buffer sized to match its visible container.
// A resize requested while a stroke is in progress is deferred and applied
// at EndStroke, so the in-flight path is never rasterized against a
// reallocated buffer.
type Surface struct {
	buf  *image.RGBA
	bg   color.RGBA
	seed image.Image // last loaded base image, re-applied by seeded Clear

	tool    Tool
	stroker Stroker
	pending *image.Point // deferred resize target
}

// Tool is the current stroke tool state. Ephemeral, never persisted.
type Tool struct {
	Color color.RGBA
	Width int
	Erase bool
}

// DefaultBackground matches the paper color the eraser paints with.
var DefaultBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// NewSurface allocates a surface filled with the background color.
// Non-positive dimensions are a programming error and are rejected.
func NewSurface(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: invalid surface size %dx%d", w, h)
	}
	s := &Surface{
		bg:   DefaultBackground,
		tool: Tool{Color: color.RGBA{A: 0xFF}, Width: 4},
	}
	s.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	s.fill()
	return s, nil
}

// Size returns the buffer's current pixel dimensions.
func (s *Surface) Size() (int, int) {
	b := s.buf.Bounds()
	return b.Dx(), b.Dy()
}

// SetTool replaces the current tool state. Width is clamped to at least 1.
func (s *Surface) SetTool(t Tool) {
	if t.Width < 1 {
		t.Width = 1
	}
	s.tool = t
}

// CurrentTool returns the current tool state.
func (s *Surface) CurrentTool() Tool { return s.tool }

// Resize reallocates the buffer at the new size, preserving content: the
// prior pixels are re-composited centered and uniformly scaled to fit,
// letterboxed against the background, never stretched. While a stroke is
// active the resize is deferred until EndStroke.
func (s *Surface) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("canvas: invalid resize to %dx%d", w, h)
	}
	if cw, ch := s.Size(); cw == w && ch == h {
		return nil
	}
	if s.stroker.Active() {
		s.pending = &image.Point{X: w, Y: h}
		return nil
	}
	prev := s.buf
	s.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	s.fill()
	s.compositeFit(prev)
	return nil
}

// LoadImage composites src centered and aspect-fit, exactly as Resize does
// for prior content, and retains it as the seed for seeded clears.
func (s *Surface) LoadImage(src image.Image) error {
	if src == nil || src.Bounds().Empty() {
		return fmt.Errorf("canvas: empty source image")
	}
	s.seed = src
	s.compositeFit(src)
	return nil
}

// Snapshot serializes the buffer to PNG. Lossless and portable across
// surface instances.
func (s *Surface) Snapshot() ([]byte, error) {
	var out bytes.Buffer
	if err := png.Encode(&out, s.buf); err != nil {
		return nil, fmt.Errorf("canvas: encode snapshot: %w", err)
	}
	return out.Bytes(), nil
}

// DecodeSnapshot decodes a snapshot produced by Snapshot.
func DecodeSnapshot(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("canvas: decode snapshot: %w", err)
	}
	return img, nil
}

// Clear refills the surface with the background color. With restoreSeed the
// last loaded base image is re-composited, so a stage that inherited a
// drawing keeps it and only the user's edits are erased. Which mode a stage
// uses is the stage's configuration, not surface policy.
func (s *Surface) Clear(restoreSeed bool) {
	s.fill()
	if restoreSeed && s.seed != nil {
		s.compositeFit(s.seed)
	}
}

// Image exposes the buffer for rendering and tests. Callers must not keep
// the reference across a Resize.
func (s *Surface) Image() *image.RGBA { return s.buf }

// At reports the pixel at (x, y).
func (s *Surface) At(x, y int) color.RGBA {
	return s.buf.RGBAAt(x, y)
}

func (s *Surface) fill() {
	draw.Draw(s.buf, s.buf.Bounds(), image.NewUniform(s.bg), image.Point{}, draw.Src)
}

// compositeFit draws src centered, scaled by min(dw/sw, dh/sh).
func (s *Surface) compositeFit(src image.Image) {
	dst := s.buf.Bounds()
	target := FitRect(dst, src.Bounds().Dx(), src.Bounds().Dy())
	xdraw.CatmullRom.Scale(s.buf, target, src, src.Bounds(), xdraw.Over, nil)
}

// FitRect returns the centered rectangle inside bounds that preserves the
// aspect ratio of a srcW x srcH image under uniform scaling.
func FitRect(bounds image.Rectangle, srcW, srcH int) image.Rectangle {
	dw, dh := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 || dw <= 0 || dh <= 0 {
		return image.Rectangle{}
	}
	scale := float64(dw) / float64(srcW)
	if s := float64(dh) / float64(srcH); s < scale {
		scale = s
	}
	w := int(float64(srcW)*scale + 0.5)
	h := int(float64(srcH)*scale + 0.5)
	x0 := bounds.Min.X + (dw-w)/2
	y0 := bounds.Min.Y + (dh-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}
