package tui

import "github.com/charmbracelet/bubbles/viewport"

// viewportSurface adapts a bubbles viewport to the scroll controller. The
// viewport only understands whole-line offsets, so the surface keeps a
// fractional offset of its own and quantizes when pushing to the viewport.
type viewportSurface struct {
	vp     *viewport.Model
	lines  int
	offset float64
}

func newViewportSurface(vp *viewport.Model) *viewportSurface {
	return &viewportSurface{vp: vp}
}

// SetContentLines records how tall the rendered content is. The viewport
// does not expose this, so the model reports it after each rebuild.
func (s *viewportSurface) SetContentLines(lines int) {
	if lines < 0 {
		lines = 0
	}
	s.lines = lines
	if max := s.maxOffset(); s.offset > max {
		s.SetOffset(max)
	}
}

func (s *viewportSurface) Offset() float64 { return s.offset }

func (s *viewportSurface) ContentHeight() float64 { return float64(s.lines) }

func (s *viewportSurface) ViewportHeight() float64 {
	if s.vp == nil {
		return 0
	}
	return float64(s.vp.Height)
}

func (s *viewportSurface) SetOffset(offset float64) {
	if offset < 0 {
		offset = 0
	}
	if max := s.maxOffset(); offset > max {
		offset = max
	}
	s.offset = offset
	if s.vp != nil {
		s.vp.SetYOffset(int(offset))
	}
}

// AdoptViewportOffset picks up offsets changed behind the surface's back,
// e.g. by mouse wheel or viewport key handling. The fractional part is
// dropped only when the whole-line position actually moved.
func (s *viewportSurface) AdoptViewportOffset() {
	if s.vp == nil {
		return
	}
	if int(s.offset) != s.vp.YOffset {
		s.offset = float64(s.vp.YOffset)
	}
}

func (s *viewportSurface) maxOffset() float64 {
	span := s.ContentHeight() - s.ViewportHeight()
	if span < 0 {
		return 0
	}
	return span
}
