package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	panelHeight    int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 20,
		panelHeight:    8,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	const chrome = 10
	usable := height - chrome
	if usable < 12 {
		usable = 12
	}
	l.panelHeight = usable / 4
	if l.panelHeight < 4 {
		l.panelHeight = 4
	}
	l.viewportHeight = usable - l.panelHeight
	if l.viewportHeight < 6 {
		l.viewportHeight = 6
	}
}

// renderedScript is the prompter body ready for the viewport, plus the line
// each slide starts on so [ and ] can jump between them.
type renderedScript struct {
	lines        []string
	slideAnchors []int
}

// renderScript lays the slides out for the prompter: transform, letter
// spacing, wrapping, optional columns, alignment, and mirroring, in that
// order. Styling colors are applied per line at view time so the highlight
// can move without a rebuild.
func renderScript(slides []string, st promptStyles, viewportWidth int, mirrored bool) renderedScript {
	width := effectiveWidth(st.width, viewportWidth)
	var out renderedScript
	for idx, slide := range slides {
		if idx > 0 {
			out.lines = append(out.lines, "", "")
		}
		out.slideAnchors = append(out.slideAnchors, len(out.lines))

		text := applyTransform(slide, st.transform)
		text = spaceRunes(text, st.letterSpacing)
		block := wrapSlide(text, st, width)
		for _, line := range strings.Split(block, "\n") {
			if mirrored {
				line = mirrorLine(line)
			}
			out.lines = append(out.lines, line)
			if st.lineHeight >= 1.8 {
				out.lines = append(out.lines, "")
			}
		}
	}
	if len(out.lines) == 0 {
		out.lines = []string{""}
	}
	return out
}

func wrapSlide(text string, st promptStyles, width int) string {
	if st.columns <= 1 {
		wrapped := wordwrap.String(text, width)
		return alignBlock(wrapped, st.align, width)
	}

	colWidth := (width - (st.columns-1)*st.columnGap) / st.columns
	if colWidth < 10 {
		colWidth = 10
	}
	wrapped := strings.Split(wordwrap.String(text, colWidth), "\n")
	perColumn := (len(wrapped) + st.columns - 1) / st.columns
	gap := strings.Repeat(" ", st.columnGap)
	var cells []string
	for c := 0; c < st.columns; c++ {
		start := c * perColumn
		if start >= len(wrapped) {
			break
		}
		end := start + perColumn
		if end > len(wrapped) {
			end = len(wrapped)
		}
		column := alignBlock(strings.Join(wrapped[start:end], "\n"), st.align, colWidth)
		if c > 0 {
			column = indentBlock(column, gap)
		}
		cells = append(cells, column)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func alignBlock(block string, align lipgloss.Position, width int) string {
	if align == lipgloss.Left {
		return block
	}
	return lipgloss.NewStyle().Width(width).Align(align).Render(block)
}

func indentBlock(block, prefix string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func effectiveWidth(percent, viewportWidth int) int {
	if percent <= 0 || percent > 100 {
		percent = 80
	}
	width := viewportWidth * percent / 100
	if width < 20 {
		width = 20
	}
	return width
}

// styleLines colors every line and highlights the focus line. The focus
// index is in content coordinates, not screen coordinates.
func styleLines(lines []string, st promptStyles, focus int) string {
	styled := make([]string, len(lines))
	for i, line := range lines {
		if st.highlightOn && i == focus && strings.TrimSpace(line) != "" {
			styled[i] = st.highlight.Render(line)
			continue
		}
		styled[i] = st.text.Render(line)
	}
	return strings.Join(styled, "\n")
}

// slideIndexAt returns which slide the given content line falls in.
func slideIndexAt(anchors []int, line int) int {
	idx := 0
	for i, anchor := range anchors {
		if line >= anchor {
			idx = i
		}
	}
	return idx
}
