package tui

import (
	"strings"
	"testing"

	"github.com/mfigat/prompt/internal/config"
)

func TestPageLayoutUpdate(t *testing.T) {
	l := newPageLayout()
	l.Update(120, 40)
	if l.viewportWidth != 116 {
		t.Fatalf("viewportWidth = %d, want 116", l.viewportWidth)
	}
	if l.viewportHeight < 6 || l.panelHeight < 4 {
		t.Fatalf("unexpected heights: viewport=%d panel=%d", l.viewportHeight, l.panelHeight)
	}

	l.Update(10, 5)
	if l.viewportWidth != minViewportWidth {
		t.Fatalf("small window should floor viewport width at %d, got %d", minViewportWidth, l.viewportWidth)
	}
	if l.viewportHeight < 6 {
		t.Fatalf("small window should keep a usable viewport, got %d", l.viewportHeight)
	}
}

func TestRenderScriptAnchorsSlides(t *testing.T) {
	st := configStylesForTest()
	r := renderScript([]string{"first slide", "second slide", "third slide"}, st, 80, false)
	if len(r.slideAnchors) != 3 {
		t.Fatalf("anchors = %d, want 3", len(r.slideAnchors))
	}
	if r.slideAnchors[0] != 0 {
		t.Fatalf("first anchor = %d, want 0", r.slideAnchors[0])
	}
	for i := 1; i < len(r.slideAnchors); i++ {
		if r.slideAnchors[i] <= r.slideAnchors[i-1] {
			t.Fatalf("anchors not increasing: %v", r.slideAnchors)
		}
		if line := r.lines[r.slideAnchors[i]]; !strings.Contains(line, "slide") {
			t.Fatalf("anchor %d points at %q", i, line)
		}
	}
}

func TestRenderScriptDoubleSpacing(t *testing.T) {
	st := configStylesForTest()
	single := renderScript([]string{"one two"}, st, 80, false)
	st.lineHeight = 2
	double := renderScript([]string{"one two"}, st, 80, false)
	if len(double.lines) <= len(single.lines) {
		t.Fatalf("line height 2 should add blank lines: %d vs %d", len(double.lines), len(single.lines))
	}
}

func TestRenderScriptMirrors(t *testing.T) {
	st := configStylesForTest()
	r := renderScript([]string{"abc"}, st, 80, true)
	if r.lines[0] != "cba" {
		t.Fatalf("mirrored line = %q, want cba", r.lines[0])
	}
}

func TestRenderScriptColumns(t *testing.T) {
	st := configStylesForTest()
	st.columns = 2
	st.columnGap = 2
	text := "alpha\nbravo\ncharlie\ndelta"
	r := renderScript([]string{text}, st, 60, false)
	if len(r.lines) != 2 {
		t.Fatalf("two columns of four lines should render 2 rows, got %d: %q", len(r.lines), r.lines)
	}
	if !strings.Contains(r.lines[0], "alpha") || !strings.Contains(r.lines[0], "charlie") {
		t.Fatalf("first row should hold both column heads, got %q", r.lines[0])
	}
}

func TestEffectiveWidth(t *testing.T) {
	if got := effectiveWidth(80, 100); got != 80 {
		t.Errorf("effectiveWidth(80%%, 100) = %d, want 80", got)
	}
	if got := effectiveWidth(0, 100); got != 80 {
		t.Errorf("zero percent should fall back to 80%%, got %d", got)
	}
	if got := effectiveWidth(50, 20); got != 20 {
		t.Errorf("narrow viewport should floor at 20, got %d", got)
	}
}

func TestSlideIndexAt(t *testing.T) {
	anchors := []int{0, 10, 25}
	cases := map[int]int{0: 0, 9: 0, 10: 1, 24: 1, 25: 2, 99: 2}
	for line, want := range cases {
		if got := slideIndexAt(anchors, line); got != want {
			t.Errorf("slideIndexAt(%d) = %d, want %d", line, got, want)
		}
	}
}

func TestApplyTransform(t *testing.T) {
	cases := []struct {
		transform string
		want      string
	}{
		{"none", "hello world"},
		{"uppercase", "HELLO WORLD"},
		{"lowercase", "hello world"},
		{"capitalize", "Hello World"},
	}
	for _, c := range cases {
		if got := applyTransform("hello world", c.transform); got != c.want {
			t.Errorf("applyTransform(%q) = %q, want %q", c.transform, got, c.want)
		}
	}
}

func TestSpaceRunes(t *testing.T) {
	if got := spaceRunes("abc", 1); got != "a b c" {
		t.Errorf("spaceRunes(1) = %q", got)
	}
	if got := spaceRunes("abc", 0); got != "abc" {
		t.Errorf("spaceRunes(0) = %q", got)
	}
}

func configStylesForTest() promptStyles {
	st := configStyles(config.Default())
	st.width = 100 // use the whole test width
	return st
}
