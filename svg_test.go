package qrbarcode

import (
	"strings"
	"testing"
)

func TestSVGSingleBar(t *testing.T) {
	elements := []Element{
		Bar{Left: 1, Top: 2, Width: 10, Height: 20, Filled: true},
	}
	got := SVG(elements, 0, 0, 100, 50, nil)
	want := `<path d="M1.00000 2.00000h10.00000v20.00000h-10.00000z" fill="#000000"/>`
	if got != want {
		t.Errorf("SVG = %q, want %q", got, want)
	}
}

func TestSVGUnfilledBarSkipped(t *testing.T) {
	elements := []Element{
		Bar{Left: 0, Top: 0, Width: 5, Height: 5, Filled: false},
	}
	if got := SVG(elements, 0, 0, 10, 10, nil); got != "" {
		t.Errorf("SVG = %q, want empty", got)
	}
}

func TestSVGPathConcatenation(t *testing.T) {
	elements := []Element{
		Bar{Left: 0, Top: 0, Width: 1, Height: 1, Filled: true},
		Bar{Left: 2, Top: 0, Width: 1, Height: 1, Filled: false},
		Bar{Left: 4, Top: 0, Width: 1, Height: 1, Filled: true},
	}
	got := SVG(elements, 0, 0, 10, 10, nil)
	if strings.Count(got, "<path") != 1 {
		t.Fatalf("want a single path element, got %q", got)
	}
	if strings.Count(got, "z") != 2 {
		t.Errorf("want two closed rectangles, got %q", got)
	}
}

func TestSVGTranslation(t *testing.T) {
	elements := []Element{
		Bar{Left: 1, Top: 1, Width: 2, Height: 2, Filled: true},
	}
	got := SVG(elements, 10, 20, 100, 50, nil)
	if !strings.Contains(got, "M11.00000 21.00000") {
		t.Errorf("translated path missing, got %q", got)
	}
}

func TestSVGTextAnchors(t *testing.T) {
	tests := []struct {
		align   Align
		wantAnc string
		wantX   string
	}{
		{AlignLeft, `text-anchor="start"`, `x="0.00000"`},
		{AlignCenter, `text-anchor="middle"`, `x="50.00000"`},
		{AlignRight, `text-anchor="end"`, `x="100.00000"`},
	}
	for _, tc := range tests {
		elements := []Element{
			Text{Left: 0, Top: 40, Width: 100, Height: 10, Content: "123", Align: tc.align},
		}
		got := SVG(elements, 0, 0, 100, 50, nil)
		if !strings.Contains(got, tc.wantAnc) {
			t.Errorf("align %v: missing %s in %q", tc.align, tc.wantAnc, got)
		}
		if !strings.Contains(got, tc.wantX) {
			t.Errorf("align %v: missing %s in %q", tc.align, tc.wantX, got)
		}
		// Baseline defaults to 0.75: y = 40 + 0.75*10.
		if !strings.Contains(got, `y="47.50000"`) {
			t.Errorf("align %v: baseline missing in %q", tc.align, got)
		}
	}
}

func TestSVGCustomBaseline(t *testing.T) {
	elements := []Element{
		Text{Top: 40, Width: 100, Height: 10, Content: "x", Align: AlignLeft},
	}
	got := SVG(elements, 0, 0, 100, 50, &SVGOptions{Baseline: 0.5})
	if !strings.Contains(got, `y="45.00000"`) {
		t.Errorf("custom baseline missing in %q", got)
	}
}

func TestSVGColor(t *testing.T) {
	elements := []Element{
		Bar{Width: 1, Height: 1, Filled: true},
	}
	got := SVG(elements, 0, 0, 10, 10, &SVGOptions{Color: 0xFFFF0000})
	if !strings.Contains(got, `fill="#FF0000"`) {
		t.Errorf("24-bit color missing in %q", got)
	}
}

func TestSVGFullDocument(t *testing.T) {
	elements := []Element{
		Bar{Width: 1, Height: 1, Filled: true},
	}
	got := SVG(elements, 0, 0, 21, 21, &SVGOptions{FullSVG: true})
	if !strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing root element in %q", got)
	}
	if !strings.Contains(got, `viewBox="0 0 21.00000 21.00000"`) {
		t.Errorf("missing viewBox in %q", got)
	}
	if !strings.HasSuffix(got, "</svg>") {
		t.Errorf("missing closing tag in %q", got)
	}
}

func TestSVGEscapesText(t *testing.T) {
	elements := []Element{
		Text{Width: 10, Height: 5, Content: `<&">`, Align: AlignLeft},
	}
	got := SVG(elements, 0, 0, 10, 10, nil)
	if !strings.Contains(got, "&lt;&amp;&quot;&gt;") {
		t.Errorf("unescaped text in %q", got)
	}
}
