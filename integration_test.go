package qrbarcode_test

import (
	"strings"
	"testing"

	qrbarcode "github.com/zenalex/qr-bar-code"
	_ "github.com/zenalex/qr-bar-code/oned"
	_ "github.com/zenalex/qr-bar-code/qrcode"
)

func TestQRRenderThroughRegistry(t *testing.T) {
	elements, err := qrbarcode.QR.Render([]byte("HELLO WORLD"), 210, 210, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(elements) == 0 {
		t.Fatal("no elements")
	}
	for _, e := range elements {
		bar, ok := e.(qrbarcode.Bar)
		if !ok {
			t.Fatalf("unexpected element %T", e)
		}
		if !bar.Filled {
			t.Fatal("QR renderer must emit filled bars only")
		}
		if bar.Left < 0 || bar.Top < 0 || bar.Left+bar.Width > 210 || bar.Top+bar.Height > 210 {
			t.Fatalf("bar outside box: %+v", bar)
		}
	}
}

func TestQRQuietZone(t *testing.T) {
	// With the default 4-module quiet zone on a 21-module symbol, every bar
	// stays at least 4 module widths away from the box edge.
	const box = 290.0
	elements, err := qrbarcode.QR.Render([]byte("HELLO WORLD"), box, box, nil)
	if err != nil {
		t.Fatal(err)
	}
	module := box / (21 + 2*4)
	margin := 4*module - 1e-9
	for _, e := range elements {
		bar := e.(qrbarcode.Bar)
		if bar.Left < margin || bar.Top < margin ||
			bar.Left+bar.Width > box-margin || bar.Top+bar.Height > box-margin {
			t.Fatalf("bar inside quiet zone: %+v", bar)
		}
	}
}

func TestEANRenderThroughRegistry(t *testing.T) {
	opts := &qrbarcode.RenderOptions{DrawText: true, FontHeight: 10, TextPadding: 2}
	elements, err := qrbarcode.EAN13.Render([]byte("5901234123457"), 190, 60, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	haveText := false
	for _, e := range elements {
		if _, ok := e.(qrbarcode.Text); ok {
			haveText = true
		}
	}
	if !haveText {
		t.Error("no text band with DrawText set")
	}
}

func TestToSVGDeterminism(t *testing.T) {
	render := func() string {
		svg, err := qrbarcode.QR.ToSVG([]byte("DETERMINISTIC"), 0, 0, 200, 200,
			&qrbarcode.RenderOptions{ErrorCorrection: "Q"},
			&qrbarcode.SVGOptions{FullSVG: true})
		if err != nil {
			t.Fatalf("ToSVG failed: %v", err)
		}
		return svg
	}
	first := render()
	for i := 0; i < 3; i++ {
		if got := render(); got != first {
			t.Fatal("outputs differ across identical inputs")
		}
	}
	if !strings.HasPrefix(first, "<svg ") || !strings.HasSuffix(first, "</svg>") {
		t.Errorf("not a full SVG document: %.60s...", first)
	}
}

func TestToSVGPropagatesValidation(t *testing.T) {
	_, err := qrbarcode.EAN13.ToSVG([]byte("123"), 0, 0, 100, 50, nil, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
}
