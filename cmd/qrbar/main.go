// Command qrbar encodes a payload as a barcode and writes an SVG document.
// When stdout is a terminal and no output file is given, QR codes render as
// Unicode half-blocks instead.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	qrbarcode "github.com/zenalex/qr-bar-code"
	_ "github.com/zenalex/qr-bar-code/oned"
	"github.com/zenalex/qr-bar-code/qrcode"
)

var symbologyNames = map[string]qrbarcode.Symbology{
	"qr":      qrbarcode.QR,
	"code39":  qrbarcode.Code39,
	"codabar": qrbarcode.Codabar,
	"itf":     qrbarcode.ITF,
	"itf14":   qrbarcode.ITF14,
	"ean13":   qrbarcode.EAN13,
	"ean8":    qrbarcode.EAN8,
	"upca":    qrbarcode.UPCA,
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("qrbar: ")

	symName := getopt.StringLong("symbology", 's', "qr", "symbology (qr code39 codabar itf itf14 ean13 ean8 upca)")
	level := getopt.StringLong("level", 'e', "M", "QR error correction level (L M Q H)")
	width := getopt.IntLong("width", 'w', 200, "output width")
	height := getopt.IntLong("height", 'g', 200, "output height")
	outFile := getopt.StringLong("output", 'o', "", "write SVG to file instead of stdout")
	drawText := getopt.BoolLong("text", 't', "draw the human-readable text band")
	colorHex := getopt.StringLong("color", 'c', "000000", "fill color as RRGGBB")
	help := getopt.BoolLong("help", 'h', "print usage")
	getopt.SetParameters("[string ...]")
	getopt.Parse()

	if *help {
		getopt.PrintUsage(os.Stdout)
		return
	}

	sym, ok := symbologyNames[strings.ToLower(*symName)]
	if !ok {
		log.Fatalf("unknown symbology %q", *symName)
	}

	color, err := strconv.ParseUint(*colorHex, 16, 32)
	if err != nil {
		log.Fatalf("bad color %q", *colorHex)
	}

	payload := payloadFromArgs(getopt.Args())
	if len(payload) == 0 {
		log.Fatal("empty payload")
	}

	if sym == qrbarcode.QR && *outFile == "" && isatty.IsTerminal(os.Stdout.Fd()) {
		if err := printTerminal(payload, *level); err != nil {
			log.Fatal(err)
		}
		return
	}

	ropts := &qrbarcode.RenderOptions{
		DrawText:        *drawText,
		ErrorCorrection: *level,
	}
	sopts := &qrbarcode.SVGOptions{
		Color:   uint32(color),
		FullSVG: true,
	}
	svg, err := sym.ToSVG(payload, 0, 0, float64(*width), float64(*height), ropts, sopts)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	if _, err := io.WriteString(out, svg+"\n"); err != nil {
		log.Fatal(err)
	}
}

func payloadFromArgs(args []string) []byte {
	if len(args) > 0 {
		return []byte(strings.Join(args, " "))
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	return []byte(strings.TrimSuffix(string(data), "\n"))
}

// printTerminal renders a QR symbol as Unicode half-blocks, two module rows
// per text line, with a two-module quiet zone.
func printTerminal(payload []byte, level string) error {
	l, err := qrcode.ParseLevel(level)
	if err != nil {
		return err
	}
	code, err := qrcode.FromBytes(payload, l)
	if err != nil {
		return err
	}
	matrix, err := code.Matrix(-1)
	if err != nil {
		return err
	}

	const quiet = 2
	n := matrix.Size()
	dark := func(x, y int) bool {
		x -= quiet
		y -= quiet
		return x >= 0 && y >= 0 && x < n && y < n && matrix.Dark(x, y)
	}

	var sb strings.Builder
	total := n + 2*quiet
	for y := 0; y < total; y += 2 {
		for x := 0; x < total; x++ {
			upper := dark(x, y)
			lower := y+1 < total && dark(x, y+1)
			switch {
			case upper && lower:
				sb.WriteRune('█')
			case upper:
				sb.WriteRune('▀')
			case lower:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
	return nil
}
