package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
)

// converterBin is the external SVG converter from librsvg.
const converterBin = "rsvg-convert"

// ToPDF converts SVG bytes to PDF using rsvg-convert.
//
// Requires librsvg: brew install librsvg (macOS), apt install
// librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "--format=pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert. A scale of 2.0
// produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install
// librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1.0
	}
	return convert(svg, "--format=png", "--zoom="+strconv.FormatFloat(scale, 'f', -1, 64))
}

func convert(svg []byte, args ...string) ([]byte, error) {
	bin, err := exec.LookPath(converterBin)
	if err != nil {
		return nil, fmt.Errorf("%s not found: install librsvg (brew install librsvg / apt install librsvg2-bin)", converterBin)
	}

	cmd := exec.Command(bin, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := bytes.TrimSpace(stderr.Bytes())
		if len(msg) > 0 {
			return nil, fmt.Errorf("%s: %w: %s", converterBin, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", converterBin, err)
	}

	return out.Bytes(), nil
}
