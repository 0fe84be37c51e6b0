package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLength parses a length literal such as "12pt", "1.5in", "30mm",
// "4cm" or "2em". A bare number is rejected so that manifests never
// depend on an implicit unit.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	for _, u := range []struct {
		suffix string
		make   func(v float64) Length
	}{
		{"pt", func(v float64) Length { return Length{Abs: Pt(v)} }},
		{"in", func(v float64) Length { return Length{Abs: Inch(v)} }},
		{"mm", func(v float64) Length { return Length{Abs: Mm(v)} }},
		{"cm", func(v float64) Length { return Length{Abs: Cm(v)} }},
		{"em", func(v float64) Length { return Length{Em: Em(v)} }},
	} {
		if !strings.HasSuffix(s, u.suffix) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, u.suffix)), 64)
		if err != nil {
			return Length{}, fmt.Errorf("parse length %q: %w", s, err)
		}
		return u.make(v), nil
	}
	return Length{}, fmt.Errorf("parse length %q: missing unit (want pt, in, mm, cm or em)", s)
}

// ParseRel parses a relative length: either a percentage such as "40%"
// or any literal accepted by [ParseLength].
func ParseRel(s string) (Rel, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return Rel{}, fmt.Errorf("parse relative length %q: %w", s, err)
		}
		return Rel{Ratio: Ratio(v / 100)}, nil
	}
	l, err := ParseLength(s)
	if err != nil {
		return Rel{}, err
	}
	return Rel{Length: l}, nil
}

// ParseFr parses a fractional literal such as "1fr" or "2.5fr".
func ParseFr(s string) (Fr, error) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "fr") {
		return 0, fmt.Errorf("parse fraction %q: missing fr suffix", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "fr")), 64)
	if err != nil {
		return 0, fmt.Errorf("parse fraction %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("parse fraction %q: must not be negative", s)
	}
	return Fr(v), nil
}

// ParseAlign parses an alignment name. Axis-specific synonyms are
// accepted: "left" and "top" mean start, "right" and "bottom" mean end.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "left", "top":
		return AlignStart, nil
	case "center":
		return AlignCenter, nil
	case "end", "right", "bottom":
		return AlignEnd, nil
	}
	return AlignStart, fmt.Errorf("parse alignment %q: want start, center, end, left, right, top or bottom", s)
}
