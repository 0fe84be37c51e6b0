package pages

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Marshal serializes a PageSet to pretty-printed JSON bytes.
func Marshal(ps PageSet) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(ps, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes JSON bytes into a PageSet.
// Validates the unit and page dimensions.
func Unmarshal(data []byte) (PageSet, error) {
	return readFrom(bytes.NewReader(data))
}

// Write writes a PageSet as JSON to an io.Writer.
func Write(ps PageSet, w io.Writer) error {
	return writeTo(ps, w)
}

// WriteFile writes a PageSet to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(ps PageSet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(ps, f)
}

// Read decodes a JSON page set from an io.Reader.
func Read(r io.Reader) (PageSet, error) {
	return readFrom(r)
}

// ReadFile reads a PageSet from a JSON file.
func ReadFile(path string) (PageSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return PageSet{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

func writeTo(ps PageSet, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ps); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (PageSet, error) {
	var ps PageSet
	if err := json.NewDecoder(r).Decode(&ps); err != nil {
		return PageSet{}, fmt.Errorf("decode: %w", err)
	}

	if ps.Unit == "" {
		ps.Unit = Unit
	}
	if ps.Unit != Unit {
		return PageSet{}, fmt.Errorf("unsupported unit %q (want %q)", ps.Unit, Unit)
	}
	for i := range ps.Pages {
		p := &ps.Pages[i]
		if p.Width < 0 || p.Height < 0 {
			return PageSet{}, fmt.Errorf("page %d has negative dimensions", i+1)
		}
	}

	return ps, nil
}
