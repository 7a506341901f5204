// Package palette models ordered RGB color palettes and loads them from
// palette files.
//
// Two file formats are supported:
//
//   - .hex: one bare 6-digit hex color per line (no "#" prefix)
//   - .toml: a manifest with an optional name and a colors array
//
// Loading is deliberately permissive: lines or entries that are not exactly
// six hex digits after trimming are dropped and counted, never reported as
// errors. A file that filters down to zero colors is the caller's problem to
// diagnose (see pkg/pipeline).
package palette

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hexatlas/pkg/errors"
)

// Color is an immutable RGB triple.
type Color struct {
	R, G, B uint8
}

// Hex returns the bare lowercase hex form of the color (e.g. "ff0000").
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a bare 6-digit hex color string like "ff0000".
// No "#" prefix, no shorthand forms.
func ParseHex(s string) (Color, error) {
	if len(s) != 6 {
		return Color{}, fmt.Errorf("hex color must be 6 characters, got %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: b[0], G: b[1], B: b[2]}, nil
}

// Palette is an ordered list of colors. Order is insertion order from the
// source file; duplicate values are allowed.
type Palette []Color

// Stats counts what happened while loading a palette source.
type Stats struct {
	Lines   int // non-blank lines or entries seen
	Dropped int // entries rejected by the 6-hex-digit rule
}

// File is a loaded palette source.
type File struct {
	Path   string  // source file path
	Name   string  // output base name (file stem, or manifest name override)
	Colors Palette // valid colors in source order
	Stats  Stats
}

// manifest is the TOML palette file schema.
type manifest struct {
	Name   string   `toml:"name"`
	Colors []string `toml:"colors"`
}

// Load reads newline-separated hex colors from r. Blank lines are skipped;
// anything that is not exactly six hex digits after trimming is dropped and
// counted in Stats.
func Load(r io.Reader) (Palette, Stats, error) {
	var (
		p     Palette
		stats Stats
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		stats.Lines++
		c, err := ParseHex(line)
		if err != nil {
			stats.Dropped++
			continue
		}
		p = append(p, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}
	return p, stats, nil
}

// LoadFile loads a palette file, dispatching on the extension:
// ".toml" is parsed as a manifest, everything else as line-separated hex.
func LoadFile(path string) (*File, error) {
	if filepath.Ext(path) == ".toml" {
		return loadManifest(path)
	}
	return loadHex(path)
}

func loadHex(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	colors, stats, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return &File{
		Path:   path,
		Name:   stem(path),
		Colors: colors,
		Stats:  stats,
	}, nil
}

func loadManifest(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode %s", path)
	}

	var (
		p     Palette
		stats Stats
	)
	for _, s := range m.Colors {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		stats.Lines++
		c, err := ParseHex(s)
		if err != nil {
			stats.Dropped++
			continue
		}
		p = append(p, c)
	}

	name := m.Name
	if name == "" {
		name = stem(path)
	}
	return &File{
		Path:   path,
		Name:   name,
		Colors: p,
		Stats:  stats,
	}, nil
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
