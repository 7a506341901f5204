// Package pipeline runs the per-file atlas generation pipeline.
//
// Each palette file is processed to completion before the next begins:
//
//  1. Load: parse the palette file (hex lines or TOML manifest)
//  2. Plan: compute the fixed-canvas layout for the palette size
//  3. Render: compose swatches and gradient strips
//  4. Encode: serialize the canvas to PNG
//  5. Write: persist <base>-cta.png next to the input
//
// Files are independent; a failure in one (typically a palette that filters
// down to zero colors) never aborts the others. The Runner centralizes this
// logic so the CLI stays thin, and adds optional artifact caching for
// pinned-seed runs.
package pipeline

import (
	"time"

	"github.com/matzehuels/hexatlas/pkg/atlas"
	"github.com/matzehuels/hexatlas/pkg/errors"
)

// Options configures one pipeline execution.
type Options struct {
	// Path is the palette file to process.
	Path string

	// Seed seeds the random source used for the bottom-row gradients.
	Seed int64

	// Pinned marks the seed as user-chosen. Only pinned runs are cacheable:
	// with a time-derived seed the output bytes differ on every run.
	Pinned bool
}

// Validate checks the options before execution.
func (o *Options) Validate() error {
	if o.Path == "" {
		return errors.New(errors.ErrCodeInvalidPath, "palette path is required")
	}
	return nil
}

// Stats records per-stage wall-clock durations.
type Stats struct {
	LoadTime   time.Duration
	RenderTime time.Duration
	EncodeTime time.Duration
	WriteTime  time.Duration
}

// Result describes one processed palette file.
type Result struct {
	Name       string     // output base name
	OutputPath string     // written atlas path
	Colors     int        // valid colors loaded
	Dropped    int        // lines rejected by the 6-hex-digit rule
	Plan       atlas.Plan // layout used for the render
	CacheHit   bool       // encoded atlas came from the cache
	Stats      Stats
}
