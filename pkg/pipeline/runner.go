package pipeline

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hexatlas/pkg/atlas"
	"github.com/matzehuels/hexatlas/pkg/cache"
	"github.com/matzehuels/hexatlas/pkg/errors"
	"github.com/matzehuels/hexatlas/pkg/palette"
)

// Runner executes the load → plan → render → encode → write pipeline for
// one palette file at a time. It is stateless apart from the cache and
// logger, so one Runner can serve a whole directory scan.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, log.Default() is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute processes one palette file and writes its atlas.
//
// An EMPTY_PALETTE error means the file had no valid colors; callers should
// log it and continue with the remaining files.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	loadStart := time.Now()
	pf, err := palette.LoadFile(opts.Path)
	if err != nil {
		return nil, err
	}
	if len(pf.Colors) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyPalette, "no valid colors in %s", opts.Path)
	}
	if pf.Stats.Dropped > 0 {
		r.Logger.Debug("dropped invalid palette entries",
			"file", opts.Path,
			"dropped", pf.Stats.Dropped,
			"kept", len(pf.Colors))
	}

	result := &Result{
		Name:       pf.Name,
		OutputPath: filepath.Join(filepath.Dir(opts.Path), atlas.OutputName(pf.Name)),
		Colors:     len(pf.Colors),
		Dropped:    pf.Stats.Dropped,
		Plan:       atlas.PlanLayout(len(pf.Colors)),
	}
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Info("loaded palette",
		"file", opts.Path,
		"colors", result.Colors,
		"grid", result.Plan.GridCols*result.Plan.GridRows,
		"duration", result.Stats.LoadTime.Round(time.Millisecond))

	data, err := r.renderCached(ctx, opts, pf.Colors, result)
	if err != nil {
		return nil, err
	}

	writeStart := time.Now()
	if err := atlas.WriteFile(result.OutputPath, data); err != nil {
		return nil, err
	}
	result.Stats.WriteTime = time.Since(writeStart)

	r.Logger.Info("wrote atlas",
		"path", result.OutputPath,
		"bytes", len(data),
		"cached", result.CacheHit)

	return result, nil
}

// renderCached returns the encoded atlas, consulting the cache first when
// the seed is pinned.
func (r *Runner) renderCached(ctx context.Context, opts Options, colors palette.Palette, result *Result) ([]byte, error) {
	var key string
	if opts.Pinned {
		if content, err := os.ReadFile(opts.Path); err == nil {
			key = cache.AtlasKey(content, opts.Seed)
		}
	}

	if key != "" {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			result.CacheHit = true
			r.Logger.Debug("atlas cache hit", "file", opts.Path)
			return data, nil
		}
	}

	renderStart := time.Now()
	rng := rand.New(rand.NewSource(opts.Seed))
	img := atlas.Render(colors, rng)
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered atlas",
		"file", opts.Path,
		"duration", result.Stats.RenderTime.Round(time.Millisecond))

	encodeStart := time.Now()
	data, err := atlas.EncodePNG(img)
	if err != nil {
		return nil, err
	}
	result.Stats.EncodeTime = time.Since(encodeStart)

	if key != "" {
		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			r.Logger.Debug("atlas cache store failed", "error", err)
		}
	}
	return data, nil
}
