package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexatlas/pkg/cache"
	"github.com/matzehuels/hexatlas/pkg/errors"
	"github.com/matzehuels/hexatlas/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	seed        int64 // random seed for the bottom-row gradients
	seedSet     bool  // whether --seed was given explicitly
	interactive bool  // pick palette files interactively
	useCache    bool  // reuse cached atlases for pinned-seed runs
}

// newGenerateCmd creates the generate command.
//
// The command scans a directory for palette files (*.hex and *.toml) and
// renders one atlas PNG per file, written next to its input. Files are
// processed independently: a palette that filters down to zero colors is
// skipped with a warning and the run continues. The command only fails when
// every discovered file failed.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Render a texture atlas for every palette file in a directory",
		Long: `Render a texture atlas for every palette file in a directory.

Palette files are *.hex (one bare 6-digit hex color per line) and *.toml
(a manifest with a colors array and optional name). Each file produces
<base>-cta.png beside it.

Examples:
  hexatlas generate                  # scan the current directory
  hexatlas generate ./palettes       # scan a specific directory
  hexatlas generate --seed 42        # reproducible gradients (enables caching)
  hexatlas generate --interactive    # choose which files to process`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			opts.seedSet = cmd.Flags().Changed("seed")
			return runGenerate(cmd.Context(), dir, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "pin the random seed for reproducible atlases")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "select palette files interactively")
	cmd.Flags().BoolVar(&opts.useCache, "cache", true, "reuse cached atlases when the seed is pinned")

	return cmd
}

// discoverPalettes lists the palette files in dir, sorted by name.
func discoverPalettes(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.hex", "*.toml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// runGenerate executes the generate command against dir.
func runGenerate(ctx context.Context, dir string, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	files, err := discoverPalettes(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		printInfo("No palette files (*.hex, *.toml) found in %s", dir)
		return nil
	}

	if opts.interactive {
		files, err = pickPaletteFiles(files)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			printInfo("No palette files selected")
			return nil
		}
	}

	seed := opts.seed
	if !opts.seedSet {
		seed = time.Now().UnixNano()
	}

	runner := pipeline.NewRunner(openCache(logger, opts), logger)
	defer runner.Cache.Close()

	track := newProgress(logger)
	failed := 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s", filepath.Base(file)))
		spinner.Start()
		result, err := runner.Execute(ctx, pipeline.Options{
			Path:   file,
			Seed:   seed,
			Pinned: opts.seedSet,
		})
		spinner.Stop()

		if err != nil {
			failed++
			printWarning("Skipped %s: %s", filepath.Base(file), errors.UserMessage(err))
			continue
		}

		printSuccess("%s", filepath.Base(file))
		printStats(result.Colors, result.Dropped, result.CacheHit)
		printFile(result.OutputPath)
	}

	if failed == len(files) {
		printError("All %d palette files failed", failed)
		return fmt.Errorf("no atlases generated from %d palette files", failed)
	}

	track.done(fmt.Sprintf("Generated %d atlases", len(files)-failed))
	return nil
}

// openCache returns the artifact cache for this run. Caching only makes
// sense when the seed is pinned; otherwise every run produces different
// bytes and the null cache is used.
func openCache(logger *log.Logger, opts generateOpts) cache.Cache {
	if !opts.useCache || !opts.seedSet {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		logger.Debug("cache disabled", "error", err)
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Debug("cache disabled", "error", err)
		return cache.NewNullCache()
	}
	return c
}
