package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/page-renumber/internal/config"
	"github.com/ironsheep/page-renumber/internal/logging"
	"github.com/ironsheep/page-renumber/internal/pattern"
	"github.com/ironsheep/page-renumber/internal/pipeline"
	"github.com/ironsheep/page-renumber/internal/scan"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	cfg        = config.Default()
	deltaFlag  string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "page-renumber [flags] ini fin [delta]",
	Short: "Renumber sequentially-named page image files",
	Long: `page-renumber shifts the numbers of sequentially-named page files
(comic or manga scans) by a fixed delta, handling two-page spreads stored
as a single wide image spanning two numbers.

ini and fin are page numbers or "auto" to take the bounds found on disk.
delta is a signed shift, or an equation solving for one:

  page-renumber auto auto +10     shift every page up by ten
  page-renumber auto auto =1      renumber so the first page becomes 1
  page-renumber 5 20 f=50         shift 5..20 so that page 20 becomes 50

Landscape files holding a single page number are flagged as mis-numbered
spreads; a second pass renames them to spread form and shifts the pages
above them to make room.`,
	Args:          cobra.RangeArgs(2, 3),
	SilenceUsage:  true,
	RunE:          run,
	Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
}

func init() {
	f := rootCmd.Flags()
	f.SortFlags = false

	f.StringVarP(&cfg.Dir, "dir", "d", cfg.Dir, "directory holding the pages")
	f.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "print the planned renames without touching any file")
	f.StringSliceVar(&cfg.Extensions, "ext", cfg.Extensions, "filename extensions to scan")

	f.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "single-page filename template, e.g. %03d or page_%d")
	f.StringVar(&cfg.TargetPattern, "target-pattern", "", "template for renamed files (default: same as --pattern)")
	f.StringVar(&cfg.Join, "join", cfg.Join, "literal joining the two numbers of a spread filename")
	f.StringVar(&cfg.DoublePattern, "double-pattern", "", "explicit spread template with two placeholders")
	f.StringVar(&cfg.TargetDoublePattern, "target-double-pattern", "", "spread template for renamed files")
	f.StringVar(&cfg.SecondPattern, "second-pattern", "", "width policy for the spread's second number")
	f.BoolVar(&cfg.Reversed, "reversed", false, "spread filenames carry the second number first")

	f.StringVar(&deltaFlag, "delta", "", "shift amount, alternative to the third argument")
	f.BoolVar(&cfg.NoDouble, "no-double", false, "disable spread handling entirely")
	f.BoolVar(&cfg.NoOffset, "no-offset", false, "flag anomalies but skip the corrective second pass")
	f.BoolVar(&cfg.KeepGaps, "keep-gaps", false, "trust existing numbering gaps instead of shifting")

	f.BoolVar(&cfg.Force, "force", false, "overwrite colliding files without asking")
	f.BoolVarP(&cfg.Interactive, "interactive", "i", false, "ask before overwriting colliding files")

	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log per-file classification detail")
	f.BoolVarP(&cfg.Quiet, "quiet", "q", false, "only warnings and errors")
	f.BoolVar(&cfg.JSON, "json", false, "print the final summary as JSON")
	f.StringVar(&configPath, "config", "", "defaults file (default: "+defaultConfigHint()+")")
}

func defaultConfigHint() string {
	p, err := config.DefaultFilePath()
	if err != nil {
		return "none"
	}
	return p
}

func run(cmd *cobra.Command, args []string) error {
	cfg.Ini, cfg.Fin = args[0], args[1]
	switch {
	case len(args) == 3 && cmd.Flags().Changed("delta"):
		return fmt.Errorf("%w: delta given both as argument %q and as --delta %q",
			scan.ErrIncrement, args[2], deltaFlag)
	case len(args) == 3:
		cfg.Delta = args[2]
	case cmd.Flags().Changed("delta"):
		cfg.Delta = deltaFlag
	default:
		cfg.Delta = "0"
	}

	path, explicit := configPath, configPath != ""
	if !explicit {
		if p, err := config.DefaultFilePath(); err == nil {
			path = p
		}
	}
	if path != "" {
		file, err := config.LoadFile(path, explicit)
		if err != nil {
			return err
		}
		file.Apply(&cfg, cmd.Flags().Changed)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(cfg.Verbose, cfg.Quiet)
	defer log.Sync()

	sum, err := pipeline.Run(&cfg, log, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	if cfg.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	return nil
}

// Each fatal failure class carries its own exit status so scripts can tell
// a bad template from an empty directory.
func exitCode(err error) int {
	switch {
	case errors.Is(err, pattern.ErrTemplate):
		return 2
	case errors.Is(err, scan.ErrIncrement):
		return 3
	case errors.Is(err, scan.ErrNoCandidates):
		return 4
	case errors.Is(err, scan.ErrInvalidDouble):
		return 5
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
