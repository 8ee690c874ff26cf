package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"alloy/internal/driver"
	"alloy/internal/observ"
	"alloy/internal/project"
)

var (
	batchJobs    int
	batchNoCache bool
	batchUI      string
	batchVerbose bool
)

func init() {
	batchCmd.Flags().IntVarP(&batchJobs, "jobs", "j", 0, "parallel workers (0 = number of CPUs)")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "bypass the disk cache")
	batchCmd.Flags().StringVar(&batchUI, "ui", "auto", "interactive progress (auto|on|off)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "print every enhanced line, not just summaries")
}

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Enhance every signature listing under a directory",
	Long: `Batch walks a directory for *.sig listings, enhances every entry in
parallel and reports the results. An alloy.toml manifest found in the
directory or any parent supplies per-package qualifier defaults and
batch settings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		mode, err := readUIMode(batchUI)
		if err != nil {
			return err
		}

		opts, err := batchOptions(dir)
		if err != nil {
			return err
		}

		var res driver.DirResult
		if shouldUseTUI(mode) {
			files, err := driver.ListFiles(dir)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("alloy batch %s", filepath.Clean(dir))
			res, err = runBatchWithUI(cmd.Context(), title, files, dir, opts)
			if err != nil {
				return err
			}
		} else {
			res, err = driver.EnhanceDir(cmd.Context(), dir, opts)
			if err != nil {
				return err
			}
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		failed := reportBatch(cmd.OutOrStdout(), res, quiet, batchVerbose)

		if timings, _ := cmd.Flags().GetBool("timings"); timings {
			printTimings(cmd.OutOrStdout(), res.Timing)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d listings failed", failed, len(res.Files))
		}
		return nil
	},
}

// batchOptions merges command flags with the manifest found near dir.
func batchOptions(dir string) (driver.Options, error) {
	opts := driver.Options{Jobs: batchJobs}

	manifest, found, err := project.Load(dir)
	if err != nil {
		return driver.Options{}, err
	}
	useCache := true
	if found {
		defaults, err := manifest.Config.QualifierDefaults()
		if err != nil {
			return driver.Options{}, fmt.Errorf("%s: %w", manifest.Path, err)
		}
		opts.Defaults = defaults
		if opts.Jobs == 0 && manifest.Config.Batch.Jobs > 0 {
			opts.Jobs = manifest.Config.Batch.Jobs
		}
		useCache = manifest.Config.Batch.Cache
	}

	if useCache && !batchNoCache {
		cache, err := driver.OpenDiskCache()
		if err != nil {
			return driver.Options{}, fmt.Errorf("open cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}

// reportBatch prints per-file outcomes and returns the failed count.
func reportBatch(out io.Writer, res driver.DirResult, quiet, verbose bool) int {
	failed := 0
	for _, file := range res.Files {
		lineErrs := 0
		for _, line := range file.Lines {
			if line.Err != "" {
				lineErrs++
			}
		}
		bad := file.Err != "" || lineErrs > 0
		if bad {
			failed++
		}
		if quiet && !bad {
			continue
		}

		switch {
		case file.Err != "":
			fmt.Fprintf(out, "%s: error: %s\n", file.Path, file.Err)
			continue
		case file.FromCache:
			fmt.Fprintf(out, "%s: %d lines (cached)\n", file.Path, len(file.Lines))
		default:
			fmt.Fprintf(out, "%s: %d lines\n", file.Path, len(file.Lines))
		}

		for _, line := range file.Lines {
			if line.Err != "" {
				fmt.Fprintf(out, "  %d: %s: %s\n", line.Line, line.Source, line.Err)
				continue
			}
			if verbose {
				fmt.Fprintf(out, "  %d: %s => %s%s\n", line.Line, line.Source, line.Rendered, defaultSuffix(line))
			}
		}
	}
	return failed
}

func defaultSuffix(line driver.LineResult) string {
	if line.Default == "" {
		return ""
	}
	return " = " + line.Default
}

func printTimings(out io.Writer, report observ.Report) {
	fmt.Fprintln(out, "timings:")
	for _, p := range report.Phases {
		fmt.Fprintf(out, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(out, "  // %s", p.Note)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "  %-20s %7.2f ms\n", "total", report.TotalMS)
}

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
