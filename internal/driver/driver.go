// Package driver runs batch enhancement over signature listings: it
// fans out per-file work, streams progress events and caches results
// on disk.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"alloy/internal/annotations"
	"alloy/internal/builtins"
	"alloy/internal/enhance"
	"alloy/internal/observ"
	"alloy/internal/project"
	"alloy/internal/qualifiers"
	"alloy/internal/symbols"
)

// ListingExt is the extension of signature listing files.
const ListingExt = ".sig"

// Options configures a batch run.
type Options struct {
	Jobs     int
	Cache    *DiskCache // nil disables caching
	Sink     ProgressSink
	Env      enhance.Env // zero value: lenient builtins table
	Defaults project.Defaults
}

// LineResult is the outcome of one listing entry.
type LineResult struct {
	Line     int
	Source   string
	Rendered string
	Default  string // declared parameter default, if any
	Err      string
}

// FileResult aggregates one listing file.
type FileResult struct {
	Path      string
	Lines     []LineResult
	FromCache bool
	Err       string // file-level failure (I/O, syntax)
}

// DirResult is the outcome of a whole batch.
type DirResult struct {
	Files  []FileResult
	Timing observ.Report
}

// DefaultEnv builds the environment used when Options.Env is zero: a
// lenient table seeded with the host builtins and a fresh parameter
// pool.
func DefaultEnv() enhance.Env {
	return enhance.Env{
		Classes: builtins.NewTable().Lenient(),
		Params:  symbols.NewParamSet(),
	}
}

func (o *Options) normalize(fileCount int) {
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if o.Jobs > fileCount && fileCount > 0 {
		o.Jobs = fileCount
	}
	if o.Sink == nil {
		o.Sink = NopSink{}
	}
	if o.Env.Classes == nil || o.Env.Params == nil {
		o.Env = DefaultEnv()
	}
}

// ListFiles returns the sorted *.sig files under dir.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ListingExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// EnhanceDir processes every listing under dir in parallel. Per-entry
// failures land in LineResult.Err; only infrastructure failures abort
// the batch.
func EnhanceDir(ctx context.Context, dir string, opts Options) (DirResult, error) {
	timer := observ.NewTimer()

	stopScan := timer.Phase("scan")
	files, err := ListFiles(dir)
	stopScan(fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return DirResult{}, err
	}
	opts.normalize(len(files))

	for _, path := range files {
		opts.Sink.OnEvent(Event{File: path, Stage: StageParse, Status: StatusQueued})
	}

	results := make([]FileResult, len(files))

	stopEnhance := timer.Phase("enhance")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			start := time.Now()
			opts.Sink.OnEvent(Event{File: path, Stage: StageEnhance, Status: StatusWorking})
			res := EnhanceFile(path, opts)
			results[i] = res
			evt := Event{File: path, Stage: StageEnhance, Status: StatusDone, Elapsed: time.Since(start)}
			switch {
			case res.Err != "":
				evt.Status = StatusError
			case res.FromCache:
				evt.Status = StatusCached
			}
			opts.Sink.OnEvent(evt)
			return nil
		})
	}
	err = g.Wait()
	stopEnhance("")
	if err != nil {
		return DirResult{}, err
	}
	return DirResult{Files: results, Timing: timer.Report()}, nil
}

// EnhanceFile processes one listing file, consulting the disk cache
// when available.
func EnhanceFile(path string, opts Options) FileResult {
	opts.normalize(1)
	result := FileResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		result.Err = err.Error()
		return result
	}
	key := DigestBytes(content)

	if opts.Cache != nil {
		var payload DiskPayload
		if hit, err := opts.Cache.Get(key, &payload); err == nil && hit {
			result.Lines = payload.Lines
			result.FromCache = true
			return result
		}
		// A read failure is a miss, not an error.
	}

	entries, err := ParseListing(strings.NewReader(string(content)))
	if err != nil {
		result.Err = err.Error()
		return result
	}

	result.Lines = make([]LineResult, 0, len(entries))
	for _, entry := range entries {
		result.Lines = append(result.Lines, enhanceEntry(entry, opts))
	}

	if opts.Cache != nil {
		payload := &DiskPayload{
			Schema:  diskCacheSchemaVersion,
			Content: key,
			Lines:   result.Lines,
		}
		// Best effort: an unwritable cache must not fail the batch.
		_ = opts.Cache.Put(key, payload)
	}
	return result
}

func enhanceEntry(entry Entry, opts Options) LineResult {
	line := LineResult{Line: entry.Line, Source: entry.Source}

	res, err := enhance.Enhance(entry.Type, entry.Anns, lookupFor(entry, opts.Defaults), opts.Env)
	if err != nil {
		line.Err = err.Error()
		return line
	}
	line.Rendered = res.String()

	if def, ok := annotations.DeclaredDefault(entry.Anns); ok {
		switch def.Kind {
		case annotations.DefaultString:
			line.Default = fmt.Sprintf("%q", def.Value)
		case annotations.DefaultNull:
			line.Default = "null"
		}
	}
	return line
}

// lookupFor picks the qualifier source of one entry: explicit bindings
// win, then the reference's annotations, then the manifest's
// per-package defaults for the root classifier.
func lookupFor(entry Entry, defaults project.Defaults) qualifiers.Lookup {
	if len(entry.Quals) > 0 {
		return entry.Quals.Lookup
	}
	if q := qualifiers.FromAnnotations(entry.Anns); !q.IsZero() {
		return qualifiers.Table{0: q}.Lookup
	}
	if entry.Type.ClassifierIsClass() {
		if q, ok := defaults.For(entry.Type.Class); ok {
			return qualifiers.Table{0: q}.Lookup
		}
	}
	return nil
}
