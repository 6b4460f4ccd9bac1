// Package walk resolves search roots, prepares per-root configuration, and
// dispatches a per-file handler across the eligible files beneath each root,
// aggregating the typed outcomes.
package walk

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/neatfmt-dev/neatfmt/internal/config"
	"github.com/neatfmt-dev/neatfmt/internal/ignore"
)

// Handler processes one file. The returned outcome is tallied; a non-nil
// error records the file as a failure instead and never aborts sibling files.
type Handler func(cfg *config.Config, displayPath, path string) (Outcome, error)

// Options tunes a walk. OnOutcome, when set, is invoked sequentially from the
// collecting goroutine for every successful outcome, so callers can print
// per-file output without interleaving.
type Options struct {
	Workers   int
	OnOutcome func(displayPath string, out Outcome)
}

type fileJob struct {
	cfg     *config.Config
	display string
	path    string
}

type fileResult struct {
	display string
	out     Outcome
	err     error
}

// Walk enumerates the eligible files beneath every target and applies handler
// to each one at most once, using a bounded worker pool. The aggregate result
// is finalized only after every dispatched file has completed or failed.
func Walk(handler Handler, targets []Target, opts Options) *Result {
	start := time.Now()
	result := NewResult()

	files := collectFiles(targets, result)
	if len(files) == 0 {
		result.Elapsed = time.Since(start)
		return result
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = workerCount(len(files))
	}

	jobs := make(chan fileJob, len(files))
	results := make(chan fileResult, len(files))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				out, err := handler(job.cfg, job.display, job.path)
				results <- fileResult{display: job.display, out: out, err: err}
			}
		}()
	}
	for _, job := range files {
		jobs <- job
	}
	close(jobs)
	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		if res.err != nil {
			result.RecordFailure(res.display, res.err)
			continue
		}
		result.Record(res.out)
		if opts.OnOutcome != nil {
			opts.OnOutcome(res.display, res.out)
		}
	}

	result.Elapsed = time.Since(start)
	return result
}

// collectFiles enumerates the eligible files for every target. Enumeration
// problems (unreadable roots, stat errors) are recorded as failures on the
// result rather than aborting the walk.
func collectFiles(targets []Target, result *Result) []fileJob {
	var files []fileJob
	for _, target := range targets {
		info, err := os.Stat(target.Root.Canonical)
		if err != nil {
			result.RecordFailure(target.Root.Given, err)
			continue
		}
		if !info.IsDir() {
			// Explicitly named files bypass the extension filter.
			files = append(files, fileJob{cfg: target.Config, display: target.Root.Given, path: target.Root.Canonical})
			continue
		}
		files = append(files, collectDir(target, result)...)
	}
	return files
}

func collectDir(target Target, result *Result) []fileJob {
	root := target.Root.Canonical
	matcher := ignore.NewMatcher(target.Config.Files.Ignore)
	extensions := target.Config.ExtensionSet()

	var gitIgnore gitignore.IgnoreMatcher
	gitIgnorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitIgnorePath); err == nil {
		gitIgnore, err = gitignore.NewGitIgnore(gitIgnorePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "neatfmt: warning: failed to parse %s: %v\n", gitIgnorePath, err)
			gitIgnore = nil
		}
	}

	var files []fileJob
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.RecordFailure(path, err)
			return nil
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			result.RecordFailure(path, err)
			return nil
		}

		if d.IsDir() {
			if matcher.ShouldIgnore(rel, true) {
				return fs.SkipDir
			}
			if gitIgnore != nil && gitIgnore.Match(path, true) {
				return fs.SkipDir
			}
			return nil
		}

		if !eligibleExtension(d.Name(), extensions) {
			return nil
		}
		if matcher.ShouldIgnore(rel, false) {
			return nil
		}
		if gitIgnore != nil && gitIgnore.Match(path, false) {
			return nil
		}

		files = append(files, fileJob{
			cfg:     target.Config,
			display: filepath.Join(target.Root.Given, rel),
			path:    path,
		})
		return nil
	})
	return files
}

func eligibleExtension(name string, extensions map[string]bool) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	return extensions[ext]
}
