package walk

import (
	"path/filepath"
	"runtime"
	"sync"

	"github.com/neatfmt-dev/neatfmt/internal/config"
)

// SearchRoot is a filesystem location beneath which files are discovered.
// Given is the path as supplied on the command line; Canonical is its
// absolute form, filled in by Prepare.
type SearchRoot struct {
	Given     string
	Canonical string
}

// Target binds a resolved configuration to a search root, ready for walking.
type Target struct {
	Config *config.Config
	Root   SearchRoot
}

// ResolveRoots maps the command-line path arguments to search roots in the
// given order, duplicates preserved. An empty argument list yields one root
// for the working directory. Unresolvable paths are not an error here; the
// walk reports them as per-file failures.
func ResolveRoots(paths []string) []SearchRoot {
	if len(paths) == 0 {
		return []SearchRoot{{Given: "."}}
	}
	roots := make([]SearchRoot, len(paths))
	for i, path := range paths {
		roots[i] = SearchRoot{Given: path}
	}
	return roots
}

// Prepare canonicalizes each root and resolves its configuration. Roots are
// prepared concurrently on a bounded worker pool; they share only the
// read-only defaults, and each target is complete before Prepare returns, so
// no file is ever dispatched ahead of its root's configuration.
func Prepare(paths []string) ([]Target, error) {
	roots := ResolveRoots(paths)
	targets := make([]Target, len(roots))
	errs := make([]error, len(roots))

	jobs := make(chan int, len(roots))
	var wg sync.WaitGroup
	for w := 0; w < workerCount(len(roots)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				root := roots[i]
				canonical, err := filepath.Abs(root.Given)
				if err != nil {
					// Leave canonicalization problems to the walk.
					canonical = root.Given
				}
				root.Canonical = canonical

				cfg, err := config.Resolve(root.Given, canonical)
				if err != nil {
					errs[i] = err
					continue
				}
				targets[i] = Target{Config: cfg, Root: root}
			}
		}()
	}
	for i := range roots {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return targets, nil
}

// workerCount bounds pool sizes by CPU count, never exceeding the job count.
func workerCount(jobs int) int {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
