package walk

import (
	"sort"
	"time"
)

// Kind classifies the result of processing one file.
type Kind string

const (
	KindCorrect   Kind = "correct"
	KindIncorrect Kind = "incorrect"
	KindFixed     Kind = "fixed"
	KindFound     Kind = "found"
	KindError     Kind = "error"
)

// Outcome is the result of applying a handler to one file. Exactly one kind
// per file; Info carries an optional payload such as a diff or a path.
type Outcome struct {
	Kind      Kind
	Message   string
	Info      string
	DiffLines int
}

// Failure records a file that could not be processed at all.
type Failure struct {
	Path string
	Err  error
}

// KindCount pairs an outcome kind with its tally.
type KindCount struct {
	Kind  Kind
	Count int
}

// Result aggregates the outcomes of one walk. Files that failed processing
// appear only in Failures, never in the kind counts, so the sum of counts
// plus the failure count equals the number of files dispatched.
type Result struct {
	counts    map[Kind]int
	order     []Kind
	Failures  []Failure
	Elapsed   time.Duration
	DiffLines int
}

func NewResult() *Result {
	return &Result{counts: make(map[Kind]int)}
}

// Record tallies a successfully processed file.
func (r *Result) Record(out Outcome) {
	if _, seen := r.counts[out.Kind]; !seen {
		r.order = append(r.order, out.Kind)
	}
	r.counts[out.Kind]++
	r.DiffLines += out.DiffLines
}

// RecordFailure tracks a file whose handler returned an error.
func (r *Result) RecordFailure(path string, err error) {
	r.Failures = append(r.Failures, Failure{Path: path, Err: err})
}

// Count returns the tally for one kind.
func (r *Result) Count(kind Kind) int {
	return r.counts[kind]
}

// Total returns the number of successfully processed files.
func (r *Result) Total() int {
	total := 0
	for _, n := range r.counts {
		total += n
	}
	return total
}

// Counts returns the per-kind tallies as a plain map keyed by kind name.
func (r *Result) Counts() map[string]int {
	counts := make(map[string]int, len(r.counts))
	for kind, n := range r.counts {
		counts[string(kind)] = n
	}
	return counts
}

// CountsByFrequency returns the tallies sorted by count descending; ties keep
// the order in which each kind was first recorded.
func (r *Result) CountsByFrequency() []KindCount {
	out := make([]KindCount, 0, len(r.order))
	for _, kind := range r.order {
		out = append(out, KindCount{Kind: kind, Count: r.counts[kind]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
