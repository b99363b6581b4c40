package query

import (
	"golang.org/x/sync/errgroup"

	"github.com/rry-lang/rryc/internal/source"
)

// Snapshot is a view of a Store, safe for concurrent use by multiple
// goroutines. It is not read-only: Parallel compiles through
// Store.Compile, so every source it compiles is memoized into the
// underlying Store's result cache.
type Snapshot struct {
	st *Store
}

// Snapshot captures a read-only view of st.
func (st *Store) Snapshot() Snapshot {
	return Snapshot{st: st}
}

// CompiledResult pairs one Parallel slot's Result with whether that
// call actually ran the pipeline (Fresh) or returned a memoized
// Result from an earlier Compile — see Store.Compile.
type CompiledResult struct {
	*Result
	Fresh bool
}

// Parallel compiles every source in srcs concurrently, one goroutine
// per source fanned out through an errgroup.Group, and returns their
// Results in the same order as srcs. Each source's pipeline is pure
// over its own input (spec.md §5's "each query is pure over its input
// handles"); the only state shared across goroutines is the Store's
// own mutex-guarded interner and result cache, so there is nothing
// else for callers to synchronize.
func (s Snapshot) Parallel(srcs []*source.Source) []CompiledResult {
	results := make([]CompiledResult, len(srcs))
	var g errgroup.Group
	for i, src := range srcs {
		i, src := i, src
		g.Go(func() error {
			r, fresh := s.st.Compile(src)
			results[i] = CompiledResult{Result: r, Fresh: fresh}
			return nil
		})
	}
	_ = g.Wait() // Compile never returns an error; only panics (invariant violations) propagate.
	return results
}
