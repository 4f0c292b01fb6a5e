package plan

import (
	"io"
	"log/slog"
)

// Options controls planning behavior.
type Options struct {
	// IterateResolution re-runs conflict detection and eviction until no
	// conflicts remain, instead of the default single greedy pass. The
	// single pass is the default because its eviction choices are the ones
	// existing images were laid out with; enable iteration when an
	// unresolved-overlap failure is worse than a few extra relocations.
	IterateResolution bool

	// Logger receives stage-level debug output (evictions, hole inventory,
	// placements). Nil discards everything.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
