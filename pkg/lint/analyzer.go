package lint

import (
	"io"
	"log/slog"
	"sort"

	"github.com/leapstack-labs/bearlint/pkg/pyast"
)

// Analyzer runs a registry's rules over host-provided trees. It is
// immutable after construction and safe for concurrent use; each Analyze
// call owns its traversal state.
type Analyzer struct {
	registry *Registry
	config   *Config
	logger   *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithLogger sets the logger used for per-run diagnostics.
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// NewAnalyzer creates an analyzer over the given registry and config.
// A nil config means everything at defaults.
func NewAnalyzer(registry *Registry, config *Config, opts ...AnalyzerOption) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	a := &Analyzer{
		registry: registry,
		config:   config,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Registry returns the analyzer's rule registry.
func (a *Analyzer) Registry() *Registry {
	return a.registry
}

// Analyze traverses the tree once, dispatching every enabled rule, and
// returns the ordered, deduplicated, suppression-filtered report. It
// returns an error only when the tree itself is malformed; individual
// rule failures surface as Faults in the report.
func (a *Analyzer) Analyze(tree *pyast.Module, suppressions SuppressionMap) (*Report, error) {
	w := newWalker(a.registry, a.config)
	if err := w.run(tree); err != nil {
		a.logger.Error("analysis aborted", "error", err)
		return nil, err
	}

	violations := Filter(w.col.finalize(), suppressions)

	faults := w.faults
	sort.SliceStable(faults, func(i, j int) bool {
		if faults[i].Pos.Line != faults[j].Pos.Line {
			return faults[i].Pos.Line < faults[j].Pos.Line
		}
		return faults[i].RuleCode < faults[j].RuleCode
	})
	for _, f := range faults {
		a.logger.Warn("rule fault", "rule", f.RuleCode, "line", f.Pos.Line, "error", f.Err)
	}

	a.logger.Debug("analysis complete",
		"violations", len(violations),
		"faults", len(faults))

	return &Report{Violations: violations, Faults: faults}, nil
}
