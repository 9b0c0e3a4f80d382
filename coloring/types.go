// Package coloring contracts, options, and sentinel errors.
package coloring

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/localcolor/core"
)

// BorderColor is the distinguished sentinel color used as a wall between two
// differently phased 2-colored regions. It is a regular member of the color
// alphabet ({0, 1, BorderColor}), not a separate type.
const BorderColor = 2

const (
	// minCeiling is where every greedy escalation starts (plain 2-coloring).
	minCeiling = 2
	// maxCeiling caps every escalation; failing at maxCeiling is fatal.
	maxCeiling = 20
)

// Sentinel errors for coloring strategies.
var (
	// ErrNoColoring indicates the exhaustive search ran out of colorings
	// under the allowed ceiling. Callers have no recovery path.
	ErrNoColoring = errors.New("coloring: no valid coloring within ceiling")

	// ErrNilGraph indicates a nil graph was passed to a strategy.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrNilNode indicates a nil point of change was passed to a strategy.
	ErrNilNode = errors.New("coloring: point of change is nil")
)

// Online assigns a color to the newly revealed node, using only the current
// partial graph. It must not modify any other node.
type Online func(g *core.Graph, changed *core.Node) (int, error)

// DynamicLocal is a dynamic/local algorithm: Step may revise many nodes
// around the point of change and returns their new colors. Locality declares
// the maximum graph distance from the point of change at which Step is
// allowed to change a node, as a function of the current node count.
//
// Locality is a should-hold contract: the grid adapter verifies it after the
// fact and logs violations rather than rejecting them.
type DynamicLocal interface {
	Locality(nodeCount int) int
	Step(g *core.Graph, changed *core.Node) (map[*core.Node]int, error)
}

// Options carries the tunables shared by the strategy constructors.
type Options struct {
	// Logger receives advisory diagnostics (parity conflicts, failed seals,
	// residual local conflicts). Never written on success paths.
	Logger *log.Logger

	// PaletteSize is the color alphabet used by RandomColoring.
	PaletteSize int

	// MaxAttempts is RandomColoring's guess budget before falling back to
	// the exhaustive search.
	MaxAttempts int

	// Seed drives RandomColoring; 0 selects a fixed default seed.
	Seed int64

	// MinComponentSize is the threshold below which a region component is
	// considered too small to vote in parity classification.
	MinComponentSize int
}

// Option mutates Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns the canonical strategy tunables:
// quiet warn-level logger, palette of 3 colors, 1e6 random attempts,
// fixed default seed, component threshold 3.
func DefaultOptions() Options {
	return Options{
		Logger:           defaultLogger(),
		PaletteSize:      BorderColor + 1,
		MaxAttempts:      1_000_000,
		Seed:             0,
		MinComponentSize: 3,
	}
}

// WithLogger routes advisory diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithPaletteSize sets RandomColoring's color alphabet size (minimum 1).
func WithPaletteSize(k int) Option {
	return func(o *Options) {
		if k >= 1 {
			o.PaletteSize = k
		}
	}
}

// WithMaxAttempts sets RandomColoring's guess budget (minimum 1).
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxAttempts = n
		}
	}
}

// WithSeed fixes the random stream; 0 keeps the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMinComponentSize sets the parity-vote size threshold (minimum 1).
func WithMinComponentSize(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MinComponentSize = n
		}
	}
}

// defaultLogger builds the quiet default: warnings and worse to stderr.
func defaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.WarnLevel,
		Prefix: "coloring",
	})
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
