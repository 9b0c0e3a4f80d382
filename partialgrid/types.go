// Package partialgrid types: Coord, sentinel errors, and options.
package partialgrid

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
)

// Sentinel errors for grid operations and algorithm steps.
var (
	// ErrEmptyGrid indicates New was called with non-positive dimensions.
	ErrEmptyGrid = errors.New("partialgrid: rows and cols must be positive")

	// ErrOutOfBounds indicates a coordinate outside the grid rectangle.
	ErrOutOfBounds = errors.New("partialgrid: coordinate out of bounds")

	// ErrCellEmpty indicates Get was called on an empty cell.
	ErrCellEmpty = errors.New("partialgrid: cell is empty")

	// ErrNilAlgorithm indicates a step was invoked without an algorithm.
	ErrNilAlgorithm = errors.New("partialgrid: algorithm is nil")

	// ErrNoValue indicates the algorithm returned no usable color for the
	// changed cell. The step is rolled back.
	ErrNoValue = errors.New("partialgrid: algorithm produced no value for the changed cell")
)

// Coord addresses one grid cell.
type Coord struct {
	Row, Col int
}

// Options carries the grid tunables.
type Options struct {
	// Logger receives locality-violation diagnostics from DynamicStep.
	// Never written on success paths.
	Logger *log.Logger
}

// Option mutates Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns the canonical grid tunables: a quiet warn-level
// logger on stderr.
func DefaultOptions() Options {
	return Options{
		Logger: log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.WarnLevel,
			Prefix: "partialgrid",
		}),
	}
}

// WithLogger routes locality diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
