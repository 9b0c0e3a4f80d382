package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/localcolor/coloring"
)

// strategyBuilders maps scenario names to constructors. All constructors get
// the scenario radius and the harness logger; the online first-fit rule is
// bridged through Adapt and ignores the radius.
var strategyBuilders = map[string]func(radius int, l *log.Logger) coloring.DynamicLocal{
	"greedy": func(r int, _ *log.Logger) coloring.DynamicLocal {
		return coloring.NeighborhoodGreedy(r)
	},
	"minimal": func(r int, _ *log.Logger) coloring.DynamicLocal {
		return coloring.MinimalGreedy(r)
	},
	"random": func(r int, l *log.Logger) coloring.DynamicLocal {
		return coloring.RandomColoring(r, coloring.WithLogger(l))
	},
	"parity": func(r int, l *log.Logger) coloring.DynamicLocal {
		return coloring.ParityBorderColoring(r, coloring.WithLogger(l))
	},
	"component": func(r int, l *log.Logger) coloring.DynamicLocal {
		return coloring.BorderComponentColoring(r, coloring.WithLogger(l))
	},
	"anticollision": func(r int, l *log.Logger) coloring.DynamicLocal {
		return coloring.AntiCollisionColoring(r, coloring.WithLogger(l))
	},
	"firstfit": func(int, *log.Logger) coloring.DynamicLocal {
		return coloring.Adapt(coloring.FirstFit)
	},
}

// strategyNames lists the known strategies, sorted for help text.
func strategyNames() string {
	names := make([]string, 0, len(strategyBuilders))
	for name := range strategyBuilders {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

// buildStrategy resolves a scenario's strategy name.
func buildStrategy(s Scenario, l *log.Logger) (coloring.DynamicLocal, error) {
	build, ok := strategyBuilders[s.Strategy]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (known: %s)", s.Strategy, strategyNames())
	}

	return build(s.Radius, l), nil
}
