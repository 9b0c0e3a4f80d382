package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/localcolor/partialgrid"
)

// newRunCmd builds the run subcommand: reveal cells of a fresh grid one at a
// time and color every reveal with the chosen strategy.
func newRunCmd() *cobra.Command {
	var (
		configPath string
		s          = defaultScenario()
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a reveal scenario on a fresh grid",
		Long: `Run reveals the cells of an empty grid one at a time, in sequential or
seeded-random order, and runs the chosen coloring strategy at every reveal.
The final coloring is rendered to stdout; --verbose traces each step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := loadScenario(configPath)
				if err != nil {
					return err
				}
				// Explicit flags override the file.
				applyFlagOverrides(cmd, &loaded, s)
				s = loaded
			}
			if err := s.validate(); err != nil {
				return err
			}

			return runScenario(cmd, s)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "f", "", "TOML scenario file")
	cmd.Flags().IntVar(&s.Rows, "rows", s.Rows, "grid height")
	cmd.Flags().IntVar(&s.Cols, "cols", s.Cols, "grid width")
	cmd.Flags().IntVar(&s.Steps, "steps", s.Steps, "reveals to perform (0 = whole grid)")
	cmd.Flags().StringVar(&s.Strategy, "strategy", s.Strategy, "coloring strategy: "+strategyNames())
	cmd.Flags().IntVar(&s.Radius, "radius", s.Radius, "locality radius")
	cmd.Flags().Int64Var(&s.Seed, "seed", s.Seed, "random-order seed (0 = fixed default)")
	cmd.Flags().StringVar(&s.Order, "order", s.Order, "reveal order: sequential or random")

	return cmd
}

// applyFlagOverrides copies every explicitly set flag from the command line
// scenario over the file-loaded one.
func applyFlagOverrides(cmd *cobra.Command, dst *Scenario, flags Scenario) {
	if cmd.Flags().Changed("rows") {
		dst.Rows = flags.Rows
	}
	if cmd.Flags().Changed("cols") {
		dst.Cols = flags.Cols
	}
	if cmd.Flags().Changed("steps") {
		dst.Steps = flags.Steps
	}
	if cmd.Flags().Changed("strategy") {
		dst.Strategy = flags.Strategy
	}
	if cmd.Flags().Changed("radius") {
		dst.Radius = flags.Radius
	}
	if cmd.Flags().Changed("seed") {
		dst.Seed = flags.Seed
	}
	if cmd.Flags().Changed("order") {
		dst.Order = flags.Order
	}
}

// revealOrder produces the coordinates to reveal, honoring the scenario's
// order and seed. Seed 0 keeps a fixed default so runs stay reproducible.
func revealOrder(s Scenario) []partialgrid.Coord {
	cells := make([]partialgrid.Coord, 0, s.Rows*s.Cols)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			cells = append(cells, partialgrid.Coord{Row: r, Col: c})
		}
	}
	if s.Order == "random" {
		seed := s.Seed
		if seed == 0 {
			seed = 1
		}
		rand.New(rand.NewSource(seed)).Shuffle(len(cells), func(i, j int) {
			cells[i], cells[j] = cells[j], cells[i]
		})
	}
	if s.Steps > 0 && s.Steps < len(cells) {
		cells = cells[:s.Steps]
	}

	return cells
}

// runScenario executes the reveal loop and renders the result.
func runScenario(cmd *cobra.Command, s Scenario) error {
	logger := loggerFromContext(cmd.Context())

	algo, err := buildStrategy(s, logger)
	if err != nil {
		return err
	}
	grid, err := partialgrid.New(s.Rows, s.Cols, partialgrid.WithLogger(logger))
	if err != nil {
		return err
	}

	order := revealOrder(s)
	start := time.Now()
	for i, at := range order {
		if err = grid.DynamicStep(at.Row, at.Col, algo); err != nil {
			return fmt.Errorf("step %d at (%d,%d): %w", i+1, at.Row, at.Col, err)
		}
		logger.Debug("revealed", "step", i+1, "row", at.Row, "col", at.Col)
	}
	logger.Info("scenario complete",
		"strategy", s.Strategy, "steps", len(order), "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderGrid(grid))
	fmt.Fprintln(out, renderSummary(grid, len(order)))

	return nil
}
