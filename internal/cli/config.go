package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Scenario describes one reveal run. Zero values fall back to defaults, so a
// TOML file may specify only the fields it cares about.
type Scenario struct {
	Rows     int    `toml:"rows"`
	Cols     int    `toml:"cols"`
	Steps    int    `toml:"steps"` // 0 means fill the whole grid
	Strategy string `toml:"strategy"`
	Radius   int    `toml:"radius"`
	Seed     int64  `toml:"seed"`
	Order    string `toml:"order"` // "sequential" or "random"
}

// defaultScenario returns the out-of-the-box run.
func defaultScenario() Scenario {
	return Scenario{
		Rows:     10,
		Cols:     10,
		Strategy: "minimal",
		Radius:   2,
		Order:    "sequential",
	}
}

// loadScenario reads a TOML scenario file over the defaults.
func loadScenario(path string) (Scenario, error) {
	s := defaultScenario()
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Scenario{}, fmt.Errorf("load scenario %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Scenario{}, fmt.Errorf("load scenario %s: unknown key %q", path, undecoded[0].String())
	}

	return s, nil
}

// validate rejects impossible scenarios before any work happens.
func (s Scenario) validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("grid must be positive, got %d×%d", s.Rows, s.Cols)
	}
	if s.Steps < 0 || s.Steps > s.Rows*s.Cols {
		return fmt.Errorf("steps must be within 0..%d, got %d", s.Rows*s.Cols, s.Steps)
	}
	if s.Radius < 0 {
		return fmt.Errorf("radius must be non-negative, got %d", s.Radius)
	}
	if s.Order != "sequential" && s.Order != "random" {
		return fmt.Errorf("order must be sequential or random, got %q", s.Order)
	}

	return nil
}
