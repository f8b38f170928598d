package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solventlabs/beliefgrid/pomdp"
	"github.com/solventlabs/beliefgrid/valueiter"
)

// ErrBadObjective is returned when an "objective" field names neither
// "min" nor "max".
var ErrBadObjective = errors.New("config: objective must be \"min\" or \"max\"")

// ErrBadTermCrit is returned when a "term_crit" field names neither
// "absolute" nor "relative".
var ErrBadTermCrit = errors.New("config: term_crit must be \"absolute\" or \"relative\"")

// File is the YAML-serializable shape of the engine's tunable parameters,
// named per SPEC_FULL.md §4.11.
type File struct {
	Resolution         int     `yaml:"resolution"`
	MaxIters           int     `yaml:"max_iters"`
	TermCrit           string  `yaml:"term_crit"`
	TermCritParam      float64 `yaml:"term_crit_param"`
	ErrorOnNonConverge bool    `yaml:"error_on_non_converge"`
	Objective          string  `yaml:"objective"`
	ExportStrategyPath string  `yaml:"export_strategy_path"`
}

// Resolved is the validated, typed form of File ready to populate an
// engine.Config. Objective here is the min/max direction (the file field
// is named "objective" per SPEC_FULL.md §4.11); engine.Config's own
// Objective field (reachability vs. expected reward) is selected
// separately by the CLI's -prop flag, not by this file.
type Resolved struct {
	Resolution         int
	MaxIters           int
	TermCrit           valueiter.TermCriterion
	TermCritParam      float64
	ErrorOnNonConverge bool
	Objective          pomdp.Direction
	ExportStrategyPath string
}

// Default returns the built-in defaults applied before a file or flags are
// merged in.
func Default() File {
	return File{
		Resolution:    8,
		MaxIters:      1000,
		TermCrit:      "absolute",
		TermCritParam: 1e-6,
		Objective:     "max",
	}
}

// Load reads a YAML config file at path, merging it over Default(). An
// empty path returns the defaults unchanged.
func Load(path string) (File, error) {
	f := Default()
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return f, nil
}

// Resolve validates File and converts its stringly-typed fields into the
// engine's enums.
func Resolve(f File) (Resolved, error) {
	var dir pomdp.Direction
	switch f.Objective {
	case "min":
		dir = pomdp.Min
	case "max", "":
		dir = pomdp.Max
	default:
		return Resolved{}, fmt.Errorf("config: objective=%q: %w", f.Objective, ErrBadObjective)
	}

	var term valueiter.TermCriterion
	switch f.TermCrit {
	case "relative":
		term = valueiter.Relative
	case "absolute", "":
		term = valueiter.Absolute
	default:
		return Resolved{}, fmt.Errorf("config: term_crit=%q: %w", f.TermCrit, ErrBadTermCrit)
	}

	return Resolved{
		Resolution:         f.Resolution,
		MaxIters:           f.MaxIters,
		TermCrit:           term,
		TermCritParam:      f.TermCritParam,
		ErrorOnNonConverge: f.ErrorOnNonConverge,
		Objective:          dir,
		ExportStrategyPath: f.ExportStrategyPath,
	}, nil
}
