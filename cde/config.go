package cde

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/irregularpack/cde/geom"
	"github.com/irregularpack/cde/quadtree"
	"github.com/irregularpack/cde/surrogate"
)

// Config holds every tunable the engine exposes. Zero
// values for the epsilon fields mean "derive from the bin diagonal",
// matching geom.DefaultTolerance.
type Config struct {
	MaxDepth          int     `yaml:"max_depth"`
	CDThreshold       int     `yaml:"cd_threshold"`
	AbsEpsilon        float64 `yaml:"abs_epsilon"`
	AngleEpsilon      float64 `yaml:"angle_epsilon"`
	MinItemSeparation float64 `yaml:"min_item_separation"`

	SurrogateMaxPoles      int     `yaml:"surrogate_max_poles"`
	SurrogateMinRadiusFrac float64 `yaml:"surrogate_min_radius_fraction"`
	SurrogatePierGapFrac   float64 `yaml:"surrogate_pier_gap_fraction"`

	// NFastFailPoles and NFastFailPiers size the fail-fast subsets the
	// two-phase query pipeline tests before the exact sweep.
	NFastFailPoles int `yaml:"n_ff_poles"`
	NFastFailPiers int `yaml:"n_ff_piers"`

	// PoleCoverageSchedule is the tiered (count, coverage) stopping rule
	// for pole generation. A zero-value (nil) schedule
	// falls back to surrogate.DefaultBuildConfig's own schedule.
	PoleCoverageSchedule []surrogate.CoverageTier `yaml:"pole_coverage_schedule"`

	PreprocessConcavityMouthWidth float64 `yaml:"preprocess_concavity_mouth_width"`
	PreprocessSimplifyTolerance   float64 `yaml:"preprocess_simplify_tolerance"`
}

// DefaultConfig returns the engine's documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:               12,
		CDThreshold:            16,
		MinItemSeparation:      0,
		SurrogateMaxPoles:      12,
		SurrogateMinRadiusFrac: 0.005,
		SurrogatePierGapFrac:   1.0 / 40,
		NFastFailPoles:         4,
		NFastFailPiers:         4,
	}
}

// LoadConfig reads a YAML config file, starting from DefaultConfig and
// overlaying whatever fields the file sets.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func (c Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func (c Config) quadtreeConfig() quadtree.Config {
	return quadtree.Config{MaxDepth: c.MaxDepth, Threshold: c.CDThreshold}
}

func (c Config) tolerance(binDiagonal float64) geom.Tolerance {
	tol := geom.DefaultTolerance(binDiagonal)
	if c.AbsEpsilon > 0 {
		tol.AbsEpsilon = c.AbsEpsilon
	}
	if c.AngleEpsilon > 0 {
		tol.AngleEpsilon = c.AngleEpsilon
	}
	return tol
}

func (c Config) surrogateConfig(bound geom.Rect, tol geom.Tolerance) surrogate.BuildConfig {
	sc := surrogate.DefaultBuildConfig(bound, tol)
	if c.SurrogateMaxPoles > 0 {
		sc.MaxPoles = c.SurrogateMaxPoles
	}
	diag := bound.Diagonal()
	if c.SurrogateMinRadiusFrac > 0 {
		sc.MinRadius = diag * c.SurrogateMinRadiusFrac
	}
	if c.SurrogatePierGapFrac > 0 {
		sc.PierGap = diag * c.SurrogatePierGapFrac
	}
	if c.NFastFailPoles > 0 {
		sc.NFastFailPoles = c.NFastFailPoles
	}
	if c.NFastFailPiers > 0 {
		sc.NFastFailPiers = c.NFastFailPiers
	}
	if len(c.PoleCoverageSchedule) > 0 {
		sc.PoleCoverageSchedule = c.PoleCoverageSchedule
	}
	return sc
}

func (c Config) preprocessConfig(tol geom.Tolerance) geom.PreprocessConfig {
	return geom.PreprocessConfig{
		Tolerance:           tol,
		ConcavityMouthWidth: c.PreprocessConcavityMouthWidth,
		SimplifyTolerance:   c.PreprocessSimplifyTolerance,
		Inflate:             c.MinItemSeparation,
	}
}
