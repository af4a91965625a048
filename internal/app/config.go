package app

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/halninethousand/3d-cell-automata/internal/lattice"
	"github.com/halninethousand/3d-cell-automata/internal/rule"
)

// Config holds the host-side parameters shared by the viewer and the
// streaming server. Values come from defaults, then an optional YAML file,
// then command-line flags, with later sources winning.
type Config struct {
	File string

	Rule   string
	Size   int
	Seed   int64
	Radius int
	Amount int
	TPS    int
	Scale  int
	Addr   string

	// Custom rule definition; used when Rule is empty. Count sets and
	// ranges are unioned.
	Survival      []int
	Birth         []int
	SurvivalRange [2]int
	BirthRange    [2]int
	States        int
	Method        string

	BirthColor [4]float32
	DeathColor [4]float32
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rule:       "445",
		Size:       64,
		Seed:       1337,
		Radius:     6,
		Amount:     12 * 12 * 12,
		TPS:        20,
		Scale:      8,
		Addr:       ":8080",
		BirthColor: [4]float32{1, 0, 0, 1},
		DeathColor: [4]float32{0, 1, 0, 1},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "path to a YAML config file")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule preset name")
	fs.IntVar(&c.Size, "size", c.Size, "lattice edge length")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for cluster placement")
	fs.IntVar(&c.Radius, "radius", c.Radius, "seeding radius around the lattice center")
	fs.IntVar(&c.Amount, "amount", c.Amount, "number of seeding candidates")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (viewer)")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address (server)")
}

// fileConfig mirrors Config for YAML decoding. Pointer fields distinguish
// absent keys from zero values so a sparse file only overrides what it names.
type fileConfig struct {
	Rule   *string `yaml:"rule"`
	Size   *int    `yaml:"size"`
	Seed   *int64  `yaml:"seed"`
	Radius *int    `yaml:"radius"`
	Amount *int    `yaml:"amount"`
	TPS    *int    `yaml:"tps"`
	Scale  *int    `yaml:"scale"`
	Addr   *string `yaml:"addr"`

	Survival      []int   `yaml:"survival"`
	Birth         []int   `yaml:"birth"`
	SurvivalRange []int   `yaml:"survival_range"`
	BirthRange    []int   `yaml:"birth_range"`
	States        *int    `yaml:"states"`
	Method        *string `yaml:"method"`

	BirthColor []float32 `yaml:"birth_color"`
	DeathColor []float32 `yaml:"death_color"`
}

// ApplyFile merges the YAML file named by c.File into the config. Fields
// already set explicitly on fs keep their flag values; everything else the
// file names is overridden. A missing -config is a no-op.
func (c *Config) ApplyFile(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config: parse %s: %w", c.File, err)
	}

	set := map[string]bool{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	}

	if fc.Rule != nil && !set["rule"] {
		c.Rule = *fc.Rule
	}
	if fc.Size != nil && !set["size"] {
		c.Size = *fc.Size
	}
	if fc.Seed != nil && !set["seed"] {
		c.Seed = *fc.Seed
	}
	if fc.Radius != nil && !set["radius"] {
		c.Radius = *fc.Radius
	}
	if fc.Amount != nil && !set["amount"] {
		c.Amount = *fc.Amount
	}
	if fc.TPS != nil && !set["tps"] {
		c.TPS = *fc.TPS
	}
	if fc.Scale != nil && !set["scale"] {
		c.Scale = *fc.Scale
	}
	if fc.Addr != nil && !set["addr"] {
		c.Addr = *fc.Addr
	}

	c.Survival = append(c.Survival[:0], fc.Survival...)
	c.Birth = append(c.Birth[:0], fc.Birth...)
	if len(fc.SurvivalRange) == 2 {
		c.SurvivalRange = [2]int{fc.SurvivalRange[0], fc.SurvivalRange[1]}
	}
	if len(fc.BirthRange) == 2 {
		c.BirthRange = [2]int{fc.BirthRange[0], fc.BirthRange[1]}
	}
	if fc.States != nil {
		c.States = *fc.States
	}
	if fc.Method != nil {
		c.Method = *fc.Method
	}
	if len(fc.BirthColor) == 4 {
		copy(c.BirthColor[:], fc.BirthColor)
	}
	if len(fc.DeathColor) == 4 {
		copy(c.DeathColor[:], fc.DeathColor)
	}
	// A file defining a custom rule replaces the default preset unless a
	// preset was requested explicitly.
	if c.customRule() && fc.Rule == nil && !set["rule"] {
		c.Rule = ""
	}
	return nil
}

func (c *Config) customRule() bool {
	return len(c.Survival) > 0 || len(c.Birth) > 0 ||
		c.SurvivalRange != [2]int{} || c.BirthRange != [2]int{}
}

// BuildRule resolves the configured rule: a named preset when Rule is set,
// otherwise a custom rule assembled from the count sets and ranges.
func (c *Config) BuildRule() (rule.Rule, error) {
	if c.Rule != "" {
		r, ok := rule.Lookup(c.Rule)
		if !ok {
			return rule.Rule{}, fmt.Errorf("config: unknown rule %q (have %v)", c.Rule, rule.Names())
		}
		return r, nil
	}
	if !c.customRule() {
		return rule.Rule{}, fmt.Errorf("config: no rule preset and no custom rule defined")
	}
	if c.States < 1 || c.States > 255 {
		return rule.Rule{}, fmt.Errorf("config: custom rule needs states in [1,255], got %d", c.States)
	}
	method, ok := rule.ParseMethod(c.Method)
	if !ok {
		return rule.Rule{}, fmt.Errorf("config: unknown neighbor method %q", c.Method)
	}

	survival := rule.FromCounts(c.Survival...)
	if c.SurvivalRange != [2]int{} {
		survival = survival.Union(rule.FromRange(c.SurvivalRange[0], c.SurvivalRange[1]))
	}
	birth := rule.FromCounts(c.Birth...)
	if c.BirthRange != [2]int{} {
		birth = birth.Union(rule.FromRange(c.BirthRange[0], c.BirthRange[1]))
	}
	return rule.Rule{
		Survival: survival,
		Birth:    birth,
		States:   uint8(c.States),
		Method:   method,
	}, nil
}

// Colors returns the configured gradient.
func (c *Config) Colors() lattice.Colors {
	return lattice.Colors{
		Birth: mgl32.Vec4(c.BirthColor),
		Death: mgl32.Vec4(c.DeathColor),
	}
}
