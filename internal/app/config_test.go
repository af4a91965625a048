package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/halninethousand/3d-cell-automata/internal/rule"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Rule != "445" || cfg.Size != 64 || cfg.TPS != 20 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	r, err := cfg.BuildRule()
	if err != nil {
		t.Fatal(err)
	}
	if r != rule.Rule445() {
		t.Fatalf("default rule = %+v, want 445", r)
	}
}

func TestApplyFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "rule: builder\nsize: 32\ntps: 5\n")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.ApplyFile(fs); err != nil {
		t.Fatal(err)
	}

	if cfg.Rule != "builder" || cfg.Size != 32 || cfg.TPS != 5 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	// Keys the file does not name keep their defaults.
	if cfg.Seed != 1337 || cfg.Addr != ":8080" {
		t.Fatalf("unnamed keys clobbered: %+v", cfg)
	}
}

func TestFlagsBeatFile(t *testing.T) {
	path := writeConfig(t, "rule: builder\nsize: 32\n")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-size", "48"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.ApplyFile(fs); err != nil {
		t.Fatal(err)
	}

	if cfg.Size != 48 {
		t.Fatalf("explicit flag lost to file: size = %d", cfg.Size)
	}
	if cfg.Rule != "builder" {
		t.Fatalf("file value dropped: rule = %q", cfg.Rule)
	}
}

func TestCustomRuleFromFile(t *testing.T) {
	path := writeConfig(t, `
survival: [13, 14]
survival_range: [17, 19]
birth: [4]
states: 6
method: von-neumann
`)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.ApplyFile(fs); err != nil {
		t.Fatal(err)
	}

	r, err := cfg.BuildRule()
	if err != nil {
		t.Fatal(err)
	}
	want := rule.Rule{
		Survival: rule.FromCounts(13, 14).Union(rule.FromRange(17, 19)),
		Birth:    rule.FromCounts(4),
		States:   6,
		Method:   rule.VonNeumann,
	}
	if r != want {
		t.Fatalf("custom rule = %+v, want %+v", r, want)
	}
}

func TestBuildRuleErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Rule = "no-such-rule"
	if _, err := cfg.BuildRule(); err == nil {
		t.Fatal("unknown preset must fail")
	}

	cfg = NewConfig()
	cfg.Rule = ""
	if _, err := cfg.BuildRule(); err == nil {
		t.Fatal("empty rule with no custom definition must fail")
	}

	cfg = NewConfig()
	cfg.Rule = ""
	cfg.Survival = []int{4}
	cfg.Birth = []int{4}
	cfg.States = 0
	if _, err := cfg.BuildRule(); err == nil {
		t.Fatal("custom rule without states must fail")
	}

	cfg.States = 5
	cfg.Method = "hexagonal"
	if _, err := cfg.BuildRule(); err == nil {
		t.Fatal("unknown neighbor method must fail")
	}
}

func TestColorsFromFile(t *testing.T) {
	path := writeConfig(t, "birth_color: [0, 0, 1, 1]\ndeath_color: [1, 1, 0, 1]\n")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.ApplyFile(fs); err != nil {
		t.Fatal(err)
	}

	colors := cfg.Colors()
	if colors.Birth[2] != 1 || colors.Death[0] != 1 {
		t.Fatalf("colors not applied: %+v", colors)
	}
}

func TestApplyFileMissingIsNoOp(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.ApplyFile(nil); err != nil {
		t.Fatal(err)
	}
	cfg.File = filepath.Join(t.TempDir(), "absent.yaml")
	if err := cfg.ApplyFile(nil); err == nil {
		t.Fatal("a named but unreadable file must error")
	}
}
