package rule

import "sort"

// Factory constructs a preset rule.
type Factory func() Rule

var presets = map[string]Factory{}

// Register adds a rule factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Lookup resolves a preset name to its rule.
func Lookup(name string) (Rule, bool) {
	f, ok := presets[name]
	if !ok {
		return Rule{}, false
	}
	return f(), true
}

// Names returns the registered preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("445", Rule445)
	Register("builder", Builder)
	Register("fancy-snancy", FancySnancy)
	Register("pretty-crystals", PrettyCrystals)
	Register("expanding-blob", ExpandingBlob)
	Register("crystal-growth", CrystalGrowth)
}
