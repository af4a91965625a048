package rule

// Rule is a complete cellular automaton rule: which neighbor counts keep a
// max-state cell alive, which counts spawn a new cell, how many decay states
// a dying cell passes through, and which neighborhood is counted. Rules are
// immutable configuration; a Rule is constructed once and shared read-only
// across steps.
type Rule struct {
	Survival Value
	Birth    Value
	// States is the value a newly born cell starts at. 0 is dead, 1 is
	// about to die; a cell that leaves max state decays one step at a
	// time until it reaches 0.
	States uint8
	Method Method
}

// New constructs a custom rule from explicit survival and birth count sets.
func New(survival, birth []int, states uint8, method Method) Rule {
	return Rule{
		Survival: FromCounts(survival...),
		Birth:    FromCounts(birth...),
		States:   states,
		Method:   method,
	}
}

// MaxState returns the state value of a newly born cell.
func (r Rule) MaxState() uint8 { return r.States }

// ShouldSurvive reports whether a max-state cell with the given neighbor
// count stays at max state.
func (r Rule) ShouldSurvive(neighbors int) bool { return r.Survival.Matches(neighbors) }

// ShouldBirth reports whether a dead cell with the given neighbor count is
// born.
func (r Rule) ShouldBirth(neighbors int) bool { return r.Birth.Matches(neighbors) }

// Rule445 is the classic 4/4/5 rule: survive on exactly 4 neighbors, born
// on exactly 4, five states, Moore neighborhood.
func Rule445() Rule {
	return New([]int{4}, []int{4}, 5, Moore)
}

// Builder grows complex expanding structures.
func Builder() Rule {
	return New([]int{2, 6, 9}, []int{4, 6, 8, 9, 10}, 10, Moore)
}

// FancySnancy produces dense chaotic patterns.
func FancySnancy() Rule {
	return New(
		[]int{0, 1, 2, 3, 7, 8, 9, 11, 13, 18, 21, 22, 24, 26},
		[]int{4, 13, 17, 20, 21, 22, 23, 24, 26},
		4, Moore,
	)
}

// PrettyCrystals forms crystalline structures.
func PrettyCrystals() Rule {
	return New([]int{5, 6, 7, 8}, []int{6, 7, 9}, 10, Moore)
}

// ExpandingBlob grows a slowly expanding blob with a long decay trail.
func ExpandingBlob() Rule {
	return Rule{
		Survival: FromRange(9, 26),
		Birth:    FromCounts(5, 6, 7, 12, 13, 15),
		States:   20,
		Method:   Moore,
	}
}

// CrystalGrowth is a von Neumann rule producing slow crystal lattices.
func CrystalGrowth() Rule {
	return Rule{
		Survival: FromRange(0, 6),
		Birth:    FromCounts(1, 3),
		States:   2,
		Method:   VonNeumann,
	}
}
