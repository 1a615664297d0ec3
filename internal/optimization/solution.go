package optimization

// Solution pairs a decision vector with its objective value(s).
// A nil Objective marks the solution as not yet evaluated; it never
// participates in numeric comparisons.
type Solution struct {
	// Variables is the decision vector. Its length is fixed per problem
	// instance and identical across the whole population.
	Variables []float64

	// Objective holds the objective value(s), or nil if unevaluated.
	Objective []float64
}

// NewSolution creates an evaluated solution from a variable vector and
// objective values.
func NewSolution(vars, obj []float64) Solution {
	return Solution{Variables: vars, Objective: obj}
}

// Unevaluated creates a solution whose objective has not been computed.
func Unevaluated(vars []float64) Solution {
	return Solution{Variables: vars}
}

// Evaluated reports whether the solution carries an objective value.
func (s Solution) Evaluated() bool {
	return s.Objective != nil
}

// Clone returns a deep copy of the solution.
func (s Solution) Clone() Solution {
	c := Solution{Variables: append([]float64(nil), s.Variables...)}
	if s.Objective != nil {
		c.Objective = append([]float64(nil), s.Objective...)
	}
	return c
}

// CloneObjective returns a copy of the objective slice, or nil if the
// solution is unevaluated. Offspring carry their parent's stale objective
// through evolution, so the copy must not alias the parent's slice.
func (s Solution) CloneObjective() []float64 {
	if s.Objective == nil {
		return nil
	}
	return append([]float64(nil), s.Objective...)
}

// Population is an ordered, fixed-cardinality collection of solutions
// representing one generation. Index position is the unit of correspondence
// between parent and offspring generations.
type Population []Solution

// Dimension returns the length of the decision vectors, or 0 for an empty
// population.
func (p Population) Dimension() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0].Variables)
}

// Variables extracts the variable vectors of all members, row per member.
func (p Population) Variables() [][]float64 {
	vars := make([][]float64, len(p))
	for i, s := range p {
		vars[i] = s.Variables
	}
	return vars
}

// Objectives extracts the objective vectors of all members, row per member.
// Unevaluated members contribute a nil row.
func (p Population) Objectives() [][]float64 {
	objs := make([][]float64, len(p))
	for i, s := range p {
		objs[i] = s.Objective
	}
	return objs
}

// Best returns the index of the member with the smallest first objective
// component. Unevaluated members are skipped; -1 if none qualify.
func (p Population) Best() int {
	best := -1
	for i, s := range p {
		if !s.Evaluated() {
			continue
		}
		if best < 0 || s.Objective[0] < p[best].Objective[0] {
			best = i
		}
	}
	return best
}
