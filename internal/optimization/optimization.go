// Package optimization defines the core types and capabilities of the
// generate/evaluate/select loop: solutions, populations, and the operator,
// problem, selector, writer, and oracle contracts its engines compose.
package optimization

// Operator produces one offspring population from one parent population.
// The offspring population has the same size and dimension as its parent.
type Operator interface {
	Evolve(pop Population) Population
}

// Selector merges parent and offspring populations into the next
// generation, preserving population size and slot order.
type Selector interface {
	Select(parents, offsprings Population) (Population, error)
}

// Problem owns the search-space definition, initial-population generation,
// and termination judgment.
type Problem interface {
	// Initialize builds the initial population.
	Initialize() (Population, error)

	// Terminated reports whether the optimization should stop. It is
	// checked at the top of every generation.
	Terminated() (bool, error)
}

// EquationProblem is a problem with a closed-form objective.
type EquationProblem interface {
	Problem

	// Evaluate computes the objective of a single solution, returning a
	// new solution rather than mutating its argument.
	Evaluate(sol Solution) Solution

	// EvaluateAll evaluates every member and advances the evaluation
	// counter by the population size.
	EvaluateAll(pop Population) Population
}

// SolutionWriter persists a solution to a retrievable medium, overwriting
// whatever is already at path.
type SolutionWriter interface {
	SaveSolution(sol Solution, path string) error
}

// Choice is a validated binary answer from a human oracle.
type Choice int

const (
	// ChoiceNo is the "0" answer: stop, or keep the parent.
	ChoiceNo Choice = iota
	// ChoiceYes is the "1" answer: continue, or take the offspring.
	ChoiceYes
)

// Oracle is a blocking human decision source. Implementations validate
// input themselves and only ever return one of the two choices; the sole
// error path is losing the input stream.
type Oracle interface {
	Choose(question string) (Choice, error)
}
