package oracle

import (
	"github.com/sgklab/evoso/internal/errors"
	"github.com/sgklab/evoso/internal/optimization"
)

// Scripted is an oracle replaying a fixed sequence of choices. It makes the
// interactive components deterministic under test.
type Scripted struct {
	choices []optimization.Choice
	next    int

	// Questions records every question asked, in order.
	Questions []string
}

var _ optimization.Oracle = (*Scripted)(nil)

// NewScripted creates an oracle answering with the given choices in order.
func NewScripted(choices ...optimization.Choice) *Scripted {
	return &Scripted{choices: choices}
}

// Choose returns the next scripted choice, or an error when the script is
// exhausted.
func (s *Scripted) Choose(question string) (optimization.Choice, error) {
	s.Questions = append(s.Questions, question)
	if s.next >= len(s.choices) {
		return 0, errors.Errorf("script exhausted after %d choices", len(s.choices)).
			WithComponent("oracle").
			WithOperation("Choose")
	}
	c := s.choices[s.next]
	s.next++
	return c, nil
}
