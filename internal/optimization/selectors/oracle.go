package selectors

import (
	"github.com/sgklab/evoso/internal/errors"
	"github.com/sgklab/evoso/internal/optimization"
)

const compareQuestion = "Which is better for you, parent or offspring? 0: parent, 1: offspring."

// Oracle selects the next generation by human judgment. For every slot it
// persists the parent and the offspring candidate to fixed, overwritten
// paths, optionally auditions them, then blocks on the oracle's binary
// choice. No history is retained across slots or generations.
type Oracle struct {
	writer   optimization.SolutionWriter
	basePath string
	oracle   optimization.Oracle
	preview  func(path string) error
}

var _ optimization.Selector = (*Oracle)(nil)

// OracleOption configures an Oracle selector.
type OracleOption func(*Oracle)

// WithPreview registers a playback hook invoked with each candidate's path
// after it has been written, before the choice is requested.
func WithPreview(preview func(path string) error) OracleOption {
	return func(s *Oracle) {
		s.preview = preview
	}
}

// NewOracle creates a human-judged selector writing candidates through
// writer at basePath ("parent.wav" and "offspring.wav" are appended).
func NewOracle(writer optimization.SolutionWriter, basePath string, oracle optimization.Oracle, opts ...OracleOption) *Oracle {
	s := &Oracle{writer: writer, basePath: basePath, oracle: oracle}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select builds the next population in slot order, one judgment per slot.
// Writer and oracle failures propagate unmodified.
func (s *Oracle) Select(parents, offsprings optimization.Population) (optimization.Population, error) {
	next := make(optimization.Population, 0, len(parents))
	for i := range parents {
		parentPath := s.basePath + "parent.wav"
		offspringPath := s.basePath + "offspring.wav"

		if err := s.render(parents[i], parentPath); err != nil {
			return nil, err
		}
		if err := s.render(offsprings[i], offspringPath); err != nil {
			return nil, err
		}

		c, err := s.oracle.Choose(compareQuestion)
		if err != nil {
			return nil, err
		}
		if c == optimization.ChoiceYes {
			next = append(next, offsprings[i])
		} else {
			next = append(next, parents[i])
		}
	}
	return next, nil
}

func (s *Oracle) render(sol optimization.Solution, path string) error {
	if err := s.writer.SaveSolution(sol, path); err != nil {
		return errors.Wrapf(err, "saving candidate %s", path).
			WithComponent("selectors").
			WithOperation("Select")
	}
	if s.preview != nil {
		if err := s.preview(path); err != nil {
			return errors.Wrapf(err, "auditioning candidate %s", path).
				WithComponent("selectors").
				WithOperation("Select")
		}
	}
	return nil
}
