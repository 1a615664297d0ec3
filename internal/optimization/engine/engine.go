// Package engine implements the optimization control loops: the automatic
// evolve/evaluate/select loop for closed-form problems and the interactive
// loop for human-judged ones.
package engine

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/sgklab/evoso/internal/optimization"
)

// Recorder receives run telemetry as a side effect of the loop. The engine
// never reads it back; implementations decide what to do with the counts.
type Recorder interface {
	AddEvaluations(n int)
	IncGenerations()
	ObserveBest(value float64)
}

// NopRecorder discards all telemetry.
type NopRecorder struct{}

func (NopRecorder) AddEvaluations(int)  {}
func (NopRecorder) IncGenerations()     {}
func (NopRecorder) ObserveBest(float64) {}

// MultiRecorder fans telemetry out to several recorders.
type MultiRecorder []Recorder

func (m MultiRecorder) AddEvaluations(n int) {
	for _, r := range m {
		r.AddEvaluations(n)
	}
}

func (m MultiRecorder) IncGenerations() {
	for _, r := range m {
		r.IncGenerations()
	}
}

func (m MultiRecorder) ObserveBest(v float64) {
	for _, r := range m {
		r.ObserveBest(v)
	}
}

// Basic runs the automatic loop for problems with a closed-form objective:
// initialize, then evolve, evaluate, select until the problem terminates.
type Basic struct {
	problem  optimization.EquationProblem
	operator optimization.Operator
	selector optimization.Selector
	logger   *zap.Logger
	rec      Recorder
	result   optimization.Population
}

// BasicOption configures a Basic engine.
type BasicOption func(*Basic)

// WithLogger sets the engine's logger.
func WithLogger(logger *zap.Logger) BasicOption {
	return func(e *Basic) {
		e.logger = logger
	}
}

// WithRecorder sets the engine's telemetry recorder.
func WithRecorder(rec Recorder) BasicOption {
	return func(e *Basic) {
		e.rec = rec
	}
}

// NewBasic creates an automatic engine from a problem, an operator, and a
// selector.
func NewBasic(problem optimization.EquationProblem, operator optimization.Operator, selector optimization.Selector, opts ...BasicOption) *Basic {
	e := &Basic{
		problem:  problem,
		operator: operator,
		selector: selector,
		logger:   zap.NewNop(),
		rec:      NopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the loop until the problem's termination predicate fires at
// loop top, then returns the final population. Evaluation and selection
// failures abort the run; there are no partial results.
func (e *Basic) Run(ctx context.Context) (optimization.Population, error) {
	pop, err := e.problem.Initialize()
	if err != nil {
		return nil, err
	}
	e.rec.AddEvaluations(len(pop))
	e.observe(0, pop)

	generation := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		terminated, err := e.problem.Terminated()
		if err != nil {
			return nil, err
		}
		if terminated {
			break
		}

		generation++
		offsprings := e.operator.Evolve(pop)
		offsprings = e.problem.EvaluateAll(offsprings)
		e.rec.AddEvaluations(len(offsprings))

		pop, err = e.selector.Select(pop, offsprings)
		if err != nil {
			return nil, err
		}

		e.rec.IncGenerations()
		e.observe(generation, pop)
	}

	e.result = pop
	return pop, nil
}

// Result returns the final population of the last completed run.
func (e *Basic) Result() optimization.Population {
	return e.result
}

// observe logs per-generation statistics and feeds the best objective to
// the recorder.
func (e *Basic) observe(generation int, pop optimization.Population) {
	objs := make([]float64, 0, len(pop))
	for _, s := range pop {
		if s.Evaluated() {
			objs = append(objs, s.Objective[0])
		}
	}
	if len(objs) == 0 {
		return
	}

	best := pop.Best()
	e.rec.ObserveBest(pop[best].Objective[0])
	e.logger.Info("generation complete",
		zap.Int("generation", generation),
		zap.Float64("best", pop[best].Objective[0]),
		zap.Float64("mean", stat.Mean(objs, nil)),
	)
}

// Sound runs the interactive loop: no evaluation step exists, selection and
// termination are driven by a human oracle, and the generation count is
// reported on the interactive console as the run progresses.
type Sound struct {
	problem    optimization.Problem
	operator   optimization.Operator
	selector   optimization.Selector
	out        io.Writer
	logger     *zap.Logger
	rec        Recorder
	generation int
	result     optimization.Population
}

// SoundOption configures a Sound engine.
type SoundOption func(*Sound)

// WithSoundLogger sets the engine's logger.
func WithSoundLogger(logger *zap.Logger) SoundOption {
	return func(e *Sound) {
		e.logger = logger
	}
}

// WithSoundRecorder sets the engine's telemetry recorder.
func WithSoundRecorder(rec Recorder) SoundOption {
	return func(e *Sound) {
		e.rec = rec
	}
}

// NewSound creates an interactive engine. Progress messages for the human
// judge are written to out.
func NewSound(problem optimization.Problem, operator optimization.Operator, selector optimization.Selector, out io.Writer, opts ...SoundOption) *Sound {
	e := &Sound{
		problem:  problem,
		operator: operator,
		selector: selector,
		out:      out,
		logger:   zap.NewNop(),
		rec:      NopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the interactive loop until the oracle terminates it. Oracle
// and writer failures abort the run unhandled.
func (e *Sound) Run(ctx context.Context) (optimization.Population, error) {
	pop, err := e.problem.Initialize()
	if err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		terminated, err := e.problem.Terminated()
		if err != nil {
			return nil, err
		}
		if terminated {
			break
		}

		e.generation++
		fmt.Fprintf(e.out, "Execute the %d-th optimization procedure.\n", e.generation)
		e.logger.Info("interactive generation", zap.Int("generation", e.generation))

		offsprings := e.operator.Evolve(pop)
		pop, err = e.selector.Select(pop, offsprings)
		if err != nil {
			return nil, err
		}
		e.rec.IncGenerations()
	}

	e.result = pop
	return pop, nil
}

// Result returns the final population of the last completed run.
func (e *Sound) Result() optimization.Population {
	return e.result
}

// Generation returns the number of completed interactive generations.
func (e *Sound) Generation() int {
	return e.generation
}
