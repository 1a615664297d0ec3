package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sgklab/evoso/internal/errors"
	"github.com/sgklab/evoso/internal/metrics"
	"github.com/sgklab/evoso/internal/monitor"
	"github.com/sgklab/evoso/internal/optimization/engine"
	"github.com/sgklab/evoso/internal/optimization/operators"
	"github.com/sgklab/evoso/internal/optimization/problems"
	"github.com/sgklab/evoso/internal/optimization/selectors"
)

var (
	spherePop   int
	sphereObjs  int
	sphereDim   int
	sphereMaxFE int
	sphereCR    float64
	sphereF     float64
	sphereSeed  int64
	monitorAddr string
)

var sphereCmd = &cobra.Command{
	Use:   "sphere",
	Short: "Minimize the sphere benchmark with differential evolution",
	RunE:  runSphere,
}

func init() {
	sphereCmd.Flags().IntVar(&spherePop, "pop", 50, "Population size")
	sphereCmd.Flags().IntVar(&sphereObjs, "objectives", 1, "Number of objectives")
	sphereCmd.Flags().IntVar(&sphereDim, "dim", 10, "Decision vector dimension")
	sphereCmd.Flags().IntVar(&sphereMaxFE, "max-fe", 10000, "Evaluation budget")
	sphereCmd.Flags().Float64Var(&sphereCR, "cr", 0.9, "Crossover rate")
	sphereCmd.Flags().Float64Var(&sphereF, "f", 0.5, "Scaling factor")
	sphereCmd.Flags().Int64Var(&sphereSeed, "seed", 0, "Random seed (0 = derive from clock)")
	sphereCmd.Flags().StringVar(&monitorAddr, "monitor", "", "Serve run telemetry on this address")
	rootCmd.AddCommand(sphereCmd)
}

func runSphere(cmd *cobra.Command, args []string) error {
	n := flagOrInt(cmd, "pop", spherePop, cfg.Sphere.PopulationSize)
	m := flagOrInt(cmd, "objectives", sphereObjs, cfg.Sphere.Objectives)
	d := flagOrInt(cmd, "dim", sphereDim, cfg.Sphere.Dimension)
	maxFE := flagOrInt(cmd, "max-fe", sphereMaxFE, cfg.Sphere.MaxEvaluations)
	cr := flagOrFloat(cmd, "cr", sphereCR, cfg.Evolution.CR)
	f := flagOrFloat(cmd, "f", sphereF, cfg.Evolution.F)
	addr := flagOrString(cmd, "monitor", monitorAddr, cfg.Monitor.Addr)

	seed := sphereSeed
	if !cmd.Flags().Changed("seed") {
		seed = cfg.Evolution.Seed
	}

	if n < operators.MinPopulation {
		return errors.Errorf("population size must be at least %d, got %d", operators.MinPopulation, n).
			WithComponent("sphere").
			WithOperation("run")
	}

	logger.Info("starting sphere optimization",
		zap.Int("pop", n),
		zap.Int("dim", d),
		zap.Int("max_fe", maxFE),
		zap.Float64("cr", cr),
		zap.Float64("f", f),
	)

	rec := metrics.NewRecorder()
	tracker := monitor.NewTracker()
	recorders := engine.MultiRecorder{rec, tracker}

	if addr != "" {
		srv := monitor.NewServer(addr, logger, tracker, rec.Registry())
		srv.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	problem := problems.NewSphere(n, m, d, maxFE, seed)
	operator := operators.NewDE(cr, f, seed)
	eng := engine.NewBasic(problem, operator, selectors.NewMin(),
		engine.WithLogger(logger),
		engine.WithRecorder(recorders),
	)

	result, err := eng.Run(cmd.Context())
	if err != nil {
		return err
	}

	best := result.Best()
	fmt.Printf("best objective: %g\n", result[best].Objective[0])
	fmt.Printf("best solution:  %v\n", result[best].Variables)
	logger.Info("sphere optimization finished",
		zap.Int("evaluations", problem.Evaluations()),
		zap.Float64("best", result[best].Objective[0]),
	)
	return nil
}
