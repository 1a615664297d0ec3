package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sgklab/evoso/internal/audio"
	"github.com/sgklab/evoso/internal/codec"
	"github.com/sgklab/evoso/internal/errors"
	"github.com/sgklab/evoso/internal/monitor"
	"github.com/sgklab/evoso/internal/optimization/engine"
	"github.com/sgklab/evoso/internal/optimization/operators"
	"github.com/sgklab/evoso/internal/optimization/problems"
	"github.com/sgklab/evoso/internal/optimization/selectors"
	"github.com/sgklab/evoso/internal/oracle"
)

var (
	soundFiles     []string
	soundOut       string
	soundConverter string
	soundChannels  int
	soundRate      int
	soundF         float64
	soundSeed      int64
	soundPlay      bool
)

var soundCmd = &cobra.Command{
	Use:   "sound",
	Short: "Interactively evolve waveforms by human judgment",
	Long: `Reads the given WAV sources as the initial population and evolves them
with interactive differential evolution. Each generation, every candidate
pair is written out for audition and you choose which survives. Answer 1 to
keep optimizing, 0 to stop.`,
	RunE: runSound,
}

func init() {
	soundCmd.Flags().StringArrayVar(&soundFiles, "file", nil, "WAV source file (repeatable, at least 4)")
	soundCmd.Flags().StringVar(&soundOut, "out", ".", "Directory for candidate and result files")
	soundCmd.Flags().StringVar(&soundConverter, "converter", "TwoBytes", "Sample converter (TwoBytes, FourBytes)")
	soundCmd.Flags().IntVar(&soundChannels, "channels", 1, "Channel count of the sources")
	soundCmd.Flags().IntVar(&soundRate, "rate", 44100, "Frame rate of the sources")
	soundCmd.Flags().Float64Var(&soundF, "f", 1.0, "Scaling factor")
	soundCmd.Flags().Int64Var(&soundSeed, "seed", 0, "Random seed (0 = derive from clock)")
	soundCmd.Flags().BoolVar(&soundPlay, "play", false, "Play each candidate before asking for a judgment")
	_ = soundCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(soundCmd)
}

func runSound(cmd *cobra.Command, args []string) error {
	converterName := flagOrString(cmd, "converter", soundConverter, cfg.Sound.Converter)
	channels := flagOrInt(cmd, "channels", soundChannels, cfg.Sound.Channels)
	rate := flagOrInt(cmd, "rate", soundRate, cfg.Sound.SampleRate)
	outDir := flagOrString(cmd, "out", soundOut, cfg.Sound.OutDir)
	f := flagOrFloat(cmd, "f", soundF, cfg.Sound.F)
	seed := flagOrInt64(cmd, "seed", soundSeed, cfg.Sound.Seed)

	if len(soundFiles) < operators.MinPopulation {
		return errors.Errorf("at least %d source files are required, got %d", operators.MinPopulation, len(soundFiles)).
			WithComponent("sound").
			WithOperation("run")
	}

	conv, err := codec.New(converterName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	logger.Info("starting sound optimization",
		zap.Strings("files", soundFiles),
		zap.String("converter", converterName),
		zap.Float64("f", f),
	)

	console := oracle.NewConsole(os.Stdin, os.Stdout)
	writer := audio.NewWave(channels, conv.Width(), rate, conv)

	basePath := outDir + string(filepath.Separator)
	var opts []selectors.OracleOption
	if soundPlay {
		opts = append(opts, selectors.WithPreview(audio.Play))
	}
	selector := selectors.NewOracle(writer, basePath, console, opts...)

	problem := problems.NewSound(soundFiles, conv,
		problems.SourceReaderFunc(audio.ReadFrames), console)
	operator := operators.NewIDE(f, seed)

	tracker := monitor.NewTracker()
	eng := engine.NewSound(problem, operator, selector, os.Stdout,
		engine.WithSoundLogger(logger),
		engine.WithSoundRecorder(tracker),
	)

	fmt.Println("Start sound optimization.")
	result, err := eng.Run(cmd.Context())
	if err != nil {
		return err
	}

	for i, sol := range result {
		path := filepath.Join(outDir, fmt.Sprintf("pop%d.wav", i+1))
		if err := writer.SaveSolution(sol, path); err != nil {
			return err
		}
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		absOut = outDir
	}
	fmt.Printf("The final result was saved in %s.\n", absOut)
	fmt.Println("Terminate sound optimization.")

	logger.Info("sound optimization finished",
		zap.Int("generations", eng.Generation()),
		zap.Int("population", len(result)),
	)
	return nil
}
