package problems

import (
	"github.com/sgklab/evoso/internal/codec"
	"github.com/sgklab/evoso/internal/errors"
	"github.com/sgklab/evoso/internal/optimization"
)

// SourceReader reads an audio source's raw PCM frame buffer.
type SourceReader interface {
	ReadFrames(path string) (frames int, data []byte, err error)
}

// SourceReaderFunc adapts a function to the SourceReader interface.
type SourceReaderFunc func(path string) (int, []byte, error)

// ReadFrames calls f.
func (f SourceReaderFunc) ReadFrames(path string) (int, []byte, error) {
	return f(path)
}

const terminateQuestion = "Please input 1 to proceed with optimization or 0 to terminate."

// Sound is the human-judged audio search problem. The initial population is
// decoded from a fixed set of source files; there is no closed-form
// evaluation, and termination is delegated to a human oracle.
type Sound struct {
	files  []string
	dec    codec.Codec
	reader SourceReader
	oracle optimization.Oracle
}

var _ optimization.Problem = (*Sound)(nil)

// NewSound creates a sound optimization problem over the given source
// files. The population size equals the number of sources.
func NewSound(files []string, dec codec.Codec, reader SourceReader, oracle optimization.Oracle) *Sound {
	return &Sound{files: files, dec: dec, reader: reader, oracle: oracle}
}

// Initialize reads each source's full PCM buffer, decodes it into a
// normalized float vector, and wraps it as an unevaluated solution. Reader
// failures propagate unmodified; the core performs no recovery for them.
func (p *Sound) Initialize() (optimization.Population, error) {
	pop := make(optimization.Population, 0, len(p.files))
	for _, path := range p.files {
		_, frames, err := p.reader.ReadFrames(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading sound source %s", path).
				WithComponent("problems").
				WithOperation("Initialize")
		}
		pop = append(pop, optimization.Unevaluated(p.dec.BytesToFloats(frames)))
	}
	return pop, nil
}

// Terminated asks the oracle whether to stop: "0" terminates, "1"
// continues. The oracle re-prompts on anything else, so the only error here
// is a lost input stream.
func (p *Sound) Terminated() (bool, error) {
	c, err := p.oracle.Choose(terminateQuestion)
	if err != nil {
		return false, err
	}
	return c == optimization.ChoiceNo, nil
}

// PopulationSize returns the number of source files.
func (p *Sound) PopulationSize() int {
	return len(p.files)
}
