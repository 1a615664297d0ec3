package audio

import (
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/sgklab/evoso/internal/errors"
)

// Play decodes the WAV file at path and plays it to completion on the
// default output device. It blocks until playback finishes, matching the
// audition step of interactive selection.
func Play(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening candidate for playback").
			WithComponent("audio").
			WithOperation("Play")
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return errors.Wrap(err, "decoding candidate for playback").
			WithComponent("audio").
			WithOperation("Play")
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Millisecond*100)); err != nil {
		return errors.Wrap(err, "initializing speaker").
			WithComponent("audio").
			WithOperation("Play")
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}
