// Package sound plays the interval-complete chime through PulseAudio.
package sound

import (
	"fmt"
	"io"
	"math"

	"github.com/jfreymuth/pulse"
)

const (
	sampleRate  = 44100
	noteSeconds = 0.18
	amplitude   = 0.25
)

// chime is a rising two-note figure: A5 then D6.
var chimeNotes = []float64{880, 1174.66}

// Player synthesizes and plays the completion chime. The zero value is not
// usable; construct with NewPlayer.
type Player struct {
	samples []float32
}

// NewPlayer prepares the chime waveform once up front.
func NewPlayer() *Player {
	return &Player{samples: synthesize(chimeNotes)}
}

// Play connects to the Pulse server, streams the chime, and drains. Every
// failure path returns an error for the caller to discard; a missing or
// unwilling audio server must never matter to the timer.
func (p *Player) Play() error {
	client, err := pulse.NewClient(pulse.ClientApplicationName("jaskfocus"))
	if err != nil {
		return fmt.Errorf("connect pulse server: %w", err)
	}
	defer client.Close()

	var pos int
	reader := pulse.Float32Reader(func(out []float32) (int, error) {
		if pos >= len(p.samples) {
			return 0, io.EOF
		}
		n := copy(out, p.samples[pos:])
		pos += n
		return n, nil
	})

	stream, err := client.NewPlayback(reader, pulse.PlaybackSampleRate(sampleRate), pulse.PlaybackMono)
	if err != nil {
		return fmt.Errorf("open playback stream: %w", err)
	}
	defer stream.Close()

	stream.Start()
	stream.Drain()
	if err := stream.Error(); err != nil {
		return fmt.Errorf("play chime: %w", err)
	}
	return nil
}

// synthesize renders each note as a decaying sine so the chime ends without a
// click.
func synthesize(notes []float64) []float32 {
	noteLen := int(noteSeconds * sampleRate)
	out := make([]float32, 0, noteLen*len(notes))
	for _, freq := range notes {
		for i := 0; i < noteLen; i++ {
			envelope := 1 - float64(i)/float64(noteLen)
			v := amplitude * envelope * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
			out = append(out, float32(v))
		}
	}
	return out
}
