// This file is part of ChipDJ.
//
// ChipDJ is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ChipDJ is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ChipDJ.  If not, see <https://www.gnu.org/licenses/>.

package synth

import (
	"fmt"
	"math"
	"time"

	"github.com/chipdj/chipdj/curated"
	"github.com/chipdj/chipdj/melody"
	"github.com/chipdj/chipdj/synth/mix"
)

// InvalidNote is the curated error pattern for notes that cannot be
// rendered: an unrecognised channel tag, a non-positive duration, a duty
// cycle or density outside its valid range, or a frequency of zero routed
// to a generator. An invalid note is fatal to the whole render; notes are
// never silently skipped.
const InvalidNote = "invalid note: %v"

// DefaultGap is the silence inserted between consecutive notes of a voice.
const DefaultGap = 5 * time.Millisecond

// seed for the noise register when the Renderer doesn't specify one.
const defaultNoiseSeed = 0x0001

// Renderer turns melodies into sample buffers. The zero value is usable
// and equivalent to NewRenderer().
//
// A Renderer carries no state between renders so a single Renderer may be
// used from multiple goroutines.
type Renderer struct {
	// samples per second. DefaultSampleRate when zero
	Rate int

	// silence between consecutive notes. DefaultGap when zero
	Gap time.Duration

	// envelope applied to every note. DefaultEnvelope when zero
	Env Envelope

	// seed for the noise channel's shift register
	NoiseSeed uint16
}

// NewRenderer returns a Renderer with every field set to its default.
func NewRenderer() *Renderer {
	return &Renderer{
		Rate:      DefaultSampleRate,
		Gap:       DefaultGap,
		Env:       DefaultEnvelope,
		NoiseSeed: defaultNoiseSeed,
	}
}

func (r *Renderer) rate() int {
	if r.Rate <= 0 {
		return DefaultSampleRate
	}
	return r.Rate
}

func (r *Renderer) gap() time.Duration {
	if r.Gap <= 0 {
		return DefaultGap
	}
	return r.Gap
}

func (r *Renderer) envelope() Envelope {
	if r.Env == (Envelope{}) {
		return DefaultEnvelope
	}
	return r.Env
}

func (r *Renderer) noiseSeed() uint16 {
	if r.NoiseSeed == 0 {
		return defaultNoiseSeed
	}
	return r.NoiseSeed
}

// Voice renders a single voice to a sample buffer: each note is generated
// on its channel, shaped by the envelope, scaled by the voice gain, and
// concatenated with the inter-note gap. Rests occupy exactly the same
// number of samples that a sounding note of the same duration would.
func (r *Renderer) Voice(v melody.Voice) ([]int16, error) {
	rate := r.rate()
	env := r.envelope()

	gain := v.Gain
	if gain == 0 {
		gain = 1
	}
	if gain < 0 || gain > 1 {
		return nil, curated.Errorf(InvalidNote, fmt.Sprintf("voice gain out of range (%.2f)", v.Gain))
	}

	gapBuf := make([]int16, NumSamples(rate, r.gap()))

	out := make([]int16, 0, NumSamples(rate, v.Duration(r.gap())))

	for i, n := range v.Notes {
		buf, err := r.note(n, rate)
		if err != nil {
			return nil, err
		}

		buf = env.Shape(buf, rate)

		if gain != 1 {
			buf = scale(buf, gain)
		}

		out = append(out, buf...)
		if i < len(v.Notes)-1 {
			out = append(out, gapBuf...)
		}
	}

	return out, nil
}

// Melody renders every voice of a melody and mixes the results into one
// buffer. Single-voice melodies bypass the mixer.
func (r *Renderer) Melody(m melody.Melody) ([]int16, error) {
	if len(m.Voices) == 0 {
		return nil, curated.Errorf(InvalidNote, fmt.Sprintf("melody %s has no voices", m.Name))
	}

	if len(m.Voices) == 1 {
		return r.Voice(m.Voices[0])
	}

	buffers := make([][]int16, len(m.Voices))
	for i, v := range m.Voices {
		buf, err := r.Voice(v)
		if err != nil {
			return nil, err
		}
		buffers[i] = buf
	}

	return mix.Mono(buffers...), nil
}

// note dispatches to the generator for the note's channel. rests become
// silent buffers of the correct length without involving a generator.
func (r *Renderer) note(n melody.Note, rate int) ([]int16, error) {
	if n.Duration <= 0 {
		return nil, curated.Errorf(InvalidNote, fmt.Sprintf("duration must be positive (%v)", n.Duration))
	}

	if n.IsRest() {
		return make([]int16, NumSamples(rate, n.Duration)), nil
	}

	switch n.Channel {
	case melody.Square:
		return Square(rate, n.Freq, n.Duration, n.Duty)
	case melody.Triangle:
		return Triangle(rate, n.Freq, n.Duration)
	case melody.Noise:
		return Noise(rate, n.Duration, n.Density, r.noiseSeed())
	}

	return nil, curated.Errorf(InvalidNote, fmt.Sprintf("unrecognised channel (%d)", n.Channel))
}

func scale(samples []int16, gain float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = int16(math.Round(float64(s) * gain))
	}
	return out
}
