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
	"math"
	"time"
)

// Envelope is an attack/decay/sustain/release amplitude curve, applied per
// note. Gain ramps from zero to one over the attack window, down to the
// sustain level over the decay window, holds, and ramps to zero over the
// release window.
type Envelope struct {
	Attack  time.Duration
	Decay   time.Duration
	Release time.Duration

	// gain during the hold phase, in the range [0,1]
	Sustain float64
}

// DefaultEnvelope suits the short notes of the builtin themes: a fast
// attack so note onsets stay percussive, and enough release to stop the
// note ending with a click.
var DefaultEnvelope = Envelope{
	Attack:  10 * time.Millisecond,
	Decay:   50 * time.Millisecond,
	Sustain: 0.75,
	Release: 40 * time.Millisecond,
}

// Shape applies the envelope to a raw sample buffer, returning a new
// buffer of the same length. The input buffer is not modified.
//
// If the buffer is shorter than attack+decay+release the three windows are
// scaled down proportionally so the curve fits the buffer exactly. The
// curve never overruns and never leaves unshaped samples at the tail.
func (env Envelope) Shape(samples []int16, rate int) []int16 {
	out := make([]int16, len(samples))
	n := len(samples)
	if n == 0 {
		return out
	}

	aS := NumSamples(rate, env.Attack)
	dS := NumSamples(rate, env.Decay)
	rS := NumSamples(rate, env.Release)

	if total := aS + dS + rS; total > n {
		scale := float64(n) / float64(total)
		aS = int(float64(aS) * scale)
		dS = int(float64(dS) * scale)
		rS = n - aS - dS
	}

	// length of the hold phase. zero when the windows have been scaled
	sus := n - aS - dS - rS

	for i := range samples {
		var gain float64

		switch {
		case i < aS:
			if aS > 1 {
				gain = float64(i) / float64(aS-1)
			}

		case i < aS+dS:
			gain = env.Sustain
			if dS > 1 {
				j := i - aS
				gain = 1 - (1-env.Sustain)*float64(j)/float64(dS-1)
			}

		case i < aS+dS+sus:
			gain = env.Sustain

		default:
			if rS > 1 {
				k := i - aS - dS - sus
				gain = env.Sustain * (1 - float64(k)/float64(rS-1))
			}
		}

		out[i] = int16(math.Round(float64(samples[i]) * gain))
	}

	return out
}
