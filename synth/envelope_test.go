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

package synth_test

import (
	"testing"
	"time"

	"github.com/chipdj/chipdj/synth"
	"github.com/chipdj/chipdj/test"
)

// a constant buffer at peak amplitude makes the gain curve directly
// visible in the output
func flatBuffer(n int) []int16 {
	buf := make([]int16, n)
	for i := range buf {
		buf[i] = synth.PeakAmplitude
	}
	return buf
}

func TestEnvelopeEndpoints(t *testing.T) {
	env := synth.Envelope{
		Attack:  10 * time.Millisecond,
		Decay:   50 * time.Millisecond,
		Sustain: 0.75,
		Release: 40 * time.Millisecond,
	}

	in := flatBuffer(44100)
	out := env.Shape(in, 44100)

	test.Equate(t, len(out), len(in))

	// the attack starts from silence and the release returns to it
	test.Equate(t, out[0], 0)
	test.Equate(t, out[len(out)-1], 0)

	// halfway through a one second note we are well inside the hold
	// phase: gain is exactly the sustain level
	test.Equate(t, out[len(out)/2], 19661)

	// the input buffer is left untouched
	test.Equate(t, in[0], int(synth.PeakAmplitude))
}

func TestEnvelopeScaledWindows(t *testing.T) {
	// attack+decay+release is 400ms but the note is only 100ms long: the
	// windows scale down proportionally and the curve still fits exactly
	env := synth.Envelope{
		Attack:  100 * time.Millisecond,
		Decay:   100 * time.Millisecond,
		Sustain: 0.5,
		Release: 200 * time.Millisecond,
	}

	out := env.Shape(flatBuffer(100), 1000)

	test.Equate(t, len(out), 100)
	test.Equate(t, out[0], 0)
	test.Equate(t, out[len(out)-1], 0)

	// scaled windows are attack 25, decay 25, release 50. the peak of the
	// curve is at the end of the attack window
	test.Equate(t, out[24], int(synth.PeakAmplitude))
}

func TestEnvelopeEmptyBuffer(t *testing.T) {
	out := synth.DefaultEnvelope.Shape([]int16{}, 44100)
	test.Equate(t, len(out), 0)
}
