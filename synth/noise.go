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
	"time"

	"github.com/chipdj/chipdj/curated"
)

// the noise register is 15 bits wide with feedback taps at bits 0 and 1,
// the long-sequence configuration of the emulated chip. the sequence
// repeats after 32767 register states.
const noiseRegisterWidth = 15

// Noise generates the samples for one note on the noise channel. The
// output flips between +PeakAmplitude and -PeakAmplitude according to the
// low bit of a linear-feedback shift register. There is no true randomness
// anywhere: the same seed, density, and duration always produce the same
// samples.
//
// The density is the number of samples each register state is held for.
// Larger values shift the noise energy downwards, from hiss towards
// rumble. The seed must be non-zero; an all-zero register never leaves the
// zero state.
func Noise(rate int, d time.Duration, density int, seed uint16) ([]int16, error) {
	if density < 1 {
		return nil, curated.Errorf(InvalidNote, fmt.Sprintf("noise: density must be at least 1 (%d)", density))
	}
	if d <= 0 {
		return nil, curated.Errorf(InvalidNote, fmt.Sprintf("noise: duration must be positive (%v)", d))
	}

	reg := seed & (1<<noiseRegisterWidth - 1)
	if reg == 0 {
		return nil, curated.Errorf(InvalidNote, "noise: seed must be non-zero")
	}

	buf := make([]int16, NumSamples(rate, d))

	hold := 0
	for i := range buf {
		if reg&0x01 == 0x01 {
			buf[i] = PeakAmplitude
		} else {
			buf[i] = -PeakAmplitude
		}

		hold++
		if hold == density {
			hold = 0
			fb := (reg ^ reg>>1) & 0x01
			reg = reg>>1 | fb<<(noiseRegisterWidth-1)
		}
	}

	return buf, nil
}
