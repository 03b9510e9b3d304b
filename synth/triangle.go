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
)

// TriangleLevels is the number of amplitude steps the triangle channel can
// output. The source hardware produced its triangle from a small DAC rather
// than a smooth ramp and the stepping is audible, so the quantization is
// part of the channel's contract and not an artefact to be smoothed away.
const TriangleLevels = 16

// Triangle generates the samples for one note on the triangle channel. The
// amplitude ramps linearly from -PeakAmplitude to +PeakAmplitude and back
// over each period, quantized to TriangleLevels steps.
//
// A frequency of zero is rejected for the same reason as in Square().
func Triangle(rate int, freq float64, d time.Duration) ([]int16, error) {
	if freq <= 0 {
		return nil, curated.Errorf(InvalidNote, fmt.Sprintf("triangle: frequency must be positive (%.1fHz)", freq))
	}
	if d <= 0 {
		return nil, curated.Errorf(InvalidNote, fmt.Sprintf("triangle: duration must be positive (%v)", d))
	}

	buf := make([]int16, NumSamples(rate, d))

	period := float64(rate) / freq

	for i := range buf {
		pos := math.Mod(float64(i), period) / period

		// unquantized ramp in the range [-1,1]
		var v float64
		if pos < 0.5 {
			v = 4*pos - 1
		} else {
			v = 3 - 4*pos
		}

		// snap to the nearest of the TriangleLevels output steps
		step := math.Round((v + 1) / 2 * (TriangleLevels - 1))
		q := step/(TriangleLevels-1)*2 - 1

		buf[i] = int16(math.Round(q * float64(PeakAmplitude)))
	}

	return buf, nil
}
