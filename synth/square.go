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

// Square generates the samples for one note on the square channel. The
// output is at +PeakAmplitude for the first duty fraction of each period
// and at -PeakAmplitude for the remainder.
//
// The duty cycle is what gives the square channel its range of timbres, so
// it must be specified for every note; values outside the open interval
// (0,1) are rejected. A frequency of zero is also rejected. Rests are the
// sequencer's responsibility and routing one here would otherwise mean a
// division by zero in the period calculation.
func Square(rate int, freq float64, d time.Duration, duty float64) ([]int16, error) {
	if freq <= 0 {
		return nil, curated.Errorf(InvalidNote, fmt.Sprintf("square: frequency must be positive (%.1fHz)", freq))
	}
	if duty <= 0 || duty >= 1 {
		return nil, curated.Errorf(InvalidNote, fmt.Sprintf("square: duty cycle out of range (%.2f)", duty))
	}
	if d <= 0 {
		return nil, curated.Errorf(InvalidNote, fmt.Sprintf("square: duration must be positive (%v)", d))
	}

	buf := make([]int16, NumSamples(rate, d))

	// period length in samples. not necessarily a whole number
	period := float64(rate) / freq
	high := duty * period

	for i := range buf {
		if math.Mod(float64(i), period) < high {
			buf[i] = PeakAmplitude
		} else {
			buf[i] = -PeakAmplitude
		}
	}

	return buf, nil
}
