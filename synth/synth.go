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

// DefaultSampleRate is used by NewRenderer() and is the rate the builtin
// themes are tuned for.
const DefaultSampleRate = 44100

// PeakAmplitude is the output level of all three generators. It sits at 80%
// of the int16 range, leaving headroom before the mixer has to clamp.
const PeakAmplitude = int16(26214)

// NumSamples returns the exact number of samples needed to cover the
// specified duration at the specified sample rate. Every generator sizes
// its output with this function, which is what makes the total length of a
// rendered melody deterministic.
func NumSamples(rate int, d time.Duration) int {
	return int(math.Round(float64(d) * float64(rate) / float64(time.Second)))
}
