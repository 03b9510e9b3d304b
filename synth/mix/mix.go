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

// Package mix combines the sample streams of simultaneously sounding
// voices into a single mono stream.
//
// Summing int16 samples can exceed the int16 range. The sum is clamped to
// the valid range, never wrapped: wrapping turns a loud moment into a
// full-scale pop of the opposite sign, clamping merely flattens it.
package mix

import "math"

// Mono sums any number of sample buffers into a new buffer the length of
// the longest input. Shorter inputs count as silence once exhausted. A
// single input passes through unchanged.
func Mono(buffers ...[]int16) []int16 {
	if len(buffers) == 0 {
		return nil
	}
	if len(buffers) == 1 {
		return buffers[0]
	}

	length := 0
	for _, b := range buffers {
		if len(b) > length {
			length = len(b)
		}
	}

	out := make([]int16, length)

	for i := 0; i < length; i++ {
		var sum int32
		for _, b := range buffers {
			if i < len(b) {
				sum += int32(b[i])
			}
		}

		if sum > math.MaxInt16 {
			sum = math.MaxInt16
		} else if sum < math.MinInt16 {
			sum = math.MinInt16
		}

		out[i] = int16(sum)
	}

	return out
}
