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

// Package digest produces SHA-1 fingerprints of rendered sample buffers.
// Two renders of the same melody must produce the same fingerprint. The
// fingerprint is a convenient way of comparing a render against a previous
// run without storing the full sample data.
package digest

import (
	"crypto/sha1"
	"fmt"
)

// Audio returns the fingerprint of a sample buffer as a hex string. The
// samples are hashed in little-endian byte order, matching the byte order
// of the data chunk written by the wavfile package.
func Audio(samples []int16) string {
	b := make([]byte, len(samples)*2)
	for i, s := range samples {
		b[i*2] = byte(s)
		b[i*2+1] = byte(uint16(s) >> 8)
	}
	return fmt.Sprintf("%x", sha1.Sum(b))
}
