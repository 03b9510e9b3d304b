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

	"github.com/chipdj/chipdj/digest"
	"github.com/chipdj/chipdj/melody"
	"github.com/chipdj/chipdj/synth"
	"github.com/chipdj/chipdj/test"
)

// rendering is pure computation: the same theme through two independent
// renderers must produce bit-identical output. the noise channel is the
// part most likely to regress here, which is why clown is in the list.
func TestRenderDeterminism(t *testing.T) {
	fingerprints := make(map[string]string)

	for _, name := range melody.Names() {
		m, err := melody.Lookup(name)
		test.ExpectedSuccess(t, err)

		a, err := synth.NewRenderer().Melody(m)
		test.ExpectedSuccess(t, err)

		b, err := synth.NewRenderer().Melody(m)
		test.ExpectedSuccess(t, err)

		da := digest.Audio(a)
		test.Equate(t, da, digest.Audio(b))

		fingerprints[name] = da
	}

	// and the themes are not somehow all the same render
	test.Equate(t, fingerprints["mario"] == fingerprints["clown"], false)
	test.Equate(t, fingerprints["mario"] == fingerprints["desperado"], false)
}
