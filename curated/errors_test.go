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

package curated_test

import (
	"errors"
	"testing"

	"github.com/chipdj/chipdj/curated"
	"github.com/chipdj/chipdj/test"
)

const testPattern = "test: %v"
const wrapPattern = "wrap: %v"

func TestIdentity(t *testing.T) {
	e := curated.Errorf(testPattern, "failure")

	test.Equate(t, curated.IsAny(e), true)
	test.Equate(t, curated.Is(e, testPattern), true)
	test.Equate(t, curated.Is(e, wrapPattern), false)

	// an error from the standard library is not curated
	f := errors.New("failure")
	test.Equate(t, curated.IsAny(f), false)
	test.Equate(t, curated.Is(f, testPattern), false)
	test.Equate(t, curated.Has(f, testPattern), false)
}

func TestWrapping(t *testing.T) {
	e := curated.Errorf(testPattern, "failure")
	w := curated.Errorf(wrapPattern, e)

	// Is() does not look down the chain but Has() does
	test.Equate(t, curated.Is(w, testPattern), false)
	test.Equate(t, curated.Has(w, testPattern), true)
	test.Equate(t, curated.Has(w, wrapPattern), true)

	test.Equate(t, w.Error(), "wrap: test: failure")
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate message parts are removed when the error message
	// is rendered
	e := curated.Errorf("melody: %v", curated.Errorf("melody: %v", "no such theme"))
	test.Equate(t, e.Error(), "melody: no such theme")
}
