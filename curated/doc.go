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

// Package curated is a lightweight alternative to the error wrapping found
// in the standard fmt package. Errors are created with Errorf(), which
// records the formatting pattern alongside the formatted values. The
// pattern doubles as the identity of the error.
//
//	err := curated.Errorf("synth: unsupported rate (%d)", rate)
//
//	if curated.Is(err, "synth: unsupported rate (%d)") {
//		...
//	}
//
// Packages that want their errors to be identifiable export their patterns
// as constants. The Has() function works like Is() but walks down the chain
// of wrapped curated errors, so an error remains classifiable after being
// wrapped at a package boundary.
//
// IsAny() simply reports whether an error originated from this package at
// all. An uncurated error reaching the top of the program indicates a
// failure that no package has taken responsibility for.
package curated
