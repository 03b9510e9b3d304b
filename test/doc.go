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

// Package test contains the helper functions used by the tests of the other
// packages in the project. The Equate() function compares a value against
// an expected value; ExpectedFailure() and ExpectedSuccess() check error
// and bool values for the outcome the test wants; and CompareWriter is an
// io.Writer that captures output for comparison against a reference string.
package test
