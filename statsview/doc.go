// This file is part of Gopherinput.
//
// Gopherinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherinput.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview is a wrapper for the statsview package. It shows the
// memory and goroutine usage of the running program in a web browser, which
// is useful when checking that the poll loop does not allocate.
//
// The package is only functional when the "statsview" build tag is specified.
// Otherwise Available() returns false and Launch() does nothing.
package statsview
