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

package backends

import "math/bits"

// ButtonDiff calls f for every bit in the lower n bits that differs between
// prev and next, in order of bit index. The down argument is the state of
// the bit in next.
func ButtonDiff(prev uint64, next uint64, n int, f func(i int, down bool)) {
	changed := prev ^ next
	if n < 64 {
		changed &= (1 << uint(n)) - 1
	}
	for changed != 0 {
		i := bits.TrailingZeros64(changed)
		changed &^= 1 << uint(i)
		f(i, next&(1<<uint(i)) != 0)
	}
}
