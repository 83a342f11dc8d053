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

package joystick

// POVButtons converts the angle of a POV hat into a mask of the four
// direction buttons: up, right, down and left. Without diagonals the nearest
// direction is used. With diagonals an angle between two directions presses
// both.
func POVButtons(angle int, diagonals bool) uint64 {
	if angle < 0 {
		return 0
	}
	angle %= 36000

	if !diagonals {
		return 1 << uint(((angle+4500)/9000)%4)
	}

	sector := ((angle + 2250) / 4500) % 8
	if sector%2 == 0 {
		return 1 << uint(sector/2)
	}
	return 1<<uint(sector/2) | 1<<uint((sector/2+1)%4)
}
