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

import "math"

// Deadzone returns zero for values within the deadzone. Values outside of the
// deadzone are rescaled so that the output rises continuously from zero at
// the edge of the deadzone to 1.0 at full deflection.
//
// Values and the deadzone are normalised to the range -1.0 to 1.0.
func Deadzone(v float64, deadzone float64) float64 {
	if deadzone <= 0 {
		return v
	}
	if deadzone >= 1.0 {
		return 0
	}
	m := math.Abs(v)
	if m <= deadzone {
		return 0
	}
	return math.Copysign((m-deadzone)/(1.0-deadzone), v)
}

// CrossDeadzone applies Deadzone() to each axis of a stick independently.
func CrossDeadzone(x float64, y float64, deadzone float64) (float64, float64) {
	return Deadzone(x, deadzone), Deadzone(y, deadzone)
}

// SquareDeadzone zeroes both axes of a stick if both are within the
// deadzone. Otherwise both are returned unchanged.
func SquareDeadzone(x float64, y float64, deadzone float64) (float64, float64) {
	if math.Abs(x) <= deadzone && math.Abs(y) <= deadzone {
		return 0, 0
	}
	return x, y
}
