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

package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Roll returns the rotation of the controller around its length in degrees,
// in the range -180 to 180. The controller points down the negative Z axis
// with its right side along positive X. Positive roll raises the right side.
func Roll(q mgl32.Quat) float32 {
	right := q.Normalize().Rotate(mgl32.Vec3{1, 0, 0})
	return mgl32.RadToDeg(float32(math.Atan2(float64(right.Y()), float64(right.X()))))
}
