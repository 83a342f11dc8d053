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

package sdlinput

import (
	"github.com/jetsetilly/gopherinput/backends/joystick"
	"github.com/veandco/go-sdl2/sdl"
)

var hatAngles = map[byte]int{
	sdl.HAT_UP:        0,
	sdl.HAT_RIGHTUP:   4500,
	sdl.HAT_RIGHT:     9000,
	sdl.HAT_RIGHTDOWN: 13500,
	sdl.HAT_DOWN:      18000,
	sdl.HAT_LEFTDOWN:  22500,
	sdl.HAT_LEFT:      27000,
	sdl.HAT_LEFTUP:    31500,
}

// hatAngle converts the SDL hat state to a POV angle.
func hatAngle(hat byte) int {
	if a, ok := hatAngles[hat]; ok {
		return a
	}
	return joystick.POVCentered
}
