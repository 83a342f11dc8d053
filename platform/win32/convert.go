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

package win32

import "github.com/jetsetilly/gopherinput/backends/joystick"

// the POV value reported by winmm when the hat is centered.
const povCentered = 0xffff

// scaleAxis converts a position within the range reported by the device caps
// to the range of a joystick.Reading axis.
func scaleAxis(pos uint32, min uint32, max uint32) int {
	if max <= min {
		return 0
	}
	if pos < min {
		pos = min
	} else if pos > max {
		pos = max
	}
	span := int64(max - min)
	v := (int64(pos-min)*2*joystick.AxisRange + span/2) / span
	return int(v - joystick.AxisRange)
}

// povAngle converts a winmm POV value to a joystick.Reading POV.
func povAngle(pov uint32) int {
	if pov == povCentered || pov >= 36000 {
		return joystick.POVCentered
	}
	return int(pov)
}
