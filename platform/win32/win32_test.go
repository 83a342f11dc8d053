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

import (
	"testing"

	"github.com/jetsetilly/gopherinput/backends/joystick"
	"github.com/jetsetilly/gopherinput/test"
)

func TestScaleAxis(t *testing.T) {
	test.ExpectEquality(t, scaleAxis(0, 0, 65535), -joystick.AxisRange)
	test.ExpectEquality(t, scaleAxis(65535, 0, 65535), joystick.AxisRange)
	test.ExpectEquality(t, scaleAxis(32768, 0, 65535), 0)

	// out of range positions are clamped
	test.ExpectEquality(t, scaleAxis(10, 100, 200), -joystick.AxisRange)
	test.ExpectEquality(t, scaleAxis(300, 100, 200), joystick.AxisRange)

	// bad caps
	test.ExpectEquality(t, scaleAxis(50, 100, 100), 0)
}

func TestPOVAngle(t *testing.T) {
	test.ExpectEquality(t, povAngle(povCentered), joystick.POVCentered)
	test.ExpectEquality(t, povAngle(0), 0)
	test.ExpectEquality(t, povAngle(27000), 27000)
}
