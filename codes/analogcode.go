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

package codes

import "fmt"

// AnalogCode is the canonical identifier for a continuous control. Each code
// has a current value and a delta in the input state.
type AnalogCode int

// Axis identifies one of the six axes of a joystick.
type Axis int

// List of valid Axis values.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisR
	AxisU
	AxisV
	MaxJoystickAxes
)

var axisNames = [MaxJoystickAxes]string{"X", "Y", "Z", "R", "U", "V"}

func (a Axis) String() string {
	if a < 0 || a >= MaxJoystickAxes {
		return fmt.Sprintf("axis(%d)", int(a))
	}
	return axisNames[a]
}

// List of analog codes.
const (
	AnalogCodeInvalid AnalogCode = -1

	MouseX AnalogCode = iota - 1
	MouseY
	MouseXY
	MouseWheel

	JoystickFirstAxis
	JoystickLastAxis = JoystickFirstAxis + MaxJoysticks*AnalogCode(MaxJoystickAxes) - 1

	AnalogCodeLast  = JoystickLastAxis
	AnalogCodeCount = AnalogCodeLast + 1
)

// IsValid returns true if the code is in the live range of analog codes.
func (c AnalogCode) IsValid() bool {
	return c >= MouseX && c <= AnalogCodeLast
}

func (c AnalogCode) String() string {
	return AnalogCodeToString(c)
}

// JoystickAxis returns the analog code for the axis of the joystick in the
// slot. Returns AnalogCodeInvalid if either argument is out of range.
func JoystickAxis(slot int, axis Axis) AnalogCode {
	if slot < 0 || slot >= MaxJoysticks || axis < 0 || axis >= MaxJoystickAxes {
		return AnalogCodeInvalid
	}
	return JoystickFirstAxis + AnalogCode(slot*int(MaxJoystickAxes)+int(axis))
}

// IsJoystickAxis returns true if the analog code is a joystick axis.
func IsJoystickAxis(c AnalogCode) bool {
	return c >= JoystickFirstAxis && c <= JoystickLastAxis
}

// IsMouseAxis returns true if the analog code is a mouse axis or the wheel.
func IsMouseAxis(c AnalogCode) bool {
	return c >= MouseX && c <= MouseWheel
}
