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

// XKey is the button index reported by an Xbox-style controller. The port of
// the controller selects the joystick block the key is translated into.
type XKey int

// List of valid XKey values.
const (
	XKeyNull XKey = iota
	XKeyButtonUp
	XKeyButtonDown
	XKeyButtonLeft
	XKeyButtonRight
	XKeyButtonStart
	XKeyButtonBack
	XKeyButtonStick1
	XKeyButtonStick2
	XKeyButtonA
	XKeyButtonB
	XKeyButtonX
	XKeyButtonY
	XKeyButtonLeftShoulder
	XKeyButtonRightShoulder
	XKeyButtonLTrigger
	XKeyButtonRTrigger
	XKeyStick1Up
	XKeyStick1Down
	XKeyStick1Left
	XKeyStick1Right
	XKeyStick2Up
	XKeyStick2Down
	XKeyStick2Left
	XKeyStick2Right
	XKeyMax
)

// codes for port zero. other ports are found by rebasing the code onto the
// joystick block for the port.
var xkeyCodes = [XKeyMax]ButtonCode{
	XKeyNull:                ButtonCodeNone,
	XKeyButtonUp:            KeyXButtonUp,
	XKeyButtonDown:          KeyXButtonDown,
	XKeyButtonLeft:          KeyXButtonLeft,
	XKeyButtonRight:         KeyXButtonRight,
	XKeyButtonStart:         KeyXButtonStart,
	XKeyButtonBack:          KeyXButtonBack,
	XKeyButtonStick1:        KeyXButtonStick1,
	XKeyButtonStick2:        KeyXButtonStick2,
	XKeyButtonA:             KeyXButtonA,
	XKeyButtonB:             KeyXButtonB,
	XKeyButtonX:             KeyXButtonX,
	XKeyButtonY:             KeyXButtonY,
	XKeyButtonLeftShoulder:  KeyXButtonLeftShoulder,
	XKeyButtonRightShoulder: KeyXButtonRightShoulder,
	XKeyButtonLTrigger:      KeyXButtonLTrigger,
	XKeyButtonRTrigger:      KeyXButtonRTrigger,
	XKeyStick1Up:            KeyXStick1Up,
	XKeyStick1Down:          KeyXStick1Down,
	XKeyStick1Left:          KeyXStick1Left,
	XKeyStick1Right:         KeyXStick1Right,
	XKeyStick2Up:            KeyXStick2Up,
	XKeyStick2Down:          KeyXStick2Down,
	XKeyStick2Left:          KeyXStick2Left,
	XKeyStick2Right:         KeyXStick2Right,
}

// XKeyToButtonCode translates the key of the Xbox-style controller in the port
// to a ButtonCode. XKeyNull translates to ButtonCodeNone. A port or key out of
// range translates to ButtonCodeInvalid.
func XKeyToButtonCode(port int, key XKey) ButtonCode {
	if port < 0 || port >= MaxJoysticks || key < XKeyNull || key >= XKeyMax {
		return ButtonCodeInvalid
	}

	c := xkeyCodes[key]
	switch {
	case IsJoystickButtonCode(c):
		return JoystickButton(port, int(c-JoystickFirstButton))
	case IsJoystickPOVCode(c):
		return JoystickPOVButton(port, int(c-JoystickFirstPOVButton))
	case IsJoystickAxisCode(c):
		return JoystickAxisButton(port, int(c-JoystickFirstAxisButton))
	}

	return c
}

// SKey is the button index of a Steam Controller. Analog controls that can
// act as digital controls (trackpad directions, full trigger pulls) have their
// own SKey values.
type SKey int

// List of valid SKey values.
const (
	SKeyA SKey = iota
	SKeyB
	SKeyX
	SKeyY
	SKeyDPadUp
	SKeyDPadRight
	SKeyDPadDown
	SKeyDPadLeft
	SKeyLeftBumper
	SKeyRightBumper
	SKeyLeftTrigger
	SKeyRightTrigger
	SKeyBack
	SKeyStart
	SKeySteam
	SKeyLeftPadFingerDown
	SKeyRightPadFingerDown
	SKeyLeftPadClick
	SKeyRightPadClick
	SKeyLeftPadUp
	SKeyLeftPadRight
	SKeyLeftPadDown
	SKeyLeftPadLeft
	SKeyRightPadUp
	SKeyRightPadRight
	SKeyRightPadDown
	SKeyRightPadLeft
	SKeyLeftPadSwipe
	SKeyRightPadSwipe
	SKeyLeftTriggerFull
	SKeyRightTriggerFull
	SKeyGyroActive

	SteamControllerButtonCount = iota
)

// SKeyToButtonCode translates the key of the Steam Controller in the port to a
// ButtonCode. A port or key out of range translates to ButtonCodeInvalid.
func SKeyToButtonCode(port int, key SKey) ButtonCode {
	if port < 0 || port >= MaxSteamControllers || key < 0 || int(key) >= SteamControllerButtonCount {
		return ButtonCodeInvalid
	}
	return SteamControllerFirst + ButtonCode(port*SteamControllerButtonCount+int(key))
}
