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

// ButtonCode is the canonical identifier for a digital control. The value
// space is partitioned into contiguous ranges: keyboard, mouse, Novint
// devices, joysticks, Steam Controllers and motion controllers.
//
// Values are stable for the lifetime of the process and a physical control
// always maps to the same ButtonCode regardless of which backend produced the
// event.
type ButtonCode int

// ButtonCodeInvalid and ButtonCodeNone are sentinel values outside of the live
// range of button codes.
const (
	ButtonCodeInvalid ButtonCode = -1
	ButtonCodeNone    ButtonCode = 0
)

// Limits of the joystick range.
const (
	MaxJoysticks             = 4
	JoystickMaxButtonCount   = 32
	JoystickPOVButtonCount   = 4
	JoystickAxisButtonCount  = 12
	MaxSteamControllers      = 4
	MaxNovintDevices         = 2
	MaxMotionControllerCount = 1
)

// Keyboard keys.
const (
	KeyFirst ButtonCode = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyPad0
	KeyPad1
	KeyPad2
	KeyPad3
	KeyPad4
	KeyPad5
	KeyPad6
	KeyPad7
	KeyPad8
	KeyPad9
	KeyPadDivide
	KeyPadMultiply
	KeyPadMinus
	KeyPadPlus
	KeyPadEnter
	KeyPadDecimal
	KeyLBracket
	KeyRBracket
	KeySemicolon
	KeyApostrophe
	KeyBackQuote
	KeyComma
	KeyPeriod
	KeySlash
	KeyBackslash
	KeyMinus
	KeyEqual
	KeyEnter
	KeySpace
	KeyBackspace
	KeyTab
	KeyCapsLock
	KeyNumLock
	KeyEscape
	KeyScrollLock
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBreak
	KeyLShift
	KeyRShift
	KeyLAlt
	KeyRAlt
	KeyLControl
	KeyRControl
	KeyLWin
	KeyRWin
	KeyApp
	KeyUp
	KeyLeft
	KeyDown
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// toggle keys reflect the lock state reported by the OS rather than the
	// physical key
	KeyCapsLockToggle
	KeyNumLockToggle
	KeyScrollLockToggle

	KeyLast  = KeyScrollLockToggle
	KeyCount = KeyLast - KeyFirst + 1
)

// KeyNone is the same as ButtonCodeNone.
const KeyNone = KeyFirst

// Mouse buttons. The wheel directions are pseudo-buttons that are pressed and
// released immediately.
const (
	MouseFirst ButtonCode = KeyLast + 1 + iota
	MouseRight
	MouseMiddle
	Mouse4
	Mouse5
	MouseWheelUp
	MouseWheelDown

	MouseLast  = MouseWheelDown
	MouseCount = MouseLast - MouseFirst + 1
)

// MouseLeft is the first mouse button.
const MouseLeft = MouseFirst

// Novint Falcon buttons for two devices.
const (
	NovintFirst ButtonCode = MouseLast + 1 + iota
	NovintTriangleA
	NovintBoltA
	NovintPlusA
	NovintLogoB
	NovintTriangleB
	NovintBoltB
	NovintPlusB

	NovintLast  = NovintPlusB
	NovintCount = NovintLast - NovintFirst + 1
)

// NovintLogoA is the first Novint button.
const NovintLogoA = NovintFirst

// Joystick ranges. Each range is divided into MaxJoysticks blocks.
const (
	JoystickFirst           = NovintLast + 1
	JoystickFirstButton     = JoystickFirst
	JoystickLastButton      = JoystickFirstButton + MaxJoysticks*JoystickMaxButtonCount - 1
	JoystickFirstPOVButton  = JoystickLastButton + 1
	JoystickLastPOVButton   = JoystickFirstPOVButton + MaxJoysticks*JoystickPOVButtonCount - 1
	JoystickFirstAxisButton = JoystickLastPOVButton + 1
	JoystickLastAxisButton  = JoystickFirstAxisButton + MaxJoysticks*JoystickAxisButtonCount - 1
	JoystickLast            = JoystickLastAxisButton
)

// Xbox-style names for the first joystick. Other joysticks are reached with
// XKeyToButtonCode().
const (
	KeyXButtonA             = JoystickFirstButton + 0
	KeyXButtonB             = JoystickFirstButton + 1
	KeyXButtonX             = JoystickFirstButton + 2
	KeyXButtonY             = JoystickFirstButton + 3
	KeyXButtonLeftShoulder  = JoystickFirstButton + 4
	KeyXButtonRightShoulder = JoystickFirstButton + 5
	KeyXButtonBack          = JoystickFirstButton + 6
	KeyXButtonStart         = JoystickFirstButton + 7
	KeyXButtonStick1        = JoystickFirstButton + 8
	KeyXButtonStick2        = JoystickFirstButton + 9

	KeyXButtonUp    = JoystickFirstPOVButton + 0
	KeyXButtonRight = JoystickFirstPOVButton + 1
	KeyXButtonDown  = JoystickFirstPOVButton + 2
	KeyXButtonLeft  = JoystickFirstPOVButton + 3

	// axis buttons are ordered X+, X-, Y+, Y-, Z+, Z-, R+, R-, U+, U-, V+, V-
	KeyXStick1Right    = JoystickFirstAxisButton + 0
	KeyXStick1Left     = JoystickFirstAxisButton + 1
	KeyXStick1Down     = JoystickFirstAxisButton + 2
	KeyXStick1Up       = JoystickFirstAxisButton + 3
	KeyXButtonLTrigger = JoystickFirstAxisButton + 4
	KeyXButtonRTrigger = JoystickFirstAxisButton + 5
	KeyXStick2Right    = JoystickFirstAxisButton + 6
	KeyXStick2Left     = JoystickFirstAxisButton + 7
	KeyXStick2Down     = JoystickFirstAxisButton + 8
	KeyXStick2Up       = JoystickFirstAxisButton + 9
	KeyXStickVPositive = JoystickFirstAxisButton + 10
	KeyXStickVNegative = JoystickFirstAxisButton + 11
)

// Steam Controller pseudo-buttons. Each controller has a block of
// SteamControllerButtonCount codes, ordered by SKey.
const (
	SteamControllerFirst = JoystickLast + 1
	SteamControllerLast  = SteamControllerFirst + MaxSteamControllers*SteamControllerButtonCount - 1
)

// Motion controller buttons, including the roll pseudo-buttons synthesized
// from the orientation of the controller.
const (
	MotionFirst ButtonCode = SteamControllerLast + 1 + iota
	MotionSquare
	MotionCross
	MotionCircle
	MotionTriangle
	MotionMove
	MotionSelect
	MotionStart
	MotionPS
	MotionRollLeft
	MotionRollRight

	MotionLast  = MotionRollRight
	MotionCount = MotionLast - MotionFirst + 1
)

// MotionTrigger is the first motion controller button.
const MotionTrigger = MotionFirst

// ButtonCodeLast is the last valid ButtonCode and ButtonCodeCount is the
// number of codes in the button code space, including ButtonCodeNone.
const (
	ButtonCodeLast  = MotionLast
	ButtonCodeCount = ButtonCodeLast + 1
)

// IsValid returns true if the code is in the live range of button codes.
func (c ButtonCode) IsValid() bool {
	return c > ButtonCodeNone && c <= ButtonCodeLast
}

func (c ButtonCode) String() string {
	return ButtonCodeToString(c, false)
}

// IsKeyCode returns true if the code is a keyboard key.
func IsKeyCode(c ButtonCode) bool {
	return c > KeyFirst && c <= KeyLast
}

// IsMouseCode returns true if the code is a mouse button.
func IsMouseCode(c ButtonCode) bool {
	return c >= MouseFirst && c <= MouseLast
}

// IsNovintCode returns true if the code is a Novint button.
func IsNovintCode(c ButtonCode) bool {
	return c >= NovintFirst && c <= NovintLast
}

// IsJoystickCode returns true if the code is in any of the joystick ranges.
func IsJoystickCode(c ButtonCode) bool {
	return c >= JoystickFirst && c <= JoystickLast
}

// IsJoystickButtonCode returns true if the code is a joystick button.
func IsJoystickButtonCode(c ButtonCode) bool {
	return c >= JoystickFirstButton && c <= JoystickLastButton
}

// IsJoystickPOVCode returns true if the code is a joystick POV button.
func IsJoystickPOVCode(c ButtonCode) bool {
	return c >= JoystickFirstPOVButton && c <= JoystickLastPOVButton
}

// IsJoystickAxisCode returns true if the code is a joystick axis button.
func IsJoystickAxisCode(c ButtonCode) bool {
	return c >= JoystickFirstAxisButton && c <= JoystickLastAxisButton
}

// IsSteamControllerCode returns true if the code is a Steam Controller button.
func IsSteamControllerCode(c ButtonCode) bool {
	return c >= SteamControllerFirst && c <= SteamControllerLast
}

// IsMotionCode returns true if the code is a motion controller button.
func IsMotionCode(c ButtonCode) bool {
	return c >= MotionFirst && c <= MotionLast
}

// JoystickButton returns the code for button n of the joystick in the slot.
// Returns ButtonCodeInvalid if either argument is out of range.
func JoystickButton(slot int, n int) ButtonCode {
	if slot < 0 || slot >= MaxJoysticks || n < 0 || n >= JoystickMaxButtonCount {
		return ButtonCodeInvalid
	}
	return JoystickFirstButton + ButtonCode(slot*JoystickMaxButtonCount+n)
}

// JoystickPOVButton returns the code for POV direction n of the joystick in
// the slot. Directions are ordered up, right, down, left.
func JoystickPOVButton(slot int, n int) ButtonCode {
	if slot < 0 || slot >= MaxJoysticks || n < 0 || n >= JoystickPOVButtonCount {
		return ButtonCodeInvalid
	}
	return JoystickFirstPOVButton + ButtonCode(slot*JoystickPOVButtonCount+n)
}

// JoystickAxisButton returns the code for axis button n of the joystick in the
// slot. Axis buttons are ordered positive then negative for each of the axes
// X, Y, Z, R, U, V.
func JoystickAxisButton(slot int, n int) ButtonCode {
	if slot < 0 || slot >= MaxJoysticks || n < 0 || n >= JoystickAxisButtonCount {
		return ButtonCodeInvalid
	}
	return JoystickFirstAxisButton + ButtonCode(slot*JoystickAxisButtonCount+n)
}

// JoystickAxisButtonFor returns the positive or negative axis button for the
// axis of the joystick in the slot.
func JoystickAxisButtonFor(slot int, axis Axis, negative bool) ButtonCode {
	n := int(axis) * 2
	if negative {
		n++
	}
	return JoystickAxisButton(slot, n)
}

// JoystickSlot returns the joystick slot of a joystick code. Returns -1 for
// codes that are not joystick codes.
func JoystickSlot(c ButtonCode) int {
	switch {
	case IsJoystickButtonCode(c):
		return int(c-JoystickFirstButton) / JoystickMaxButtonCount
	case IsJoystickPOVCode(c):
		return int(c-JoystickFirstPOVButton) / JoystickPOVButtonCount
	case IsJoystickAxisCode(c):
		return int(c-JoystickFirstAxisButton) / JoystickAxisButtonCount
	}
	return -1
}

// SteamControllerButton returns the code for the key of the Steam Controller
// in the slot.
func SteamControllerButton(slot int, key SKey) ButtonCode {
	return SKeyToButtonCode(slot, key)
}
