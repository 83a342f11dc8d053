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

import (
	"fmt"
	"strings"
)

// names are used in key binding files and so must not change once published.
// names are unique across both the generic and the gamepad naming contexts.

var keyNames = [KeyCount]string{
	KeyNone:             "NONE",
	Key0:                "0",
	Key1:                "1",
	Key2:                "2",
	Key3:                "3",
	Key4:                "4",
	Key5:                "5",
	Key6:                "6",
	Key7:                "7",
	Key8:                "8",
	Key9:                "9",
	KeyA:                "a",
	KeyB:                "b",
	KeyC:                "c",
	KeyD:                "d",
	KeyE:                "e",
	KeyF:                "f",
	KeyG:                "g",
	KeyH:                "h",
	KeyI:                "i",
	KeyJ:                "j",
	KeyK:                "k",
	KeyL:                "l",
	KeyM:                "m",
	KeyN:                "n",
	KeyO:                "o",
	KeyP:                "p",
	KeyQ:                "q",
	KeyR:                "r",
	KeyS:                "s",
	KeyT:                "t",
	KeyU:                "u",
	KeyV:                "v",
	KeyW:                "w",
	KeyX:                "x",
	KeyY:                "y",
	KeyZ:                "z",
	KeyPad0:             "KP_INS",
	KeyPad1:             "KP_END",
	KeyPad2:             "KP_DOWNARROW",
	KeyPad3:             "KP_PGDN",
	KeyPad4:             "KP_LEFTARROW",
	KeyPad5:             "KP_5",
	KeyPad6:             "KP_RIGHTARROW",
	KeyPad7:             "KP_HOME",
	KeyPad8:             "KP_UPARROW",
	KeyPad9:             "KP_PGUP",
	KeyPadDivide:        "KP_SLASH",
	KeyPadMultiply:      "KP_MULTIPLY",
	KeyPadMinus:         "KP_MINUS",
	KeyPadPlus:          "KP_PLUS",
	KeyPadEnter:         "KP_ENTER",
	KeyPadDecimal:       "KP_DEL",
	KeyLBracket:         "[",
	KeyRBracket:         "]",
	KeySemicolon:        "SEMICOLON",
	KeyApostrophe:       "'",
	KeyBackQuote:        "`",
	KeyComma:            ",",
	KeyPeriod:           ".",
	KeySlash:            "/",
	KeyBackslash:        "\\",
	KeyMinus:            "-",
	KeyEqual:            "=",
	KeyEnter:            "ENTER",
	KeySpace:            "SPACE",
	KeyBackspace:        "BACKSPACE",
	KeyTab:              "TAB",
	KeyCapsLock:         "CAPSLOCK",
	KeyNumLock:          "NUMLOCK",
	KeyEscape:           "ESCAPE",
	KeyScrollLock:       "SCROLLLOCK",
	KeyInsert:           "INS",
	KeyDelete:           "DEL",
	KeyHome:             "HOME",
	KeyEnd:              "END",
	KeyPageUp:           "PGUP",
	KeyPageDown:         "PGDN",
	KeyBreak:            "PAUSE",
	KeyLShift:           "SHIFT",
	KeyRShift:           "RSHIFT",
	KeyLAlt:             "ALT",
	KeyRAlt:             "RALT",
	KeyLControl:         "CTRL",
	KeyRControl:         "RCTRL",
	KeyLWin:             "LWIN",
	KeyRWin:             "RWIN",
	KeyApp:              "APP",
	KeyUp:               "UPARROW",
	KeyLeft:             "LEFTARROW",
	KeyDown:             "DOWNARROW",
	KeyRight:            "RIGHTARROW",
	KeyF1:               "F1",
	KeyF2:               "F2",
	KeyF3:               "F3",
	KeyF4:               "F4",
	KeyF5:               "F5",
	KeyF6:               "F6",
	KeyF7:               "F7",
	KeyF8:               "F8",
	KeyF9:               "F9",
	KeyF10:              "F10",
	KeyF11:              "F11",
	KeyF12:              "F12",
	KeyCapsLockToggle:   "CAPSLOCKTOGGLE",
	KeyNumLockToggle:    "NUMLOCKTOGGLE",
	KeyScrollLockToggle: "SCROLLLOCKTOGGLE",
}

var mouseNames = [MouseCount]string{
	"MOUSE1", "MOUSE2", "MOUSE3", "MOUSE4", "MOUSE5", "MWHEELUP", "MWHEELDOWN",
}

var novintNames = [NovintCount]string{
	"NOVINT_LOGO_A", "NOVINT_TRIANGLE_A", "NOVINT_BOLT_A", "NOVINT_PLUS_A",
	"NOVINT_LOGO_B", "NOVINT_TRIANGLE_B", "NOVINT_BOLT_B", "NOVINT_PLUS_B",
}

// joystick buttons beyond the length of this list are named the same in
// both contexts.
var xboxButtonNames = []string{
	"A_BUTTON", "B_BUTTON", "X_BUTTON", "Y_BUTTON", "L_SHOULDER", "R_SHOULDER",
	"BACK", "START", "STICK1", "STICK2",
}

var povNames = [JoystickPOVButtonCount]string{
	"POV_UP", "POV_RIGHT", "POV_DOWN", "POV_LEFT",
}

var xboxPOVNames = [JoystickPOVButtonCount]string{
	"UP", "RIGHT", "DOWN", "LEFT",
}

var axisButtonNames = [JoystickAxisButtonCount]string{
	"X_AXIS_POS", "X_AXIS_NEG", "Y_AXIS_POS", "Y_AXIS_NEG",
	"Z_AXIS_POS", "Z_AXIS_NEG", "R_AXIS_POS", "R_AXIS_NEG",
	"U_AXIS_POS", "U_AXIS_NEG", "V_AXIS_POS", "V_AXIS_NEG",
}

var xboxAxisButtonNames = [JoystickAxisButtonCount]string{
	"S1_RIGHT", "S1_LEFT", "S1_DOWN", "S1_UP",
	"L_TRIGGER", "R_TRIGGER", "S2_RIGHT", "S2_LEFT",
	"S2_DOWN", "S2_UP", "V_AXIS_POS", "V_AXIS_NEG",
}

var steamControllerNames = [SteamControllerButtonCount]string{
	SKeyA:                  "SC_A",
	SKeyB:                  "SC_B",
	SKeyX:                  "SC_X",
	SKeyY:                  "SC_Y",
	SKeyDPadUp:             "SC_DPAD_UP",
	SKeyDPadRight:          "SC_DPAD_RIGHT",
	SKeyDPadDown:           "SC_DPAD_DOWN",
	SKeyDPadLeft:           "SC_DPAD_LEFT",
	SKeyLeftBumper:         "SC_LBUMPER",
	SKeyRightBumper:        "SC_RBUMPER",
	SKeyLeftTrigger:        "SC_LTRIGGER",
	SKeyRightTrigger:       "SC_RTRIGGER",
	SKeyBack:               "SC_BACK",
	SKeyStart:              "SC_START",
	SKeySteam:              "SC_STEAM",
	SKeyLeftPadFingerDown:  "SC_LPAD_TOUCH",
	SKeyRightPadFingerDown: "SC_RPAD_TOUCH",
	SKeyLeftPadClick:       "SC_LPAD_CLICK",
	SKeyRightPadClick:      "SC_RPAD_CLICK",
	SKeyLeftPadUp:          "SC_LPAD_UP",
	SKeyLeftPadRight:       "SC_LPAD_RIGHT",
	SKeyLeftPadDown:        "SC_LPAD_DOWN",
	SKeyLeftPadLeft:        "SC_LPAD_LEFT",
	SKeyRightPadUp:         "SC_RPAD_UP",
	SKeyRightPadRight:      "SC_RPAD_RIGHT",
	SKeyRightPadDown:       "SC_RPAD_DOWN",
	SKeyRightPadLeft:       "SC_RPAD_LEFT",
	SKeyLeftPadSwipe:       "SC_LPAD_SWIPE",
	SKeyRightPadSwipe:      "SC_RPAD_SWIPE",
	SKeyLeftTriggerFull:    "SC_LTRIGGER_FULL",
	SKeyRightTriggerFull:   "SC_RTRIGGER_FULL",
	SKeyGyroActive:         "SC_GYRO_ACTIVE",
}

var motionNames = [MotionCount]string{
	"MOVE_TRIGGER", "MOVE_SQUARE", "MOVE_CROSS", "MOVE_CIRCLE", "MOVE_TRIANGLE",
	"MOVE_MOVE", "MOVE_SELECT", "MOVE_START", "MOVE_PS",
	"MOVE_ROLL_LEFT", "MOVE_ROLL_RIGHT",
}

var analogNames = []string{
	MouseX:     "MOUSE_X",
	MouseY:     "MOUSE_Y",
	MouseXY:    "MOUSE_XY",
	MouseWheel: "MOUSE_WHEEL",
}

// reverse lookup tables. keys are upper case.
var stringToButton map[string]ButtonCode
var stringToAnalog map[string]AnalogCode

func init() {
	stringToButton = make(map[string]ButtonCode, int(ButtonCodeCount)*2)
	for c := ButtonCodeNone; c <= ButtonCodeLast; c++ {
		stringToButton[strings.ToUpper(ButtonCodeToString(c, false))] = c
		stringToButton[strings.ToUpper(ButtonCodeToString(c, true))] = c
	}

	stringToAnalog = make(map[string]AnalogCode, int(AnalogCodeCount))
	for c := MouseX; c <= AnalogCodeLast; c++ {
		stringToAnalog[strings.ToUpper(AnalogCodeToString(c))] = c
	}
}

// the first slot has no suffix so that the most common names are short.
func withSlot(name string, slot int) string {
	if slot == 0 {
		return name
	}
	return fmt.Sprintf("%s_%d", name, slot+1)
}

// ButtonCodeToString returns the name of the ButtonCode. Joystick codes are
// named with Xbox-style names if isGamepadContext is true.
//
// Returns the empty string for codes outside of the button code space.
func ButtonCodeToString(c ButtonCode, isGamepadContext bool) string {
	switch {
	case c >= KeyFirst && c <= KeyLast:
		return keyNames[c-KeyFirst]

	case IsMouseCode(c):
		return mouseNames[c-MouseFirst]

	case IsNovintCode(c):
		return novintNames[c-NovintFirst]

	case IsJoystickButtonCode(c):
		idx := int(c - JoystickFirstButton)
		slot, n := idx/JoystickMaxButtonCount, idx%JoystickMaxButtonCount
		if isGamepadContext && n < len(xboxButtonNames) {
			return withSlot(xboxButtonNames[n], slot)
		}
		return withSlot(fmt.Sprintf("JOY%d", n+1), slot)

	case IsJoystickPOVCode(c):
		idx := int(c - JoystickFirstPOVButton)
		slot, n := idx/JoystickPOVButtonCount, idx%JoystickPOVButtonCount
		if isGamepadContext {
			return withSlot(xboxPOVNames[n], slot)
		}
		return withSlot(povNames[n], slot)

	case IsJoystickAxisCode(c):
		idx := int(c - JoystickFirstAxisButton)
		slot, n := idx/JoystickAxisButtonCount, idx%JoystickAxisButtonCount
		if isGamepadContext {
			return withSlot(xboxAxisButtonNames[n], slot)
		}
		return withSlot(axisButtonNames[n], slot)

	case IsSteamControllerCode(c):
		idx := int(c - SteamControllerFirst)
		slot, n := idx/SteamControllerButtonCount, idx%SteamControllerButtonCount
		return withSlot(steamControllerNames[n], slot)

	case IsMotionCode(c):
		return motionNames[c-MotionFirst]
	}

	return ""
}

// StringToButtonCode returns the ButtonCode for the name. Names from either
// context are accepted and comparison is case insensitive.
//
// Returns ButtonCodeInvalid if the name is not recognised.
func StringToButtonCode(s string) ButtonCode {
	if c, ok := stringToButton[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return c
	}
	return ButtonCodeInvalid
}

// AnalogCodeToString returns the name of the AnalogCode. Returns the empty
// string for codes outside of the analog code space.
func AnalogCodeToString(c AnalogCode) string {
	switch {
	case IsMouseAxis(c):
		return analogNames[c]
	case IsJoystickAxis(c):
		idx := int(c - JoystickFirstAxis)
		slot, axis := idx/int(MaxJoystickAxes), Axis(idx%int(MaxJoystickAxes))
		return withSlot(fmt.Sprintf("JOY_%s", axis), slot)
	}
	return ""
}

// StringToAnalogCode returns the AnalogCode for the name. Comparison is case
// insensitive.
//
// Returns AnalogCodeInvalid if the name is not recognised.
func StringToAnalogCode(s string) AnalogCode {
	if c, ok := stringToAnalog[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return c
	}
	return AnalogCodeInvalid
}
