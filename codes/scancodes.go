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

// scan codes are USB HID keyboard usage IDs. SDL scancodes use the same
// numbering.
var scanCodes = [...]ButtonCode{
	4:   KeyA,
	5:   KeyB,
	6:   KeyC,
	7:   KeyD,
	8:   KeyE,
	9:   KeyF,
	10:  KeyG,
	11:  KeyH,
	12:  KeyI,
	13:  KeyJ,
	14:  KeyK,
	15:  KeyL,
	16:  KeyM,
	17:  KeyN,
	18:  KeyO,
	19:  KeyP,
	20:  KeyQ,
	21:  KeyR,
	22:  KeyS,
	23:  KeyT,
	24:  KeyU,
	25:  KeyV,
	26:  KeyW,
	27:  KeyX,
	28:  KeyY,
	29:  KeyZ,
	30:  Key1,
	31:  Key2,
	32:  Key3,
	33:  Key4,
	34:  Key5,
	35:  Key6,
	36:  Key7,
	37:  Key8,
	38:  Key9,
	39:  Key0,
	40:  KeyEnter,
	41:  KeyEscape,
	42:  KeyBackspace,
	43:  KeyTab,
	44:  KeySpace,
	45:  KeyMinus,
	46:  KeyEqual,
	47:  KeyLBracket,
	48:  KeyRBracket,
	49:  KeyBackslash,
	50:  KeyBackslash, // non-US hash
	51:  KeySemicolon,
	52:  KeyApostrophe,
	53:  KeyBackQuote,
	54:  KeyComma,
	55:  KeyPeriod,
	56:  KeySlash,
	57:  KeyCapsLock,
	58:  KeyF1,
	59:  KeyF2,
	60:  KeyF3,
	61:  KeyF4,
	62:  KeyF5,
	63:  KeyF6,
	64:  KeyF7,
	65:  KeyF8,
	66:  KeyF9,
	67:  KeyF10,
	68:  KeyF11,
	69:  KeyF12,
	71:  KeyScrollLock,
	72:  KeyBreak,
	73:  KeyInsert,
	74:  KeyHome,
	75:  KeyPageUp,
	76:  KeyDelete,
	77:  KeyEnd,
	78:  KeyPageDown,
	79:  KeyRight,
	80:  KeyLeft,
	81:  KeyDown,
	82:  KeyUp,
	83:  KeyNumLock,
	84:  KeyPadDivide,
	85:  KeyPadMultiply,
	86:  KeyPadMinus,
	87:  KeyPadPlus,
	88:  KeyPadEnter,
	89:  KeyPad1,
	90:  KeyPad2,
	91:  KeyPad3,
	92:  KeyPad4,
	93:  KeyPad5,
	94:  KeyPad6,
	95:  KeyPad7,
	96:  KeyPad8,
	97:  KeyPad9,
	98:  KeyPad0,
	99:  KeyPadDecimal,
	100: KeyBackslash, // non-US backslash
	101: KeyApp,
	224: KeyLControl,
	225: KeyLShift,
	226: KeyLAlt,
	227: KeyLWin,
	228: KeyRControl,
	229: KeyRShift,
	230: KeyRAlt,
	231: KeyRWin,
}

// ScanCodeToButtonCode translates a native scan code to a ButtonCode. Unmapped
// scan codes translate to ButtonCodeNone.
func ScanCodeToButtonCode(scanCode int) ButtonCode {
	if scanCode < 0 || scanCode >= len(scanCodes) {
		return ButtonCodeNone
	}
	return scanCodes[scanCode]
}
