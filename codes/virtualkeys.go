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

// VirtualKey is an OS virtual key code. Values follow the Windows VK_*
// numbering.
type VirtualKey int

// VirtualKeyNone is returned for button codes with no virtual key.
const VirtualKeyNone VirtualKey = 0

type vkEntry struct {
	vk   VirtualKey
	code ButtonCode
}

// where more than one virtual key maps to the same button code the first
// entry in the list is used for ButtonCodeToVirtualKey()
var virtualKeys = []vkEntry{
	{0x01, MouseLeft},
	{0x02, MouseRight},
	{0x04, MouseMiddle},
	{0x05, Mouse4},
	{0x06, Mouse5},
	{0x08, KeyBackspace},
	{0x09, KeyTab},
	{0x0d, KeyEnter},
	{0x13, KeyBreak},
	{0x14, KeyCapsLock},
	{0x1b, KeyEscape},
	{0x20, KeySpace},
	{0x21, KeyPageUp},
	{0x22, KeyPageDown},
	{0x23, KeyEnd},
	{0x24, KeyHome},
	{0x25, KeyLeft},
	{0x26, KeyUp},
	{0x27, KeyRight},
	{0x28, KeyDown},
	{0x2d, KeyInsert},
	{0x2e, KeyDelete},
	{0x5b, KeyLWin},
	{0x5c, KeyRWin},
	{0x5d, KeyApp},
	{0x60, KeyPad0},
	{0x61, KeyPad1},
	{0x62, KeyPad2},
	{0x63, KeyPad3},
	{0x64, KeyPad4},
	{0x65, KeyPad5},
	{0x66, KeyPad6},
	{0x67, KeyPad7},
	{0x68, KeyPad8},
	{0x69, KeyPad9},
	{0x6a, KeyPadMultiply},
	{0x6b, KeyPadPlus},
	{0x6d, KeyPadMinus},
	{0x6e, KeyPadDecimal},
	{0x6f, KeyPadDivide},
	{0x90, KeyNumLock},
	{0x91, KeyScrollLock},
	{0xa0, KeyLShift},
	{0xa1, KeyRShift},
	{0xa2, KeyLControl},
	{0xa3, KeyRControl},
	{0xa4, KeyLAlt},
	{0xa5, KeyRAlt},
	{0x10, KeyLShift},   // VK_SHIFT
	{0x11, KeyLControl}, // VK_CONTROL
	{0x12, KeyLAlt},     // VK_MENU
	{0xba, KeySemicolon},
	{0xbb, KeyEqual},
	{0xbc, KeyComma},
	{0xbd, KeyMinus},
	{0xbe, KeyPeriod},
	{0xbf, KeySlash},
	{0xc0, KeyBackQuote},
	{0xdb, KeyLBracket},
	{0xdc, KeyBackslash},
	{0xdd, KeyRBracket},
	{0xde, KeyApostrophe},
}

var vkToButton map[VirtualKey]ButtonCode
var buttonToVK [ButtonCodeCount]VirtualKey

func init() {
	vkToButton = make(map[VirtualKey]ButtonCode, len(virtualKeys)+36+12)

	add := func(vk VirtualKey, c ButtonCode) {
		vkToButton[vk] = c
		if buttonToVK[c] == VirtualKeyNone {
			buttonToVK[c] = vk
		}
	}

	// digits and letters use their ASCII values
	for i := 0; i < 10; i++ {
		add(VirtualKey('0'+i), Key0+ButtonCode(i))
	}
	for i := 0; i < 26; i++ {
		add(VirtualKey('A'+i), KeyA+ButtonCode(i))
	}
	for i := 0; i < 12; i++ {
		add(VirtualKey(0x70+i), KeyF1+ButtonCode(i))
	}
	for _, e := range virtualKeys {
		add(e.vk, e.code)
	}

	// keypad enter has no virtual key of its own
	buttonToVK[KeyPadEnter] = 0x0d
}

// VirtualKeyToButtonCode translates an OS virtual key to a ButtonCode.
// Unmapped virtual keys translate to ButtonCodeNone.
func VirtualKeyToButtonCode(vk VirtualKey) ButtonCode {
	if c, ok := vkToButton[vk]; ok {
		return c
	}
	return ButtonCodeNone
}

// ButtonCodeToVirtualKey translates a ButtonCode to an OS virtual key. Button
// codes with no virtual key translate to VirtualKeyNone.
func ButtonCodeToVirtualKey(c ButtonCode) VirtualKey {
	if c < 0 || c > ButtonCodeLast {
		return VirtualKeyNone
	}
	return buttonToVK[c]
}
