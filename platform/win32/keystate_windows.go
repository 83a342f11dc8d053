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

//go:build windows

package win32

import "golang.org/x/sys/windows"

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procGetKeyState = user32.NewProc("GetKeyState")
)

const (
	vkCapital = 0x14
	vkNumLock = 0x90
	vkScroll  = 0x91
)

// Toggles implements the keyboard.ToggleState interface.
type Toggles struct{}

func toggled(vk uintptr) bool {
	r, _, _ := procGetKeyState.Call(vk)
	return r&0x01 == 0x01
}

// Toggles implements the keyboard.ToggleState interface.
func (Toggles) Toggles() (capsLock bool, numLock bool, scrollLock bool) {
	return toggled(vkCapital), toggled(vkNumLock), toggled(vkScroll)
}
