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

import (
	"fmt"
	"unsafe"

	"github.com/jetsetilly/gopherinput/backends/gamepad"
	"github.com/jetsetilly/gopherinput/curated"
	"golang.org/x/sys/windows"
)

var (
	xinput              = windows.NewLazySystemDLL("xinput1_4.dll")
	procXInputGetState  = xinput.NewProc("XInputGetState")
	procXInputSetState  = xinput.NewProc("XInputSetState")
	errDeviceNotPresent = uintptr(windows.ERROR_DEVICE_NOT_CONNECTED)
)

type xinputState struct {
	packetNumber uint32
	gamepad      struct {
		buttons      uint16
		leftTrigger  uint8
		rightTrigger uint8
		thumbLX      int16
		thumbLY      int16
		thumbRX      int16
		thumbRY      int16
	}
}

type xinputVibration struct {
	leftMotorSpeed  uint16
	rightMotorSpeed uint16
}

// XInputDriver implements the gamepad.Driver interface.
type XInputDriver struct{}

// NewXInputDriver is the preferred method of initialisation for the
// XInputDriver type.
func NewXInputDriver() *XInputDriver {
	return &XInputDriver{}
}

// Init implements the gamepad.Driver interface.
func (drv *XInputDriver) Init() error {
	if err := procXInputGetState.Find(); err != nil {
		return fmt.Errorf("win32: %w", err)
	}
	return nil
}

// Read implements the gamepad.Driver interface.
func (drv *XInputDriver) Read(user int, s *gamepad.PadState) error {
	var st xinputState
	r, _, _ := procXInputGetState.Call(uintptr(user), uintptr(unsafe.Pointer(&st)))
	if r == errDeviceNotPresent {
		return curated.Errorf(gamepad.NotConnected, user)
	}
	if r != 0 {
		return fmt.Errorf("win32: XInputGetState: %w", windows.Errno(r))
	}

	*s = gamepad.PadState{
		PacketNumber: st.packetNumber,
		Buttons:      st.gamepad.buttons,
		LeftTrigger:  st.gamepad.leftTrigger,
		RightTrigger: st.gamepad.rightTrigger,
		ThumbLX:      st.gamepad.thumbLX,
		ThumbLY:      st.gamepad.thumbLY,
		ThumbRX:      st.gamepad.thumbRX,
		ThumbRY:      st.gamepad.thumbRY,
	}
	return nil
}

// SetVibration implements the gamepad.Driver interface.
func (drv *XInputDriver) SetVibration(user int, left uint16, right uint16) error {
	v := xinputVibration{leftMotorSpeed: left, rightMotorSpeed: right}
	r, _, _ := procXInputSetState.Call(uintptr(user), uintptr(unsafe.Pointer(&v)))
	if r == errDeviceNotPresent {
		return curated.Errorf(gamepad.NotConnected, user)
	}
	if r != 0 {
		return fmt.Errorf("win32: XInputSetState: %w", windows.Errno(r))
	}
	return nil
}
