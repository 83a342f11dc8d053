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

	"github.com/jetsetilly/gopherinput/backends/joystick"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/logger"
	"golang.org/x/sys/windows"
)

var (
	winmm             = windows.NewLazySystemDLL("winmm.dll")
	procJoyGetNumDevs = winmm.NewProc("joyGetNumDevs")
	procJoyGetDevCaps = winmm.NewProc("joyGetDevCapsW")
	procJoyGetPosEx   = winmm.NewProc("joyGetPosEx")
)

const (
	joyErrParms     = 165
	joyErrUnplugged = 167

	joyReturnAll = 0xff

	joyCapsHasZ   = 0x01
	joyCapsHasR   = 0x02
	joyCapsHasU   = 0x04
	joyCapsHasV   = 0x08
	joyCapsHasPOV = 0x10

	maxPNameLen        = 32
	maxJoystickOEMName = 260
)

type joyCaps struct {
	mid, pid   uint16
	pname      [maxPNameLen]uint16
	xmin, xmax uint32
	ymin, ymax uint32
	zmin, zmax uint32
	numButtons uint32
	periodMin  uint32
	periodMax  uint32
	rmin, rmax uint32
	umin, umax uint32
	vmin, vmax uint32
	caps       uint32
	maxAxes    uint32
	numAxes    uint32
	maxButtons uint32
	regKey     [maxPNameLen]uint16
	oemVxD     [maxJoystickOEMName]uint16
}

type joyInfoEx struct {
	size      uint32
	flags     uint32
	xpos      uint32
	ypos      uint32
	zpos      uint32
	rpos      uint32
	upos      uint32
	vpos      uint32
	buttons   uint32
	buttonNum uint32
	pov       uint32
	reserved1 uint32
	reserved2 uint32
}

// JoystickDriver implements the joystick.Driver interface.
type JoystickDriver struct {
	open map[uint32]*winmmJoystick
}

// NewJoystickDriver is the preferred method of initialisation for the
// JoystickDriver type.
func NewJoystickDriver() *JoystickDriver {
	return &JoystickDriver{
		open: make(map[uint32]*winmmJoystick),
	}
}

// Init implements the joystick.Driver interface.
func (drv *JoystickDriver) Init() error {
	if err := procJoyGetPosEx.Find(); err != nil {
		return fmt.Errorf("win32: %w", err)
	}
	return nil
}

// Enumerate implements the joystick.Driver interface.
func (drv *JoystickDriver) Enumerate() ([]joystick.Device, error) {
	n, _, _ := procJoyGetNumDevs.Call()

	var devs []joystick.Device
	for id := uint32(0); id < uint32(n); id++ {
		// joyGetPosEx fails for ids that have no device attached
		info := joyInfoEx{flags: joyReturnAll}
		info.size = uint32(unsafe.Sizeof(info))
		r, _, _ := procJoyGetPosEx.Call(uintptr(id), uintptr(unsafe.Pointer(&info)))
		if r != 0 {
			delete(drv.open, id)
			continue
		}

		if j, ok := drv.open[id]; ok {
			devs = append(devs, j)
			continue
		}

		var caps joyCaps
		r, _, _ = procJoyGetDevCaps.Call(uintptr(id), uintptr(unsafe.Pointer(&caps)), unsafe.Sizeof(caps))
		if r != 0 {
			logger.Logf(logger.Allow, "win32", "joystick %d: joyGetDevCaps failed (%d)", id, r)
			continue
		}

		j := &winmmJoystick{
			drv:  drv,
			id:   id,
			caps: caps,
		}
		drv.open[id] = j
		devs = append(devs, j)
	}
	return devs, nil
}

type winmmJoystick struct {
	drv  *JoystickDriver
	id   uint32
	caps joyCaps
}

// ID implements the joystick.Device interface.
func (j *winmmJoystick) ID() string {
	return fmt.Sprintf("winmm%d", j.id)
}

// Caps implements the joystick.Device interface.
func (j *winmmJoystick) Caps() joystick.Caps {
	return joystick.Caps{
		Name:    windows.UTF16ToString(j.caps.pname[:]),
		Buttons: int(j.caps.numButtons),
		Axes:    int(j.caps.numAxes),
		HasPOV:  j.caps.caps&joyCapsHasPOV == joyCapsHasPOV,
	}
}

// Read implements the joystick.Device interface.
func (j *winmmJoystick) Read(r *joystick.Reading) error {
	info := joyInfoEx{flags: joyReturnAll}
	info.size = uint32(unsafe.Sizeof(info))
	ret, _, _ := procJoyGetPosEx.Call(uintptr(j.id), uintptr(unsafe.Pointer(&info)))
	if ret == joyErrUnplugged || ret == joyErrParms {
		return curated.Errorf(joystick.Disconnected, j.ID())
	}
	if ret != 0 {
		return fmt.Errorf("win32: joyGetPosEx: %d", ret)
	}

	c := &j.caps
	r.Buttons = uint64(info.buttons)
	for i := range r.Axes {
		r.Axes[i] = 0
	}
	r.Axes[0] = scaleAxis(info.xpos, c.xmin, c.xmax)
	r.Axes[1] = scaleAxis(info.ypos, c.ymin, c.ymax)
	if c.caps&joyCapsHasZ == joyCapsHasZ {
		r.Axes[2] = scaleAxis(info.zpos, c.zmin, c.zmax)
	}
	if c.caps&joyCapsHasR == joyCapsHasR {
		r.Axes[3] = scaleAxis(info.rpos, c.rmin, c.rmax)
	}
	if c.caps&joyCapsHasU == joyCapsHasU {
		r.Axes[4] = scaleAxis(info.upos, c.umin, c.umax)
	}
	if c.caps&joyCapsHasV == joyCapsHasV {
		r.Axes[5] = scaleAxis(info.vpos, c.vmin, c.vmax)
	}
	r.POV = joystick.POVCentered
	if c.caps&joyCapsHasPOV == joyCapsHasPOV {
		r.POV = povAngle(info.pov)
	}
	return nil
}

// Close implements the joystick.Device interface.
func (j *winmmJoystick) Close() error {
	delete(j.drv.open, j.id)
	return nil
}
