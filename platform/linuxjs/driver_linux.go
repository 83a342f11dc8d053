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

//go:build linux

package linuxjs

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"unsafe"

	"github.com/jetsetilly/gopherinput/backends/joystick"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/logger"
	"golang.org/x/sys/unix"
)

// ioctl requests of the joystick API.
const (
	jsiocgAxes    = 0x80016a11
	jsiocgButtons = 0x80016a12
	jsiocgAxmap   = 0x80406a32
	jsiocgName    = 0x80006a13 + (nameLen << 16)
)

const nameLen = 128

// Driver finds joysticks in the joystick device directory.
type Driver struct {
	dir string

	crit sync.Mutex
	open map[string]*device
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The dir argument is the directory containing the js devices. If it is
// empty the DefaultDir is used.
func NewDriver(dir string) *Driver {
	if dir == "" {
		dir = DefaultDir
	}
	return &Driver{
		dir:  dir,
		open: make(map[string]*device),
	}
}

// Init implements the joystick.Driver interface.
func (drv *Driver) Init() error {
	var st unix.Stat_t
	if err := unix.Stat(drv.dir, &st); err != nil {
		return fmt.Errorf("linuxjs: %s: %w", drv.dir, err)
	}
	return nil
}

// Enumerate implements the joystick.Driver interface. Devices that are
// already open are returned as the same instance.
func (drv *Driver) Enumerate() ([]joystick.Device, error) {
	pths, err := filepath.Glob(filepath.Join(drv.dir, devicePattern))
	if err != nil {
		return nil, fmt.Errorf("linuxjs: %w", err)
	}

	drv.crit.Lock()
	defer drv.crit.Unlock()

	var devs []joystick.Device
	for _, pth := range pths {
		if d, ok := drv.open[pth]; ok {
			devs = append(devs, d)
			continue
		}

		d, err := drv.openDevice(pth)
		if err != nil {
			logger.Logf(logger.Allow, "linuxjs", "%s: %v", pth, err)
			continue
		}
		drv.open[pth] = d
		devs = append(devs, d)
	}

	return devs, nil
}

func (drv *Driver) forget(pth string) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	delete(drv.open, pth)
}

func ioctl(fd int, req uint, dest unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(dest))
	if errno != 0 {
		return errno
	}
	return nil
}

func (drv *Driver) openDevice(pth string) (*device, error) {
	fd, err := unix.Open(pth, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}

	var axes, buttons uint8
	var axmap [maxAxes]uint8
	name := make([]byte, nameLen)

	for _, q := range []struct {
		req  uint
		dest unsafe.Pointer
	}{
		{req: jsiocgAxes, dest: unsafe.Pointer(&axes)},
		{req: jsiocgButtons, dest: unsafe.Pointer(&buttons)},
		{req: jsiocgAxmap, dest: unsafe.Pointer(&axmap[0])},
		{req: jsiocgName, dest: unsafe.Pointer(&name[0])},
	} {
		if err := ioctl(fd, q.req, q.dest); err != nil {
			_ = unix.Close(fd)
			return nil, fmt.Errorf("ioctl %#x: %w", q.req, err)
		}
	}

	st := newState(axmap[:axes])

	return &device{
		drv:  drv,
		path: pth,
		fd:   fd,
		st:   st,
		caps: joystick.Caps{
			Name:    unix.ByteSliceToString(name),
			Buttons: int(buttons),
			Axes:    st.numAxes(),
			HasPOV:  st.hasPOV(),
		},
	}, nil
}

type device struct {
	drv  *Driver
	path string
	fd   int
	st   *state
	caps joystick.Caps
	buf  [eventSize * 32]byte
}

// ID implements the joystick.Device interface. The ID is the path of the
// device.
func (d *device) ID() string {
	return d.path
}

// Caps implements the joystick.Device interface.
func (d *device) Caps() joystick.Caps {
	return d.caps
}

// Read implements the joystick.Device interface. Every pending event is
// consumed before the reading is made.
func (d *device) Read(r *joystick.Reading) error {
	for {
		n, err := unix.Read(d.fd, d.buf[:])
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
				break
			}
			if errors.Is(err, unix.ENODEV) {
				return curated.Errorf(joystick.Disconnected, d.path)
			}
			return fmt.Errorf("linuxjs: %s: %w", d.path, err)
		}
		if n <= 0 {
			break
		}
		for off := 0; off+eventSize <= n; off += eventSize {
			d.st.apply(decodeEvent(d.buf[off:]))
		}
		if n < len(d.buf) {
			break
		}
	}

	d.st.reading(r)
	return nil
}

// Close implements the joystick.Device interface.
func (d *device) Close() error {
	d.drv.forget(d.path)
	if err := unix.Close(d.fd); err != nil {
		return fmt.Errorf("linuxjs: %s: %w", d.path, err)
	}
	return nil
}
