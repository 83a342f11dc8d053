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

package sdlinput

import (
	"fmt"

	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/backends/keyboard"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// NoWindow is returned by Attach() when the window ID is not recognised.
const NoWindow = "sdlinput: no window with id %d"

// Names of the backends that receive hotplug notifications from the pump.
const (
	JoystickBackend = "joystick"
	GamepadBackend  = "gamepad"
)

// Pump reads the SDL event queue. It implements the inputsystem.Pump and
// inputsystem.WindowBinder interfaces.
//
// SDL must be initialised with the video and events sub-systems before the
// pump is used. All functions must be called from the thread that
// initialised SDL.
type Pump struct {
	window *sdl.Window

	// scroll lock state is not reported by SDL so it is tracked here
	scrollLock bool

	notify func(backends.Notification)
}

// NewPump is the preferred method of initialisation for the Pump type.
func NewPump() *Pump {
	return &Pump{}
}

// SetHotplugNotify sets the function that receives notifications for
// controller insertion and removal. Typically InputSystem.Notify().
func (p *Pump) SetHotplugNotify(f func(backends.Notification)) {
	p.notify = f
}

// Attach implements the inputsystem.WindowBinder interface. The handle is the
// SDL window ID.
func (p *Pump) Attach(handle uintptr) error {
	w, err := sdl.GetWindowFromID(uint32(handle))
	if err != nil || w == nil {
		return curated.Errorf(NoWindow, handle)
	}
	p.window = w
	sdl.StartTextInput()
	return nil
}

// Detach implements the inputsystem.WindowBinder interface.
func (p *Pump) Detach() {
	sdl.StopTextInput()
	p.window = nil
}

// Toggles implements the keyboard.ToggleState interface.
func (p *Pump) Toggles() (bool, bool, bool) {
	mod := sdl.GetModState()
	return mod&sdl.KMOD_CAPS == sdl.KMOD_CAPS, mod&sdl.KMOD_NUM == sdl.KMOD_NUM, p.scrollLock
}

// SetCursorPosition moves the cursor within the attached window.
func (p *Pump) SetCursorPosition(x int, y int) {
	if p.window == nil {
		return
	}
	p.window.WarpMouseInWindow(int32(x), int32(y))
}

// WaitForInput blocks until there is an SDL event or the timeout expires. The
// event is put back on the queue for Drain().
func (p *Pump) WaitForInput(maxMs int) bool {
	var ev sdl.Event
	if maxMs < 0 {
		ev = sdl.WaitEvent()
	} else {
		ev = sdl.WaitEventTimeout(maxMs)
	}
	if ev == nil {
		return false
	}
	if _, err := sdl.PushEvent(ev); err != nil {
		logger.Logf(logger.Allow, "sdlinput", "lost event: %v", err)
	}
	return true
}

// Drain passes every pending SDL event to the handler.
func (p *Pump) Drain(h keyboard.Handler) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		p.event(h, ev)
	}
}

func (p *Pump) event(h keyboard.Handler, ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		h.Quit()

	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_CLOSE:
			h.Close()
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			h.WindowResized(int(ev.Data1), int(ev.Data2))
		}

	case *sdl.KeyboardEvent:
		scan := codes.ScanCodeToButtonCode(int(ev.Keysym.Scancode))
		virtual := codes.ScanCodeToButtonCode(int(sdl.GetScancodeFromKey(ev.Keysym.Sym)))
		if virtual == codes.ButtonCodeNone {
			virtual = scan
		}
		switch ev.Type {
		case sdl.KEYDOWN:
			if ev.Keysym.Scancode == sdl.SCANCODE_SCROLLLOCK && ev.Repeat == 0 {
				p.scrollLock = !p.scrollLock
			}
			h.KeyDown(scan, virtual, ev.Repeat != 0)
		case sdl.KEYUP:
			h.KeyUp(scan, virtual)
		}

	case *sdl.TextInputEvent:
		for _, r := range ev.GetText() {
			h.Char(r)
		}

	case *sdl.TextEditingEvent:
		h.IME(eventqueue.IMEComposition, int(ev.Start))

	case *sdl.MouseMotionEvent:
		h.MouseMove(int(ev.X), int(ev.Y))

	case *sdl.MouseButtonEvent:
		if c := mouseButton(ev.Button); c != codes.ButtonCodeNone {
			h.MouseButton(c, ev.Type == sdl.MOUSEBUTTONDOWN, int(ev.X), int(ev.Y))
		}

	case *sdl.MouseWheelEvent:
		h.MouseWheel(wheelDelta(ev.Y, ev.Direction))

	case *sdl.JoyDeviceAddedEvent:
		p.hotplug(backends.DeviceInserted, JoystickBackend, "")
	case *sdl.JoyDeviceRemovedEvent:
		p.hotplug(backends.DeviceRemoved, JoystickBackend, fmt.Sprint(int32(ev.Which)))
	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.hotplug(backends.DeviceInserted, GamepadBackend, "")
		case sdl.CONTROLLERDEVICEREMOVED:
			p.hotplug(backends.DeviceRemoved, GamepadBackend, fmt.Sprint(int32(ev.Which)))
		}
	}
}

func (p *Pump) hotplug(kind backends.NotificationKind, backend string, id string) {
	if p.notify == nil {
		return
	}
	p.notify(backends.Notification{Kind: kind, Backend: backend, ID: id})
}

// mouseButton converts an SDL mouse button to a ButtonCode.
func mouseButton(b uint8) codes.ButtonCode {
	switch b {
	case sdl.BUTTON_LEFT:
		return codes.MouseLeft
	case sdl.BUTTON_RIGHT:
		return codes.MouseRight
	case sdl.BUTTON_MIDDLE:
		return codes.MouseMiddle
	case sdl.BUTTON_X1:
		return codes.Mouse4
	case sdl.BUTTON_X2:
		return codes.Mouse5
	}
	return codes.ButtonCodeNone
}

// wheelDelta returns the wheel movement with positive values away from the
// user.
func wheelDelta(y int32, direction uint32) int {
	if direction == sdl.MOUSEWHEEL_FLIPPED {
		return -int(y)
	}
	return int(y)
}
