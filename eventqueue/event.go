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

package eventqueue

import (
	"fmt"

	"github.com/jetsetilly/gopherinput/codes"
)

// EventType identifies the kind of Event.
type EventType int

// Button and analog events.
const (
	// Data is the ButtonCode from the scan code. Data2 is the ButtonCode from
	// the virtual key. the two can differ, for example for the keypad enter
	// key.
	ButtonPressed EventType = iota
	ButtonReleased
	ButtonDoubleClicked

	// Data is the AnalogCode, Data2 the value and Data3 the delta.
	AnalogValueChanged
)

// FirstSystemEvent is the first of the system events.
const FirstSystemEvent EventType = 100

// System events.
const (
	Quit EventType = FirstSystemEvent + iota

	// Data is the joystick slot or gamepad user.
	ControllerInserted
	ControllerUnplugged

	Close

	// Data is the width and Data2 the height.
	WindowSizeChanged

	CameraUnavailable
	MotionOutOfView
)

// FirstUIEvent is the first of the events intended for the user interface.
const FirstUIEvent EventType = 200

// User interface events.
const (
	// Data is the x position and Data2 the y position.
	LocateMouseClick EventType = FirstUIEvent + iota
	SetCursor

	// Data is the unicode character.
	KeyTyped

	// Data is the ButtonCode. posted for auto-repeated keys too.
	KeyCodeTyped

	InputLanguageChanged
	IMESetWindow
	IMEStartComposition
	IMEComposition
	IMEEndComposition
	IMEShowCandidates
	IMEChangeCandidates
	IMECloseCandidates
	IMERecomputeModes
	OverlayEvent
)

// FirstAppEvent is the first event type available for use by the host
// application.
const FirstAppEvent EventType = 2000

var typeNames = map[EventType]string{
	ButtonPressed:        "ButtonPressed",
	ButtonReleased:       "ButtonReleased",
	ButtonDoubleClicked:  "ButtonDoubleClicked",
	AnalogValueChanged:   "AnalogValueChanged",
	Quit:                 "Quit",
	ControllerInserted:   "ControllerInserted",
	ControllerUnplugged:  "ControllerUnplugged",
	Close:                "Close",
	WindowSizeChanged:    "WindowSizeChanged",
	CameraUnavailable:    "CameraUnavailable",
	MotionOutOfView:      "MotionOutOfView",
	LocateMouseClick:     "LocateMouseClick",
	SetCursor:            "SetCursor",
	KeyTyped:             "KeyTyped",
	KeyCodeTyped:         "KeyCodeTyped",
	InputLanguageChanged: "InputLanguageChanged",
	IMESetWindow:         "IMESetWindow",
	IMEStartComposition:  "IMEStartComposition",
	IMEComposition:       "IMEComposition",
	IMEEndComposition:    "IMEEndComposition",
	IMEShowCandidates:    "IMEShowCandidates",
	IMEChangeCandidates:  "IMEChangeCandidates",
	IMECloseCandidates:   "IMECloseCandidates",
	IMERecomputeModes:    "IMERecomputeModes",
	OverlayEvent:         "OverlayEvent",
}

func (t EventType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	if t >= FirstAppEvent {
		return fmt.Sprintf("AppEvent(%d)", int(t-FirstAppEvent))
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is a single input event. Events are values and are only valid until
// the next poll.
type Event struct {
	Type  EventType
	Tick  uint32
	Data  int
	Data2 int
	Data3 int
}

func (e Event) String() string {
	switch e.Type {
	case ButtonPressed, ButtonReleased, ButtonDoubleClicked:
		return fmt.Sprintf("%s %s @%d", e.Type, codes.ButtonCode(e.Data), e.Tick)
	case AnalogValueChanged:
		return fmt.Sprintf("%s %s=%d (%+d) @%d", e.Type, codes.AnalogCode(e.Data), e.Data2, e.Data3, e.Tick)
	case KeyTyped:
		return fmt.Sprintf("%s %q @%d", e.Type, rune(e.Data), e.Tick)
	case KeyCodeTyped:
		return fmt.Sprintf("%s %s @%d", e.Type, codes.ButtonCode(e.Data), e.Tick)
	}
	return fmt.Sprintf("%s [%d %d %d] @%d", e.Type, e.Data, e.Data2, e.Data3, e.Tick)
}
