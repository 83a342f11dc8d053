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

package inputsystem

import (
	"fmt"

	"github.com/jetsetilly/gopherinput/backends/gamepad"
	"github.com/jetsetilly/gopherinput/backends/joystick"
	"github.com/jetsetilly/gopherinput/backends/motion"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/paths"
	"github.com/jetsetilly/gopherinput/prefs"
)

// Preferences for the input system and every backend. The backend
// preferences are passed to the backend constructors.
type Preferences struct {
	dsk *prefs.Disk

	Joystick *joystick.Preferences
	Gamepad  *gamepad.Preferences
	Motion   *motion.Preferences

	// milliseconds between controller rescans while in game, once a
	// controller has been seen
	RescanInGame prefs.Int

	// milliseconds between controller rescans while in game, if no
	// controller has ever been seen
	RescanInGameNever prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// value is satisfied by every prefs type.
type value interface {
	fmt.Stringer
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

const (
	rescanInGame      = 2000
	rescanInGameNever = 10000
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := defaultPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		v   value
	}{
		{key: "input.joystick.disabled", v: &p.Joystick.Disabled},
		{key: "input.joystick.deadzone", v: &p.Joystick.Deadzone},
		{key: "input.joystick.axisButtonThreshold", v: &p.Joystick.AxisButtonThreshold},
		{key: "input.joystick.povDiagonals", v: &p.Joystick.POVDiagonals},
		{key: "input.gamepad.deadzone", v: &p.Gamepad.Deadzone},
		{key: "input.gamepad.deadzoneShape", v: &p.Gamepad.DeadzoneShape},
		{key: "input.gamepad.triggerThreshold", v: &p.Gamepad.TriggerThreshold},
		{key: "input.gamepad.axisButtonThreshold", v: &p.Gamepad.AxisButtonThreshold},
		{key: "input.motion.rollThreshold", v: &p.Motion.RollThreshold},
		{key: "input.motion.rollHysteresis", v: &p.Motion.RollHysteresis},
		{key: "input.rescan.ingame", v: &p.RescanInGame},
		{key: "input.rescan.ingameNever", v: &p.RescanInGameNever},
	} {
		err = p.dsk.Add(e.key, e.v)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// defaultPreferences returns Preferences that are not backed by a file.
func defaultPreferences() *Preferences {
	p := &Preferences{
		Joystick: joystick.NewPreferences(),
		Gamepad:  gamepad.NewPreferences(),
		Motion:   motion.NewPreferences(),
	}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all input settings to default values.
func (p *Preferences) SetDefaults() {
	p.Joystick.SetDefaults()
	p.Gamepad.SetDefaults()
	p.Motion.SetDefaults()
	p.RescanInGame.Set(rescanInGame)
	p.RescanInGameNever.Set(rescanInGameNever)
}

// Load input preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current input preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
