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

package backends

import (
	"github.com/jetsetilly/gopherinput/codes"
)

// AxisButton synthesizes a pair of buttons from an analog axis. The positive
// and negative sides are independent. A side is pressed when the value goes
// past the press threshold and released when it comes back to the release
// threshold or less. A release threshold lower than the press threshold
// gives hysteresis.
//
// Values are normalised to the range -1.0 to 1.0.
type AxisButton struct {
	Positive codes.ButtonCode
	Negative codes.ButtonCode

	posDown bool
	negDown bool
}

// NewAxisButton is the preferred method of initialisation for the AxisButton
// type. Either code can be ButtonCodeNone if that side is not required.
func NewAxisButton(positive codes.ButtonCode, negative codes.ButtonCode) AxisButton {
	return AxisButton{
		Positive: positive,
		Negative: negative,
	}
}

// Update the AxisButton with a new value. Transitions are posted to the
// sink.
func (ab *AxisButton) Update(sink Sink, tick uint32, value float64, press float64, release float64) {
	if release > press {
		release = press
	}
	side(sink, tick, value, press, release, &ab.posDown, ab.Positive)
	side(sink, tick, -value, press, release, &ab.negDown, ab.Negative)
}

func side(sink Sink, tick uint32, v float64, press float64, release float64, down *bool, code codes.ButtonCode) {
	if code == codes.ButtonCodeNone {
		return
	}
	if !*down {
		if v > press {
			*down = true
			PostButton(sink, tick, code, true)
		}
	} else if v <= release {
		*down = false
		PostButton(sink, tick, code, false)
	}
}

// Release forces both sides to the released state.
func (ab *AxisButton) Release(sink Sink, tick uint32) {
	if ab.posDown {
		ab.posDown = false
		PostButton(sink, tick, ab.Positive, false)
	}
	if ab.negDown {
		ab.negDown = false
		PostButton(sink, tick, ab.Negative, false)
	}
}

// IsDown returns the state of the positive and negative sides.
func (ab *AxisButton) IsDown() (positive bool, negative bool) {
	return ab.posDown, ab.negDown
}
