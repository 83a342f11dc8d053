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
	"math/bits"

	"github.com/jetsetilly/gopherinput/codes"
)

const buttonWords = (int(codes.ButtonCodeCount) + 63) / 64

// buttonSet is a fixed size bitset with one bit per button code.
type buttonSet [buttonWords]uint64

func (b *buttonSet) isSet(c codes.ButtonCode) bool {
	return b[c/64]&(1<<(uint(c)%64)) != 0
}

func (b *buttonSet) set(c codes.ButtonCode) {
	b[c/64] |= 1 << (uint(c) % 64)
}

func (b *buttonSet) clear(c codes.ButtonCode) {
	b[c/64] &^= 1 << (uint(c) % 64)
}

func (b *buttonSet) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// State is one of the two input state slots. All arrays are fixed size so
// that copying a State never allocates, except for the event list which is
// reused between polls.
type State struct {
	buttons      buttonSet
	pressedTick  [codes.ButtonCodeCount]uint32
	releasedTick [codes.ButtonCodeCount]uint32
	analogValue  [codes.AnalogCodeCount]int
	analogDelta  [codes.AnalogCodeCount]int
	events       []Event

	// an event has been posted to the slot since it was last the destination
	// of a copy
	dirty bool
}

// Dirty returns true if the State has been written to since it was last the
// destination of CopyInputState().
func (s *State) Dirty() bool {
	return s.dirty
}

// NumButtonsDown returns the number of buttons currently down.
func (s *State) NumButtonsDown() int {
	return s.buttons.count()
}

func (s *State) zeroDeltas() {
	s.analogDelta = [codes.AnalogCodeCount]int{}
}

// CopyInputState copies the button, tick and analog arrays of src into dest
// if src is dirty. The event list is copied only if copyEvents is true. In
// all cases the event list of dest is emptied and dest is no longer dirty.
func CopyInputState(dest *State, src *State, copyEvents bool) {
	dest.events = dest.events[:0]
	dest.dirty = false

	if !src.dirty {
		return
	}

	dest.buttons = src.buttons
	dest.pressedTick = src.pressedTick
	dest.releasedTick = src.releasedTick
	dest.analogValue = src.analogValue
	dest.analogDelta = src.analogDelta

	if copyEvents {
		dest.events = append(dest.events, src.events...)
	}
}

// ClearInputState zeroes the button, tick and analog arrays of the State. If
// purge is true the event list is also emptied and the dirty flag cleared.
func ClearInputState(s *State, purge bool) {
	s.buttons = buttonSet{}
	s.pressedTick = [codes.ButtonCodeCount]uint32{}
	s.releasedTick = [codes.ButtonCodeCount]uint32{}
	s.analogValue = [codes.AnalogCodeCount]int{}
	s.zeroDeltas()
	if purge {
		s.events = s.events[:0]
		s.dirty = false
	}
}
