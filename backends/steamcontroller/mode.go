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

package steamcontroller

import (
	"fmt"
	"sync"
)

// Mode selects the action set used by the controllers.
type Mode int

// List of valid Mode values.
const (
	GameControls Mode = iota
	MenuControls
	numModes
)

// action set name for each mode.
var modeNames = [numModes]string{
	GameControls: "GameControls",
	MenuControls: "MenuControls",
}

func (m Mode) String() string {
	if m < 0 || m >= numModes {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

type modeEntry struct {
	key  any
	mode Mode
}

// modeStack is a stack of modes requested by different callers. The active
// mode is the mode at the top of the stack, or GameControls if the stack is
// empty.
type modeStack struct {
	crit    sync.Mutex
	entries []modeEntry
}

// push puts the mode for the key on the top of the stack. An earlier request
// for the same key is replaced.
func (st *modeStack) push(key any, mode Mode) {
	st.crit.Lock()
	defer st.crit.Unlock()
	st.remove(key)
	st.entries = append(st.entries, modeEntry{key: key, mode: mode})
}

// pop removes the request for the key, wherever it is in the stack.
func (st *modeStack) pop(key any) {
	st.crit.Lock()
	defer st.crit.Unlock()
	st.remove(key)
}

// must be called from within the critical section.
func (st *modeStack) remove(key any) {
	for i := range st.entries {
		if st.entries[i].key == key {
			st.entries = append(st.entries[:i], st.entries[i+1:]...)
			return
		}
	}
}

func (st *modeStack) active() Mode {
	st.crit.Lock()
	defer st.crit.Unlock()
	if len(st.entries) == 0 {
		return GameControls
	}
	return st.entries[len(st.entries)-1].mode
}
