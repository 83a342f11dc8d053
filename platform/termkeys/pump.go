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

//go:build !windows

package termkeys

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gopherinput/backends/keyboard"
	"github.com/jetsetilly/gopherinput/logger"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Pump reads key presses from a terminal. It implements the Pump interface
// of the inputsystem package.
type Pump struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	// chunks of bytes read by the reader goroutine
	read chan []byte

	// bytes that have been received from the read channel but not yet
	// decoded
	crit    sync.Mutex
	pending []byte
}

// NewPump puts the input terminal into raw mode and starts reading from it.
// The output terminal is used to position the cursor. Close() must be called
// to restore the terminal.
func NewPump(input *os.File, output *os.File) (*Pump, error) {
	if input == nil {
		return nil, fmt.Errorf("termkeys: requires an input file")
	}
	if output == nil {
		return nil, fmt.Errorf("termkeys: requires an output file")
	}

	p := &Pump{
		input:  input,
		output: output,
		read:   make(chan []byte, 16),
	}

	if err := termios.Tcgetattr(p.input.Fd(), &p.canAttr); err != nil {
		return nil, fmt.Errorf("termkeys: %w", err)
	}
	p.rawAttr = p.canAttr
	termios.Cfmakeraw(&p.rawAttr)
	if err := termios.Tcsetattr(p.input.Fd(), termios.TCIFLUSH, &p.rawAttr); err != nil {
		return nil, fmt.Errorf("termkeys: %w", err)
	}

	go func() {
		for {
			b := make([]byte, 64)
			n, err := p.input.Read(b)
			if n > 0 {
				p.read <- b[:n]
			}
			if err != nil {
				logger.Log(logger.Allow, "termkeys", err)
				close(p.read)
				return
			}
		}
	}()

	return p, nil
}

// Close restores the terminal to canonical mode. The reader goroutine ends
// when the input file is closed.
func (p *Pump) Close() {
	_ = termios.Tcsetattr(p.input.Fd(), termios.TCIFLUSH, &p.canAttr)
}

// receive appends every chunk waiting in the read channel to the pending
// bytes. Must be called with the critical section locked.
func (p *Pump) receive() {
	for {
		select {
		case b, ok := <-p.read:
			if !ok {
				return
			}
			p.pending = append(p.pending, b...)
		default:
			return
		}
	}
}

// Drain implements the Pump interface.
func (p *Pump) Drain(h keyboard.Handler) {
	p.crit.Lock()
	defer p.crit.Unlock()

	p.receive()
	n := decode(p.pending, h)
	p.pending = append(p.pending[:0], p.pending[n:]...)
}

// WaitForInput implements the Pump interface.
func (p *Pump) WaitForInput(maxMs int) bool {
	p.crit.Lock()
	p.receive()
	ready := len(p.pending) > 0
	p.crit.Unlock()

	if ready || maxMs == 0 {
		return ready
	}

	var timeout <-chan time.Time
	if maxMs > 0 {
		t := time.NewTimer(time.Duration(maxMs) * time.Millisecond)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case b, ok := <-p.read:
		if !ok {
			return false
		}
		p.crit.Lock()
		p.pending = append(p.pending, b...)
		p.crit.Unlock()
		return true
	case <-timeout:
		return false
	}
}

// Toggles implements the keyboard.ToggleState interface. The state of the
// lock keys is not available to a terminal.
func (p *Pump) Toggles() (bool, bool, bool) {
	return false, false, false
}

// SetCursorPosition implements the Pump interface. The position is in
// character cells.
func (p *Pump) SetCursorPosition(x int, y int) {
	fmt.Fprintf(p.output, "\x1b[%d;%dH", y+1, x+1)
}
