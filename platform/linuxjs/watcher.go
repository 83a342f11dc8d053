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

package linuxjs

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/logger"
)

// DefaultDir is the directory containing the joystick devices.
const DefaultDir = "/dev/input"

// devices in DefaultDir that are joysticks.
const devicePattern = "js*"

// BackendName is the name used in notifications. It is the name of the
// joystick backend.
const BackendName = "joystick"

// Watcher sends a notification when a joystick device is created or removed.
type Watcher struct {
	w    *fsnotify.Watcher
	done chan bool
}

// NewWatcher starts watching the directory. The notify function is called
// from the watcher's goroutine. If dir is the empty string then DefaultDir is
// used.
func NewWatcher(dir string, notify func(backends.Notification)) (*Watcher, error) {
	if dir == "" {
		dir = DefaultDir
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("linuxjs: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("linuxjs: %s: %w", dir, err)
	}

	wt := &Watcher{
		w:    w,
		done: make(chan bool),
	}

	go func() {
		defer close(wt.done)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if n, ok := notification(ev); ok {
					notify(n)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Logf(logger.Allow, "linuxjs", "watcher: %v", err)
			}
		}
	}()

	return wt, nil
}

// Close stops the watcher. The notify function is not called after Close()
// returns.
func (wt *Watcher) Close() error {
	err := wt.w.Close()
	<-wt.done
	return err
}

func notification(ev fsnotify.Event) (backends.Notification, bool) {
	if ok, _ := filepath.Match(devicePattern, filepath.Base(ev.Name)); !ok {
		return backends.Notification{}, false
	}

	n := backends.Notification{
		Backend: BackendName,
		ID:      ev.Name,
	}

	switch {
	case ev.Has(fsnotify.Create):
		n.Kind = backends.DeviceInserted
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		n.Kind = backends.DeviceRemoved
	default:
		return backends.Notification{}, false
	}

	return n, true
}
