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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/backends/gamepad"
	"github.com/jetsetilly/gopherinput/backends/joystick"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/inputsystem"
	"github.com/jetsetilly/gopherinput/keybinds"
	"github.com/jetsetilly/gopherinput/logger"
	"github.com/jetsetilly/gopherinput/modalflag"
	"github.com/jetsetilly/gopherinput/paths"
	"github.com/jetsetilly/gopherinput/performance"
	"github.com/jetsetilly/gopherinput/platform/sdlinput"
	"github.com/jetsetilly/gopherinput/prefs"
	"github.com/jetsetilly/gopherinput/statsview"
	"github.com/jetsetilly/gopherinput/version"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL event handling must happen on the main thread.
func init() {
	runtime.LockOSThread()
}

// the maximum time the monitor loop waits for input before polling anyway.
const idleWait = 16

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("MONITOR", "TERM", "CODES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitor(md)

	case "TERM":
		err = term(md)

	case "CODES":
		err = listCodes(md, os.Stdout)

	case "VERSION":
		v, r := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// options shared by the MONITOR and TERM modes.
type monitorOptions struct {
	log       *bool
	inGame    *bool
	binds     *string
	memviz    *bool
	profile   *string
	prefs     *string
	statsview *bool
}

func addMonitorOptions(md *modalflag.Modes) monitorOptions {
	opts := monitorOptions{
		log:     md.AddBool("log", false, "echo debugging log to stdout"),
		inGame:  md.AddBool("ingame", false, "use the in-game controller rescan interval"),
		binds:   md.AddString("binds", "", "key bindings file. commands are printed when a bound button is pressed"),
		memviz:  md.AddBool("memviz", false, "write a graphviz file of the input system state on exit"),
		profile: md.AddString("profile", "NONE", "run through profiler: CPU, MEM, TRACE, ALL (comma separated)"),
		prefs:   md.AddString("prefs", "", "preferences for this run only. format is key::value; key::value"),
	}
	if statsview.Available() {
		opts.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return opts
}

// monitor prints every input event received by an SDL window.
func monitor(md *modalflag.Modes) error {
	md.NewMode()
	opts := addMonitorOptions(md)
	noGamepad := md.AddBool("nogamepad", false, "treat game controllers as plain joysticks")
	native := md.AddBool("native", false, "read controllers with the operating system API rather than SDL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	opts.apply()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("gopherinput", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		640, 480, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer window.Destroy()

	windowID, err := window.GetID()
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	inputPrefs, err := opts.newPreferences()
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	var bs []backends.Backend
	if *native {
		bs = nativeBackends(inputPrefs)
	} else {
		bs = append(bs, joystick.NewBackend(sdlinput.NewJoystickDriver(!*noGamepad), inputPrefs.Joystick))
		if !*noGamepad {
			bs = append(bs, gamepad.NewBackend(sdlinput.NewGameControllerDriver(), inputPrefs.Gamepad))
		}
	}

	pump := sdlinput.NewPump()
	is := inputsystem.NewInputSystem(clock.New(), inputPrefs, withNativeToggles(pump), bs...)
	defer is.Shutdown()
	pump.SetHotplugNotify(is.Notify)

	if *native {
		watcher, err := watchHotplug(is.Notify)
		if err != nil {
			logger.Log(logger.Allow, "monitor", err)
		} else {
			defer watcher.Close()
		}
	}

	if err := is.AttachToWindow(uintptr(windowID)); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer is.DetachFromWindow()

	return run(is, opts)
}

func (opts monitorOptions) apply() {
	if *opts.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}
	if opts.statsview != nil && *opts.statsview {
		statsview.Launch(os.Stdout)
	}
}

// newPreferences loads the input preferences with the values of the -prefs
// flag applied over the top.
func (opts monitorOptions) newPreferences() (*inputsystem.Preferences, error) {
	prefs.PushCommandLineStack(*opts.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}()
	return inputsystem.NewPreferences()
}

// run polls the input system until a quit or close event is received or
// until the process is interrupted.
func run(is *inputsystem.InputSystem, opts monitorOptions) error {
	profile, err := performance.ParseProfile(*opts.profile)
	if err != nil {
		return err
	}
	return performance.RunProfiler(profile, "gopherinput", func() error {
		return poll(is, opts)
	})
}

func poll(is *inputsystem.InputSystem, opts monitorOptions) error {
	binds := keybinds.NewBinds()
	if *opts.binds != "" {
		if err := binds.Load(*opts.binds); err != nil {
			return err
		}
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	defer func() {
		if *opts.memviz {
			writeMemviz(is)
		}
	}()

	for {
		select {
		case <-intChan:
			return nil
		default:
		}

		is.SleepUntilInput(idleWait)
		is.PollInputState(*opts.inGame)

		for _, ev := range is.GetEventData() {
			fmt.Printf("%s\r\n", ev)

			switch ev.Type {
			case eventqueue.Quit, eventqueue.Close:
				return nil
			case eventqueue.ButtonPressed:
				if cmd, ok := binds.Lookup(codes.ButtonCode(ev.Data)); ok {
					fmt.Printf("  -> %s\r\n", cmd)
				}
			}
		}
	}
}

func writeMemviz(is *inputsystem.InputSystem) {
	fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", "input"))
	f, err := os.Create(fn)
	if err != nil {
		logger.Log(logger.Allow, "memviz", err)
		return
	}
	defer f.Close()
	memviz.Map(f, is)
	fmt.Printf("input system state written to %s\r\n", fn)
}

// listCodes writes the name of every button and analog code.
func listCodes(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	gamepadNames := md.AddBool("gamepad", false, "use gamepad names for joystick codes")
	filter := md.AddString("filter", "", "only list codes whose name contains the filter")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	flt := strings.ToUpper(*filter)

	var names []string
	for c := codes.ButtonCodeNone + 1; c <= codes.ButtonCodeLast; c++ {
		s := codes.ButtonCodeToString(c, *gamepadNames)
		if s == "" || !strings.Contains(s, flt) {
			continue
		}
		names = append(names, fmt.Sprintf("%5d  %s", int(c), s))
	}
	for c := codes.AnalogCode(0); c.IsValid(); c++ {
		s := codes.AnalogCodeToString(c)
		if !strings.Contains(s, flt) {
			continue
		}
		names = append(names, fmt.Sprintf("  a%-3d %s", int(c), s))
	}

	for _, s := range names {
		fmt.Fprintln(output, s)
	}
	return nil
}
