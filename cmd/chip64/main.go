// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kestrelvm/chip64/pkg/chip64"
	"github.com/kestrelvm/chip64/pkg/debugger"
	"github.com/kestrelvm/chip64/pkg/device"
)

var helpvar bool
var debugvar bool
var devicevar deviceFlagList
var shouldexit bool

const usage = "chip64 [-debug] [-device N=kind[:arg]]... filename"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(&debugvar, "debug", false, "Runs the machine in a debug CLI")
	flag.Var(&devicevar, "device", "Binds a device to a bus slot: N=console|memext|fpu|rom:path")
	flag.Parse()
}

// deviceFlagList collects repeated -device flags, each of the form
// "N=kind[:arg]", into the raw strings parseDevices later resolves
// into bus devices.
type deviceFlagList []string

func (d *deviceFlagList) String() string { return strings.Join(*d, ",") }

func (d *deviceFlagList) Set(v string) error {
	*d = append(*d, v)
	return nil
}

// parseDevices resolves every -device flag into a populated device bus.
// Slot 0 is left nil on return when the caller did not bind it, so
// chip64.New can fall back to its default ConsoleIO.
func parseDevices(specs []string) ([chip64.NumDeviceSlots]chip64.Device, error) {
	var bus [chip64.NumDeviceSlots]chip64.Device

	for _, spec := range specs {
		slotStr, kindStr, ok := strings.Cut(spec, "=")
		if !ok {
			return bus, fmt.Errorf("invalid -device %q: want N=kind[:arg]", spec)
		}

		slot, err := strconv.Atoi(slotStr)
		if err != nil || slot < 0 || slot >= chip64.NumDeviceSlots {
			return bus, fmt.Errorf("invalid -device %q: slot must be 0..%d", spec, chip64.NumDeviceSlots-1)
		}

		kind, arg, _ := strings.Cut(kindStr, ":")

		var dev chip64.Device
		switch kind {
		case "console":
			dev = device.NewConsoleIO(os.Stdin, os.Stdout)
		case "memext":
			dev = device.NewMemoryExt()
		case "fpu":
			dev = device.NewFloatingPoint()
		case "rom":
			if arg == "" {
				return bus, fmt.Errorf("invalid -device %q: rom requires a path", spec)
			}
			rom, err := device.OpenRom(arg)
			if err != nil {
				return bus, fmt.Errorf("-device %q: %w", spec, err)
			}
			dev = rom
		default:
			return bus, fmt.Errorf("invalid -device %q: unknown kind %q", spec, kind)
		}

		bus[slot] = dev
	}

	return bus, nil
}

func chip64main() int {
	if helpvar {
		fmt.Println(usage)
		return 0
	}

	args := flag.Args()

	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	image, err := os.ReadFile(args[0])
	if err != nil {
		log.Println(err)
		return 1
	}

	bus, err := parseDevices(devicevar)
	if err != nil {
		log.Println(err)
		return 1
	}

	vm, err := chip64.New(image, bus)
	if err != nil {
		log.Println(err)
		return 1
	}

	for _, dev := range bus {
		if rom, ok := dev.(*device.Rom); ok {
			defer rom.Close()
		}
	}

	var dbg *debugger.Debugger
	if debugvar {
		dbg = &debugger.Debugger{
			HandleBreak: handleBreak,
			HandleRead:  handleRead,
			HandleWrite: handleWrite,
		}
		vm.Hook = dbg

		c := make(chan os.Signal, 1)
		defer close(c)

		signal.Notify(c, os.Interrupt)
		go func() {
			for range c {
				fmt.Println()
				dbg.Break = true
			}
		}()

		debugREPL(dbg, vm)
	}

	for !shouldexit && !vm.Halted() {
		vm.Step()
	}

	if vm.Status() != chip64.StatusHaltedClean {
		log.Printf("machine stopped: %s", vm.Status())
	}

	return vm.ExitCode()
}

func main() {
	os.Exit(chip64main())
}
