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
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/kestrelvm/chip64/pkg/chip64"
	"github.com/kestrelvm/chip64/pkg/debugger"
	"github.com/kestrelvm/chip64/pkg/encoding"
)

var lastcmd []string
var rl *readline.Instance

func debugBreak(dbg *debugger.Debugger, args []string) {
	const usage = "break [add|list|remove]"

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "break add [0x####]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		addr, err := encoding.DecodeHex(args[0])
		if err != nil {
			log.Println(err)
			return
		}

		exists := false
		for _, bp := range dbg.Breakpoints {
			if bp.Addr == addr {
				exists = true
				break
			}
		}

		if !exists {
			dbg.Breakpoints = append(dbg.Breakpoints, debugger.Breakpoint{Addr: addr})
			fmt.Printf("Breakpoint added [%#04x]\n", addr)
		}

	case "l", "ls", "list":
		var fmtstring string
		{
			digits := math.Floor(math.Log10(float64(len(dbg.Breakpoints) + 1)))
			fmtstring = fmt.Sprintf("#%%0%dd: %%#04x\n", int64(digits)+1)
		}

		for i, bp := range dbg.Breakpoints {
			fmt.Printf(fmtstring, i, bp.Addr)
		}

	case "r", "rm", "remove":
		const usage = "break remove [#]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		i, err := strconv.Atoi(args[0])
		if err != nil || i < 0 || i >= len(dbg.Breakpoints) {
			log.Println("Invalid breakpoint number")
			return
		}

		dbg.Breakpoints[i] = dbg.Breakpoints[len(dbg.Breakpoints)-1]
		dbg.Breakpoints = dbg.Breakpoints[:len(dbg.Breakpoints)-1]
		fmt.Printf("Breakpoint removed [%d]\n", i)

	case "clear":
		dbg.Breakpoints = nil
		fmt.Println("Breakpoints reset")

	default:
		log.Println(usage)
	}
}

func debugWatch(dbg *debugger.Debugger, args []string) {
	const usage = "watch [add|list|rm]"

	if len(args) == 0 {
		log.Println(usage)
		return
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		const usage = "watch add [0x####] [read|write|readwrite]"

		if len(args) != 2 {
			log.Println(usage)
			return
		}

		addr, err := encoding.DecodeHex(args[0])
		if err != nil {
			log.Println(err)
			return
		}

		var wtype debugger.WatchpointType
		switch args[1] {
		case "r", "read":
			wtype = debugger.ReadWatch
		case "w", "write":
			wtype = debugger.WriteWatch
		case "rw", "readwrite":
			wtype = debugger.ReadWriteWatch
		default:
			log.Println(usage)
			return
		}

		dbg.Watchpoints = append(dbg.Watchpoints, debugger.Watchpoint{Addr: addr, Type: wtype})
		fmt.Printf("Watchpoint added [%#04x]\n", addr)

	case "l", "ls", "list":
		for i, wp := range dbg.Watchpoints {
			fmt.Printf("#%d: %#04x\n", i, wp.Addr)
		}

	case "r", "rm", "remove":
		const usage = "watch rm [#]"

		if len(args) != 1 {
			log.Println(usage)
			return
		}

		i, err := strconv.Atoi(args[0])
		if err != nil || i < 0 || i >= len(dbg.Watchpoints) {
			log.Println("Invalid watchpoint number")
			return
		}

		dbg.Watchpoints[i] = dbg.Watchpoints[len(dbg.Watchpoints)-1]
		dbg.Watchpoints = dbg.Watchpoints[:len(dbg.Watchpoints)-1]
		fmt.Printf("Watchpoint removed [%d]\n", i)

	case "clear":
		dbg.Watchpoints = nil
		fmt.Println("Watchpoints reset")

	default:
		log.Println(usage)
	}
}

func debugReg(dbg *debugger.Debugger, vm *chip64.VM, args []string) {
	const usage = "register [R#] [0x####]"

	if len(args) > 0 {
		if len(args) != 2 {
			log.Println(usage)
			return
		}

		value, err := encoding.DecodeHex(args[1])
		if err != nil {
			log.Println(err)
			return
		}

		name := strings.ToUpper(args[0])
		if !strings.HasPrefix(name, "R") {
			log.Println(usage)
			return
		}

		idx, err := strconv.ParseInt(strings.TrimPrefix(name, "R"), 16, 8)
		if err != nil || idx < 0 || int(idx) >= chip64.NumRegisters {
			log.Println("Invalid register")
			return
		}

		vm.Registers[idx] = value
		fmt.Printf("\033[1m%s:\033[0m %#04x\n", name, value)
		return
	}

	dbg.PrintRegisters(vm)
}

func debugMemory(dbg *debugger.Debugger, vm *chip64.VM, args []string) {
	const usage = "memory [0x####] [#]"

	if len(args) > 2 {
		log.Println(usage)
		return
	}

	addr := vm.PC
	var size uint16 = 8

	if len(args) > 0 {
		v, err := encoding.DecodeHex(args[0])
		if err != nil {
			log.Println(err)
			return
		}
		addr = v
	}

	if len(args) > 1 {
		v, err := strconv.ParseUint(args[1], 10, 16)
		if err != nil {
			log.Println(err)
			return
		}
		size = uint16(v)
	}

	dbg.PrintMem(vm, addr, size)
}

func debugSet(dbg *debugger.Debugger, vm *chip64.VM, args []string) {
	const usage = "set [0x####] [0x##]"

	if len(args) != 2 {
		log.Println(usage)
		return
	}

	addr, err := encoding.DecodeHex(args[0])
	if err != nil {
		log.Println(err)
		return
	}

	value, err := encoding.DecodeHex(args[1])
	if err != nil {
		log.Println(err)
		return
	}

	if int(addr) < chip64.MemSize {
		vm.Memory[addr] = byte(value)
	}
	dbg.PrintMem(vm, addr, 1)
}

func debugREPL(dbg *debugger.Debugger, vm *chip64.VM) {
	if rl == nil {
		var err error
		rl, err = readline.New("\033[1;30m(dbg)\033[0m ")
		if err != nil {
			log.Println(err)
			shouldexit = true
			return
		}
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println()
			shouldexit = true
			return
		}

		args := strings.Fields(line)

		if len(args) == 0 {
			if len(lastcmd) == 0 {
				continue
			}
			args = lastcmd
		} else {
			lastcmd = append([]string(nil), args...)
		}

		cmd := args[0]
		args = args[1:]

		switch cmd {
		case "b", "bp", "break", "breakpoint":
			debugBreak(dbg, args)

		case "w", "wp", "watch", "watchpoint":
			debugWatch(dbg, args)

		case "r", "reg", "register", "registers":
			debugReg(dbg, vm, args)

		case "m", "mem", "memory":
			debugMemory(dbg, vm, args)

		case "set":
			debugSet(dbg, vm, args)

		case "c", "continue":
			dbg.Break = false
			return

		case "n", "next":
			dbg.Break = true
			return

		case "q", "quit", "exit":
			shouldexit = true
			return

		case "clear":
			fmt.Print("\033[H\033[2J")

		default:
			fmt.Printf("error: '%s' is not a valid command\n", cmd)
		}
	}
}

func handleBreak(dbg *debugger.Debugger, vm *chip64.VM) {
	if !dbg.Break {
		fmt.Println()
		fmt.Println("Program stopped")
		dbg.PrintRegisters(vm)
	}
	debugREPL(dbg, vm)
}

func handleRead(addr uint16, dbg *debugger.Debugger, vm *chip64.VM) {
	fmt.Println()
	fmt.Printf("Read watchpoint hit [%#04x]\n", addr)
	dbg.PrintMem(vm, addr, 1)
	debugREPL(dbg, vm)
}

func handleWrite(addr uint16, dbg *debugger.Debugger, vm *chip64.VM) {
	fmt.Println()
	fmt.Printf("Write watchpoint hit [%#04x]\n", addr)
	dbg.PrintMem(vm, addr, 1)
	debugREPL(dbg, vm)
}
