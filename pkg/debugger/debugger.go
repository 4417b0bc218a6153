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

package debugger

import (
	"fmt"

	"github.com/kestrelvm/chip64/pkg/chip64"
)

func (dbg *Debugger) Step(vm *chip64.VM) {
	if dbg.Break {
		dbg.HandleBreak(dbg, vm)
		return
	}

	for _, bp := range dbg.Breakpoints {
		if vm.PC == bp.Addr {
			dbg.HandleBreak(dbg, vm)
			break
		}
	}
}

func (dbg *Debugger) Read(addr uint16, vm *chip64.VM) {
	for _, wp := range dbg.Watchpoints {
		if wp.Type == WriteWatch {
			continue
		}

		if addr == wp.Addr {
			dbg.HandleRead(addr, dbg, vm)
			break
		}
	}
}

func (dbg *Debugger) Write(addr uint16, vm *chip64.VM) {
	for _, wp := range dbg.Watchpoints {
		if wp.Type == ReadWatch {
			continue
		}

		if addr == wp.Addr {
			dbg.HandleWrite(addr, dbg, vm)
			break
		}
	}
}

func (dbg *Debugger) PrintRegisters(vm *chip64.VM) {
	for i, r := range vm.Registers {
		fmt.Printf("\033[1mR%X:\033[0m %#04x\t", i, r)
		if i == 7 {
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Printf(
		"\033[1mPC:\033[0m %#04x\t\033[1mMP:\033[0m %#04x\t\033[1mAlert:\033[0m %v\n",
		vm.PC, vm.MP, vm.Alert,
	)
}

func (dbg *Debugger) PrintMem(vm *chip64.VM, addr, count uint16) {
	for i := addr; i < addr+count; i++ {
		if i == addr {
			fmt.Printf("\033[1m[%#04x]\033[0m ", i)
		} else if (i-addr)%8 == 0 {
			fmt.Println()
			fmt.Printf("\033[1m[%#04x]\033[0m ", i)
		}

		b := vm.Memory[i]

		if b == 0 {
			fmt.Printf("\033[1;30m%#02x\033[0m ", b)
		} else {
			fmt.Printf("%#02x ", b)
		}
	}

	fmt.Println()
}
