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

package chip64

const (
	// MemSize is the size in bytes of the linear address space shared by
	// program bytes and data.
	MemSize = 4096

	// NumRegisters is the number of general registers, r0..rF.
	NumRegisters = 16

	// FlagRegister is the register index that doubles as the
	// carry/borrow/shift-capture flag.
	FlagRegister = 0xF

	// NumDeviceSlots is the number of device bus slots, 0x0..0xF.
	NumDeviceSlots = 16

	// StackDepth is the call stack's fixed capacity.
	StackDepth = 16

	// ConsoleSlot is the device slot ConsoleIO is bound to by default.
	ConsoleSlot = 0
)
