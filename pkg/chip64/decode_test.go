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

package chip64_test

import (
	"testing"

	"github.com/kestrelvm/chip64/pkg/chip64"
)

// PXYQ / PXNN / PNNN: every instruction word decomposes into these
// nibble/byte fields regardless of which family it belongs to.
func TestDecode(t *testing.T) {
	tests := []struct {
		Name   string
		Hi, Lo byte
		Want   chip64.Instruction
	}{
		{
			Name: "ADD r4,r1",
			Hi:   0x84, Lo: 0x14,
			Want: chip64.Instruction{
				Hi: 0x84, Lo: 0x14,
				P: 0x8, X: 0x4, Y: 0x1, Q: 0x4,
				NN: 0x14, NNN: 0x414,
			},
		},
		{
			Name: "GOTO 0x123",
			Hi:   0x11, Lo: 0x23,
			Want: chip64.Instruction{
				Hi: 0x11, Lo: 0x23,
				P: 0x1, X: 0x1, Y: 0x2, Q: 0x3,
				NN: 0x23, NNN: 0x123,
			},
		},
		{
			Name: "ACR r0,0xFF",
			Hi:   0x60, Lo: 0xFF,
			Want: chip64.Instruction{
				Hi: 0x60, Lo: 0xFF,
				P: 0x6, X: 0x0, Y: 0xF, Q: 0xF,
				NN: 0xFF, NNN: 0x0FF,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			have := chip64.Decode(test.Hi, test.Lo)
			if have != test.Want {
				t.Errorf("\nwant:%+v\nhave:%+v", test.Want, have)
			}
		})
	}
}

func TestInstructionWord(t *testing.T) {
	inst := chip64.Decode(0x01, 0xEE)
	if have := inst.Word(); have != 0x01EE {
		t.Errorf("want:%#04x have:%#04x", 0x01EE, have)
	}
}
