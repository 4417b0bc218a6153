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

package encoding

import (
	"errors"
	"strconv"
	"strings"
)

// DecodeHex decodes a hexidecimal string in the formats: 0xFFFF, xFFFF,
// 0xFF, xFF. Chip64 addresses, the memory pointer and device pointers
// are all 16-bit unsigned, so the debugger's address/value arguments
// funnel through this one decoder.
func DecodeHex(s string) (uint16, error) {
	if i := strings.IndexAny(s, "xX"); i == 0 {
		s = "0" + s
	} else if i == -1 || i != 1 {
		return 0, errors.New("invalid hex string")
	}

	result, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}

	return uint16(result), nil
}
