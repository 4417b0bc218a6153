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

package device

import (
	"errors"
	"io"
	"os"
)

// Rom is a read-only view over a file, up to 65536 bytes, holding the
// file handle open for its lifetime so the host can release it
// explicitly on shutdown.
type Rom struct {
	ptr  uint16
	mem  [1 << 16]byte
	file *os.File
}

// OpenRom opens path read-only and reads up to 65536 bytes into the
// device's internal buffer. A file shorter than 65536 bytes leaves the
// remainder zeroed.
func OpenRom(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r := &Rom{file: f}

	if _, err := io.ReadFull(f, r.mem[:]); err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		f.Close()
		return nil, err
	}

	return r, nil
}

// Close releases the underlying file handle.
func (r *Rom) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// Read copies n bytes out of the rom image starting at the pointer,
// advancing it by n, exactly like MemoryExt.
func (r *Rom) Read(n int) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		out[i] = r.mem[r.ptr]
		r.ptr++
	}
	return out, nil
}

// Write never changes the rom image: the device is read-only, so every
// call returns an error.
func (r *Rom) Write(data []byte) error {
	return errors.New("rom: device is read-only")
}

// SetPointer moves the device's read cursor.
func (r *Rom) SetPointer(v uint16) { r.ptr = v }

// GetPointer returns the device's read cursor.
func (r *Rom) GetPointer() uint16 { return r.ptr }
