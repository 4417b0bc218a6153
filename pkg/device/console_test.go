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

package device_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kestrelvm/chip64/pkg/device"
)

func TestConsoleIOWriteDecimal(t *testing.T) {
	var out bytes.Buffer
	c := device.NewConsoleIO(strings.NewReader(""), &out)

	if err := c.Write([]byte{0x00, 0x2A}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if have := out.String(); have != "42" {
		t.Errorf("want:%q have:%q", "42", have)
	}
}

func TestConsoleIOWriteHex(t *testing.T) {
	var out bytes.Buffer
	c := device.NewConsoleIO(strings.NewReader(""), &out)
	c.SetPointer(1) // hex format

	if err := c.Write([]byte{0xCA, 0xFE}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if have := out.String(); have != "cafe" {
		t.Errorf("want:%q have:%q", "cafe", have)
	}
}

func TestConsoleIOReadDecimal(t *testing.T) {
	c := device.NewConsoleIO(strings.NewReader("42\n"), &bytes.Buffer{})

	data, err := c.Read(2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []byte{0x00, 0x2A}
	if !bytes.Equal(data, want) {
		t.Errorf("want:%#v have:%#v", want, data)
	}
}

func TestConsoleIOReadHex(t *testing.T) {
	c := device.NewConsoleIO(strings.NewReader("0xCAFE\n"), &bytes.Buffer{})
	c.SetPointer(1)

	data, err := c.Read(2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []byte{0xCA, 0xFE}
	if !bytes.Equal(data, want) {
		t.Errorf("want:%#v have:%#v", want, data)
	}
}

func TestConsoleIOReadEOF(t *testing.T) {
	c := device.NewConsoleIO(strings.NewReader(""), &bytes.Buffer{})

	if _, err := c.Read(2); err == nil {
		t.Error("expected an error reading from an exhausted input")
	}
}

func TestConsoleIOGetSetPointer(t *testing.T) {
	c := device.NewConsoleIO(strings.NewReader(""), &bytes.Buffer{})
	c.SetPointer(5) // only the low bit is meaningful

	if have := c.GetPointer(); have != 1 {
		t.Errorf("want:1 have:%d", have)
	}
}
