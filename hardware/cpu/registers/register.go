// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"fmt"
)

// Register is an 8-bit register with a label.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%#02x", r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns true if the addition carried out of bit 7.
func (r *Register) Add(val uint8) (carry bool) {
	v := uint16(r.value) + uint16(val)
	r.value = uint8(v)
	return v > 0xff
}

// Subtract value from register. Returns true if there was no borrow, ie. the
// register was greater than or equal to the value.
func (r *Register) Subtract(val uint8) (noBorrow bool) {
	noBorrow = r.value >= val
	r.value -= val
	return noBorrow
}

// ShiftRight the register by one bit. Returns the bit shifted out.
func (r *Register) ShiftRight() uint8 {
	b := r.value & 0x01
	r.value >>= 1
	return b
}

// ShiftLeft the register by one bit. Returns the bit shifted out.
func (r *Register) ShiftLeft() uint8 {
	b := r.value >> 7
	r.value <<= 1
	return b
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}
