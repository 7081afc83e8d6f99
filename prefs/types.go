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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by all the prefs types that have a single live value.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed. An error from the callback prevents the update.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

// store the new value in v, calling the hook functions either side of the store.
func (h *hooks) store(v *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	v.Store(nv)
	if h.post != nil {
		if err := h.post(nv); err != nil {
			return err
		}
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(&p.value, v)
	case string:
		return p.store(&p.value, strings.ToLower(strings.TrimSpace(v)) == "true")
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	if ov := p.value.Load(); ov != nil {
		return ov.(bool)
	}
	return false
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	maxLen int
	value  atomic.Value // string
}

func (p *String) String() string {
	if ov := p.value.Load(); ov != nil {
		return ov.(string)
	}
	return ""
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. Note that the existing string
// will be cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.String(); p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

// Set new value to String type. Values that are not strings are formatted
// with the %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(&p.value, v)
	case int32:
		return p.store(&p.value, int(v))
	case int64:
		return p.store(&p.value, int(v))
	case string:
		nv, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
		return p.store(&p.value, nv)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	if ov := p.value.Load(); ov != nil {
		return ov.(int)
	}
	return 0
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	hooks
	value atomic.Value // float64
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.Get())
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		return p.store(&p.value, v)
	case float32:
		return p.store(&p.value, float64(v))
	case int:
		return p.store(&p.value, float64(v))
	case string:
		nv, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Float: %w", v, err)
		}
		return p.store(&p.value, nv)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	if ov := p.value.Load(); ov != nil {
		return ov.(float64)
	}
	return float64(0.0)
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// Generic is a general purpose prefererences type, useful for values that
// cannot be represented by a single live value. For example, the position of
// a window is two numbers that are owned by the window system. You must use
// the NewGeneric() function to initialise a new instance of Generic.
//
// The Generic prefs type does not have a way of registering a callback
// function.
type Generic struct {
	crit sync.Mutex
	set  func(string) error
	get  func() string

	// the last value sent to set() function
	mostRecentSetValue string
}

// GenericGetValueUndefined is a special return value for the get() function
// (see NewGeneric()). It indicates that the value is currently unavailable and
// the most recent previous value should be used.
const GenericGetValueUndefined = "GenericGetValueUndefined"

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(string) error, get func() string) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set triggers the set value procedure for the generic type.
func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()

	s := fmt.Sprintf("%v", v)
	p.mostRecentSetValue = s
	return p.set(s)
}

// Get triggers the get value procedure for the generic type.
func (p *Generic) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()

	s := p.get()
	if s == GenericGetValueUndefined {
		return p.mostRecentSetValue
	}
	p.mostRecentSetValue = s
	return s
}

// Reset sets the generic value to the empty string.
func (p *Generic) Reset() error {
	return p.Set("")
}
