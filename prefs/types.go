// This file is part of Luneburg.
//
// Luneburg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Luneburg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Luneburg.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Value represents the actual Go preference value.
type Value interface{}

// pref is implemented by all preference types.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// commit stores the new value and calls the post hook if there is one.
type commit struct {
	crit     sync.Mutex
	hookPost func(value Value) error
}

func (c *commit) post(v Value) error {
	if c.hookPost != nil {
		return c.hookPost(v)
	}
	return nil
}

// SetHookPost sets the function to be called after a successful Set().
func (c *commit) SetHookPost(f func(value Value) error) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	commit
	value bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. String values of "true" (case insensitive) are
// true and all other strings are false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	p.crit.Lock()
	p.value = nv
	p.crit.Unlock()

	return p.post(nv)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.value
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	commit
	value string
}

func (p *String) String() string {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.value
}

// Set new value to String type. Values of any type are converted with the
// %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)

	p.crit.Lock()
	p.value = nv
	p.crit.Unlock()

	return p.post(nv)
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
	commit
	value int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	p.crit.Lock()
	p.value = nv
	p.crit.Unlock()

	return p.post(nv)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.value
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	commit
	value float64
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.Get())
}

// Set new value to Float type.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Float: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
	}

	p.crit.Lock()
	p.value = nv
	p.crit.Unlock()

	return p.post(nv)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.value
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// Duration implements a time.Duration type in the prefs system. Durations are
// written to disk in the format used by time.Duration.String().
type Duration struct {
	commit
	value time.Duration
}

func (p *Duration) String() string {
	return p.Value().String()
}

// Set new value to Duration type. Strings are parsed with
// time.ParseDuration().
func (p *Duration) Set(v Value) error {
	var nv time.Duration
	switch v := v.(type) {
	case time.Duration:
		nv = v
	case string:
		var err error
		nv, err = time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Duration: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Duration", v)
	}

	if nv < 0 {
		return fmt.Errorf("prefs: negative duration (%v)", nv)
	}

	p.crit.Lock()
	p.value = nv
	p.crit.Unlock()

	return p.post(nv)
}

// Get returns the raw pref value.
func (p *Duration) Get() Value {
	return p.Value()
}

// Value returns the duration without the need for a type assertion.
func (p *Duration) Value() time.Duration {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.value
}

// Reset sets the duration to zero.
func (p *Duration) Reset() error {
	return p.Set(time.Duration(0))
}
