package vexflag

import (
	"fmt"
	"strconv"
)

// ArgType is the kind of value an option or token carries.
type ArgType int

const (
	Unknown ArgType = iota
	// Flag takes no values.
	Flag
	Integer
	Float
	String
)

func (t ArgType) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case Flag:
		return "flag"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return fmt.Sprintf("ArgType(%d)", int(t))
	}
}

func (t ArgType) valid() bool {
	return t >= Flag && t <= String
}

// Value is one typed value belonging to a Token. Only one of the payloads is
// meaningful, as given by Type.
type Value struct {
	_type ArgType
	i     int64
	f     float64
	s     string
}

func IntValue(i int64) Value {
	return Value{_type: Integer, i: i}
}

func FloatValue(f float64) Value {
	return Value{_type: Float, f: f}
}

func StringValue(s string) Value {
	return Value{_type: String, s: s}
}

func (me Value) Type() ArgType {
	return me._type
}

// Int returns the integer payload, or zero if the value isn't an Integer.
func (me Value) Int() int64 {
	return me.i
}

// Float returns the float payload, or zero if the value isn't a Float.
func (me Value) Float() float64 {
	return me.f
}

// Str returns the string payload, or "" if the value isn't a String.
func (me Value) Str() string {
	return me.s
}

func (me Value) String() string {
	switch me._type {
	case Integer:
		return strconv.FormatInt(me.i, 10)
	case Float:
		return strconv.FormatFloat(me.f, 'g', -1, 64)
	case String:
		return me.s
	default:
		return ""
	}
}

// Size charged to the Allocator for holding the value.
func (me Value) allocSize() int {
	return valueSize + len(me.s)
}
