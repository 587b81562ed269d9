package vexflag

import (
	"github.com/dustin/go-humanize"
)

// A nice builtin type for human readable byte quantities. For example 100GB. See
// https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

func (me *Bytes) Marshal(s string) (err error) {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return
	}
	*me = Bytes(ui64)
	return
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}

// Bytes interprets the value as a byte quantity. Integers are taken as a count of
// bytes, and strings are parsed with units, such as "1.5MiB".
func (me Value) Bytes() (b Bytes, err error) {
	switch me._type {
	case Integer:
		if me.i < 0 {
			return 0, invalidValue("negative byte quantity: %d", me.i)
		}
		return Bytes(me.i), nil
	case String:
		err = b.Marshal(me.s)
		if err != nil {
			err = invalidValue("error parsing %q: %s", me.s, err)
		}
		return
	default:
		return 0, invalidValue("can't convert %s value to bytes", me._type)
	}
}
