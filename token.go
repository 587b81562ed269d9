package vexflag

import (
	"iter"
	"slices"
)

// Token is one occurrence of an option, or a run of bare values that no option
// claimed, found by a single Parse.
type Token struct {
	short  byte
	long   string
	_type  ArgType
	values []Value
	// nil for bare values.
	desc *Descriptor
}

func optionToken(d *Descriptor) Token {
	return Token{
		short: d.Short,
		long:  d.Long,
		_type: d.Type,
		desc:  d,
	}
}

func (me *Token) Short() byte {
	return me.short
}

func (me *Token) Long() string {
	return me.long
}

// Name is the option as it would be written on the command line, preferring the
// long form. It's empty for bare values.
func (me *Token) Name() string {
	switch {
	case me.long != "":
		return longPrefix + me.long
	case me.short != 0:
		return string([]byte{shortPrefix, me.short})
	default:
		return ""
	}
}

func (me *Token) Type() ArgType {
	return me._type
}

// IsOption reports whether the token was opened by a registered option.
func (me *Token) IsOption() bool {
	return me.desc != nil
}

// Descriptor returns the option that opened the token.
func (me *Token) Descriptor() (Descriptor, bool) {
	if me.desc == nil {
		return Descriptor{}, false
	}
	return *me.desc, true
}

func (me *Token) Len() int {
	return len(me.values)
}

func (me *Token) Value(i int) (Value, bool) {
	if i < 0 || i >= len(me.values) {
		return Value{}, false
	}
	return me.values[i], true
}

func (me *Token) Values() []Value {
	return slices.Clone(me.values)
}

func (me *Token) Ints() (ret []int64) {
	for _, v := range me.values {
		ret = append(ret, v.Int())
	}
	return
}

func (me *Token) Floats() (ret []float64) {
	for _, v := range me.values {
		ret = append(ret, v.Float())
	}
	return
}

func (me *Token) Strings() (ret []string) {
	for _, v := range me.values {
		ret = append(ret, v.Str())
	}
	return
}

func (me *Token) matches(name string) bool {
	switch len(name) {
	case 0:
		return false
	case 1:
		return me.short != 0 && me.short == name[0]
	default:
		return me.long != "" && me.long == name
	}
}

func (me *Token) allocSize() (n int) {
	n = tokenSize + len(me.long)
	for _, v := range me.values {
		n += v.allocSize()
	}
	return
}

// The values of a token all share its type.
func (me *Token) checkValue(v Value) error {
	if me._type == Flag {
		return invalidValue("%s takes no value", me.Name())
	}
	if v.Type() != me._type {
		return invalidValue("%s value %q where %s expected", v.Type(), v.String(), me._type)
	}
	return nil
}

// Appends v to the token at index i in the buffer, charging the allocator.
func (p *Parser) appendValue(i int, v Value) error {
	t := &p.tokens[i]
	if err := t.checkValue(v); err != nil {
		return err
	}
	if err := p.alloc(v.allocSize()); err != nil {
		return err
	}
	t.values = append(t.values, v)
	return nil
}

// Appends t to the buffer and returns its index.
func (p *Parser) appendToken(t Token) (int, error) {
	if err := p.alloc(t.allocSize()); err != nil {
		return -1, err
	}
	p.tokens = append(p.tokens, t)
	return len(p.tokens) - 1, nil
}

func (p *Parser) releaseTokens() {
	for i := range p.tokens {
		p.free(p.tokens[i].allocSize())
	}
	p.tokens = nil
}

// Len returns the number of tokens found by the last Parse.
func (p *Parser) Len() int {
	return len(p.tokens)
}

// Token returns the ith token, or false if there isn't one.
func (p *Parser) Token(i int) (Token, bool) {
	if i < 0 || i >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[i], true
}

func (p *Parser) Tokens() []Token {
	return slices.Clone(p.tokens)
}

// All iterates over the tokens in the order they were found.
func (p *Parser) All() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, t := range p.tokens {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Backward iterates over the tokens from last to first.
func (p *Parser) Backward() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i := len(p.tokens) - 1; i >= 0; i-- {
			if !yield(i, p.tokens[i]) {
				return
			}
		}
	}
}

// Found reports whether any token was for the named option. A single character is a
// short name, anything longer is a long name.
func (p *Parser) Found(name string) bool {
	for i := range p.tokens {
		if p.tokens[i].matches(name) {
			return true
		}
	}
	return false
}
