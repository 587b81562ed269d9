package vexflag

import (
	"strings"

	"github.com/bradfitz/iter"
	"github.com/dustin/go-humanize"
)

const (
	shortPrefix = '-'
	longPrefix  = "--"
	terminator  = "--"
)

// State of a single pass over the arguments. It's discarded when the pass ends.
type scan struct {
	p *Parser
	// Cleared by the terminator.
	parseOptions bool
	// Index of the token bare values may be grouped into, or -1.
	target int
	// The option that opened the target. nil if the target is a bare value.
	targetDesc *Descriptor
}

func (s *scan) resetTarget() {
	s.target = -1
	s.targetDesc = nil
}

func (s *scan) setTarget(i int, d *Descriptor) {
	s.target = i
	s.targetDesc = d
}

// Parse tokenizes args, where args[0] is the program name. Results from any earlier
// Parse are discarded. Parsing stops at the first bad argument; tokens found before
// it stay in the buffer.
func (p *Parser) Parse(args []string) error {
	if p.closed {
		return p.setStatus(errClosed)
	}
	p.releaseTokens()
	s := scan{p: p, parseOptions: true}
	s.resetTarget()
	return p.setStatus(s.run(args))
}

func (s *scan) run(args []string) error {
	if len(args) == 0 {
		return nil
	}
	for _, a := range args[1:] {
		if err := s.parseAny(a); err != nil {
			return err
		}
	}
	return nil
}

func (s *scan) parseAny(a string) error {
	if !s.parseOptions {
		return s.parseBare(a)
	}
	if a == terminator {
		s.parseOptions = false
		return nil
	}
	if strings.HasPrefix(a, longPrefix) {
		s.resetTarget()
		return s.parseLong(a[len(longPrefix):])
	}
	if len(a) > 1 && a[0] == shortPrefix {
		s.resetTarget()
		return s.parseShorts(a[1:])
	}
	return s.parseBare(a)
}

// Handles "name" and "name=value", with the leading "--" removed.
func (s *scan) parseLong(arg string) error {
	name, value, explicitValue := strings.Cut(arg, "=")
	d := s.p.reg.long(name)
	if d == nil {
		return unknownArgument("unknown option: %s%s", longPrefix, name)
	}
	i, err := s.openOption(d)
	if err != nil {
		return err
	}
	if explicitValue && d.takesValues() {
		return s.p.appendValue(i, coerce(value, d.Type))
	}
	return nil
}

// Handles a cluster of short options with the leading '-' removed. An unknown
// character is the start of a value attached to the last option opened in the
// cluster, if that option can take one.
func (s *scan) parseShorts(cluster string) error {
	for i := range iter.N(len(cluster)) {
		c := cluster[i]
		if d := s.p.reg.short(c); d != nil {
			if _, err := s.openOption(d); err != nil {
				return err
			}
			continue
		}
		if s.targetDesc != nil && s.targetDesc.roomForAttached(s.p.tokens[s.target].Len()) {
			return s.p.appendValue(s.target, coerce(cluster[i:], s.targetDesc.Type))
		}
		return unknownArgument("unknown option: %c%c", shortPrefix, c)
	}
	return nil
}

func (s *scan) openOption(d *Descriptor) (int, error) {
	i, err := s.p.appendToken(optionToken(d))
	if err != nil {
		return -1, err
	}
	s.setTarget(i, d)
	return i, nil
}

func (s *scan) parseBare(a string) error {
	_type := inferType(a)
	if s.parseOptions && s.target >= 0 {
		t := &s.p.tokens[s.target]
		if d := s.targetDesc; d != nil {
			if d.roomFor(t.Len()) {
				if t.Type() != _type {
					return invalidValue(
						"%s value %q for %s: expected %s as %s value",
						_type, a, t.Name(), t.Type(), humanize.Ordinal(t.Len()+1))
				}
				return s.p.appendValue(s.target, coerce(a, _type))
			}
		} else if t.Type() == _type {
			return s.p.appendValue(s.target, coerce(a, _type))
		}
	}
	i, err := s.p.appendToken(Token{_type: _type})
	if err != nil {
		return err
	}
	if err := s.p.appendValue(i, coerce(a, _type)); err != nil {
		return err
	}
	s.setTarget(i, nil)
	return nil
}
