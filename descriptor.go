package vexflag

import (
	"strings"
)

// Descriptor describes one option that can be recognized on the command line.
type Descriptor struct {
	// Matched by --Long. Optional if Short is set.
	Long string
	// Matched by -Short. Must be an ASCII letter, or 0 if Long is set.
	Short byte
	Type  ArgType
	// The most bare values grouped under one occurrence of the option. Negative is
	// unbounded. Zero allows only an attached or "=" value.
	MaxCount    int
	Description string
}

func (d *Descriptor) allocSize() int {
	return descriptorSize + len(d.Long) + len(d.Description)
}

func (d *Descriptor) takesValues() bool {
	return d.Type != Flag
}

// Reports whether a token opened by d holding n values may group another bare value.
func (d *Descriptor) roomFor(n int) bool {
	return d.takesValues() && (d.MaxCount < 0 || n < d.MaxCount)
}

// Like roomFor, but an empty token always takes its attached value.
func (d *Descriptor) roomForAttached(n int) bool {
	return d.takesValues() && (n == 0 || d.roomFor(n))
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Descriptors are held by pointer so tokens can refer to them across appends.
type registry struct {
	descs   []*Descriptor
	byShort map[byte]*Descriptor
	byLong  map[string]*Descriptor
}

func validateDescriptor(d Descriptor) error {
	if d.Short != 0 && !isLetter(d.Short) {
		return invalidValue("invalid short name: %q", d.Short)
	}
	if d.Short == 0 && d.Long == "" {
		return invalidValue("no argument name given")
	}
	if strings.HasPrefix(d.Long, "-") || strings.ContainsRune(d.Long, '=') {
		return invalidValue("invalid long name: %q", d.Long)
	}
	if !d.Type.valid() {
		return invalidValue("invalid argument type: %s", d.Type)
	}
	return nil
}

func (r *registry) checkDuplicate(d Descriptor) error {
	if d.Short != 0 {
		if _, ok := r.byShort[d.Short]; ok {
			return invalidValue("duplicate argument: -%c", d.Short)
		}
	}
	if d.Long != "" {
		if _, ok := r.byLong[d.Long]; ok {
			return invalidValue("duplicate argument: --%s", d.Long)
		}
	}
	return nil
}

func (r *registry) add(d *Descriptor) {
	if r.byShort == nil {
		r.byShort = make(map[byte]*Descriptor)
		r.byLong = make(map[string]*Descriptor)
	}
	r.descs = append(r.descs, d)
	if d.Short != 0 {
		r.byShort[d.Short] = d
	}
	if d.Long != "" {
		r.byLong[d.Long] = d
	}
}

func (r *registry) short(c byte) *Descriptor {
	return r.byShort[c]
}

func (r *registry) long(name string) *Descriptor {
	return r.byLong[name]
}

// Single characters are short names, anything longer is a long name.
func (r *registry) lookup(name string) *Descriptor {
	switch len(name) {
	case 0:
		return nil
	case 1:
		return r.short(name[0])
	default:
		return r.long(name)
	}
}

func (r *registry) allocSize() (n int) {
	for _, d := range r.descs {
		n += d.allocSize()
	}
	return
}

func (r *registry) reset() {
	*r = registry{}
}

// Add registers an option. It fails with StatusInvalidValue if the descriptor is
// malformed or either of its names is already taken, in which case nothing is
// registered.
func (p *Parser) Add(d Descriptor) error {
	if p.closed {
		return p.setStatus(errClosed)
	}
	return p.setStatus(p.add(d))
}

func (p *Parser) add(d Descriptor) error {
	if err := validateDescriptor(d); err != nil {
		return err
	}
	if err := p.reg.checkDuplicate(d); err != nil {
		return err
	}
	owned := &Descriptor{
		Long:        strings.Clone(d.Long),
		Short:       d.Short,
		Type:        d.Type,
		MaxCount:    d.MaxCount,
		Description: strings.Clone(d.Description),
	}
	if err := p.alloc(owned.allocSize()); err != nil {
		return err
	}
	p.reg.add(owned)
	p.invalidateHelp()
	return nil
}

// Descriptors returns the registered options in registration order, starting with
// the default help and version flags.
func (p *Parser) Descriptors() (ret []Descriptor) {
	for _, d := range p.reg.descs {
		ret = append(ret, *d)
	}
	return
}

// Lookup finds a registered option by short name (a single character) or long name.
func (p *Parser) Lookup(name string) (Descriptor, bool) {
	d := p.reg.lookup(name)
	if d == nil {
		return Descriptor{}, false
	}
	return *d, true
}
