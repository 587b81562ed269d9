package vexflag

type parseOpt func(p *Parser)

// Charge everything the Parser owns to a. The default allocator accepts everything.
func UseAllocator(a Allocator) parseOpt {
	return func(p *Parser) {
		p.allocator = a
	}
}
