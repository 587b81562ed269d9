package vexflag

import (
	"unsafe"
)

// Allocator is charged for every object a Parser owns, and credited when the object
// is released. Returning an error from Alloc aborts the operation that needed the
// memory with StatusAllocationFailure.
//
// The Go runtime does the actual allocating; an Allocator lets the caller bound or
// audit what a Parser holds on to.
type Allocator interface {
	Alloc(size int) error
	Free(size int)
}

type nopAllocator struct{}

func (nopAllocator) Alloc(int) error { return nil }
func (nopAllocator) Free(int)        {}

var (
	descriptorSize = int(unsafe.Sizeof(Descriptor{}))
	tokenSize      = int(unsafe.Sizeof(Token{}))
	valueSize      = int(unsafe.Sizeof(Value{}))
)

func (p *Parser) alloc(size int) error {
	if err := p.allocator.Alloc(size); err != nil {
		return allocationFailure()
	}
	return nil
}

func (p *Parser) free(size int) {
	p.allocator.Free(size)
}
