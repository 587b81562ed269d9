package vexflag

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Info identifies the program in help and version text. All fields are required.
type Info struct {
	Name        string
	Version     string
	Description string
}

func (me Info) allocSize() int {
	return len(me.Name) + len(me.Version) + len(me.Description)
}

// Parser holds registered options and the tokens found by the last Parse. A Parser
// must not be used from multiple goroutines at once, but separate Parsers are
// independent.
type Parser struct {
	info      Info
	allocator Allocator

	reg    registry
	tokens []Token

	help      string
	helpValid bool

	status    Status
	statusMsg string
	closed    bool
}

var defaultDescriptors = []Descriptor{
	{
		Long:        "help",
		Short:       'h',
		Type:        Flag,
		Description: "Print this help message",
	},
	{
		Long:        "version",
		Short:       'v',
		Type:        Flag,
		Description: "Print the version string",
	},
}

// New returns a Parser with the default -h/--help and -v/--version flags registered.
func New(info Info, opts ...parseOpt) (p *Parser, err error) {
	p = &Parser{
		allocator: nopAllocator{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if info.Name == "" || info.Version == "" || info.Description == "" {
		return nil, allocationFailure()
	}
	if err = p.alloc(info.allocSize()); err != nil {
		return nil, err
	}
	p.info = Info{
		Name:        strings.Clone(info.Name),
		Version:     strings.Clone(info.Version),
		Description: strings.Clone(info.Description),
	}
	for _, d := range defaultDescriptors {
		if err = p.add(d); err != nil {
			p.Close()
			return nil, err
		}
	}
	return
}

// Replaces the live status with the one carried by err, and returns err.
func (p *Parser) setStatus(err error) error {
	p.status = StatusOf(err)
	p.statusMsg = ""
	if err != nil && p.status != StatusAllocationFailure {
		p.statusMsg = err.Error()
	}
	return err
}

// Status is the result of the last Add, Parse or Close.
func (p *Parser) Status() Status {
	return p.status
}

// StatusMessage is a single line describing the last failure. It's empty after a
// success or an allocation failure.
func (p *Parser) StatusMessage() string {
	return p.statusMsg
}

func (p *Parser) Name() string {
	return p.info.Name
}

func (p *Parser) Description() string {
	return p.info.Description
}

// Version returns the program name followed by its version.
func (p *Parser) Version() string {
	return fmt.Sprintf("%s %s", p.info.Name, p.info.Version)
}

// Close releases everything the Parser holds. The Parser can't be used afterwards,
// and closing it again is an error.
func (p *Parser) Close() error {
	if p.closed {
		return p.setStatus(errClosed)
	}
	p.releaseTokens()
	p.invalidateHelp()
	p.free(p.reg.allocSize())
	p.reg.reset()
	p.free(p.info.allocSize())
	p.info = Info{}
	p.closed = true
	return p.setStatus(nil)
}

// Defaults returns ErrDefaultHelp or ErrDefaultVersion if the last Parse found the
// default help or version flag, in that order of preference.
func (p *Parser) Defaults() error {
	if p.Found("help") {
		return ErrDefaultHelp
	}
	if p.Found("version") {
		return ErrDefaultVersion
	}
	return nil
}

// Parse parses os.Args, printing help or version text and exiting if the default
// flags are given. Errors are printed and cause the program to exit.
func Parse(p *Parser) {
	err := p.Parse(os.Args)
	if err == nil {
		err = p.Defaults()
	}
	switch err {
	case nil:
		return
	case ErrDefaultHelp:
		err = p.WriteHelp(os.Stdout)
		if err == nil {
			os.Exit(0)
		}
	case ErrDefaultVersion:
		fmt.Fprintln(os.Stdout, p.Version())
		os.Exit(0)
	}
	err = errors.Wrap(err, programName(p))
	fmt.Fprintf(os.Stderr, "%s\n", err)
	if isUserError(err) {
		os.Exit(2)
	}
	os.Exit(1)
}

func programName(p *Parser) string {
	if p.Name() != "" {
		return p.Name()
	}
	return filepath.Base(os.Args[0])
}
