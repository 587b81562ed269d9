package vexflag

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// What a test expects of a token. Values are compared in their printed form.
type tok struct {
	Name   string
	Type   ArgType
	Values []string
}

func summarize(p *Parser) (ret []tok) {
	for _, t := range p.All() {
		ret = append(ret, tok{
			Name:   t.Name(),
			Type:   t.Type(),
			Values: t.Strings(),
		})
	}
	return
}

type parseCase struct {
	args     []string
	status   Status
	expected []tok
}

func noErrorCase(expected []tok, args ...string) parseCase {
	return parseCase{args: append([]string{"prog"}, args...), expected: expected}
}

func errorCase(status Status, args ...string) parseCase {
	return parseCase{args: append([]string{"prog"}, args...), status: status}
}

func (me parseCase) Run(t *testing.T, p *Parser) {
	err := p.Parse(me.args)
	assert.EqualValues(t, me.status, StatusOf(err), "%q: %v", me.args, err)
	assert.EqualValues(t, me.status, p.Status())
	if me.status != StatusOK {
		return
	}
	if diff := cmp.Diff(me.expected, summarize(p)); diff != "" {
		t.Errorf("%q: tokens mismatch (-want +got):\n%s", me.args, diff)
	}
}

func RunCases(t *testing.T, cases []parseCase, p *Parser) {
	for _, _case := range cases {
		_case.Run(t, p)
	}
}

func newTestParser(t *testing.T, descs ...Descriptor) *Parser {
	p, err := New(Info{
		Name:        "prog",
		Version:     "1.0",
		Description: "Does things.",
	})
	require.NoError(t, err)
	for _, d := range descs {
		require.NoError(t, p.Add(d))
	}
	t.Cleanup(func() {
		p.Close()
	})
	return p
}
