package vexflag

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/anacrolix/missinggo/v2"
	"github.com/huandu/xstrings"
)

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

// Placeholder for an option's values in the usage line.
func valueName(d *Descriptor) string {
	if d.Long == "" {
		return "VALUE"
	}
	return strings.ToUpper(xstrings.ToSnakeCase(d.Long))
}

// The pattern for an option in the usage line, such as "[-i/--input INPUT...]".
func usagePattern(d *Descriptor) string {
	var b strings.Builder
	b.WriteByte('[')
	if d.Short != 0 {
		b.WriteByte(shortPrefix)
		b.WriteByte(d.Short)
		if d.Long != "" {
			b.WriteByte('/')
		}
	}
	if d.Long != "" {
		b.WriteString(longPrefix)
		b.WriteString(d.Long)
	}
	if d.takesValues() {
		switch {
		case d.MaxCount == 0 && d.Long != "":
			fmt.Fprintf(&b, "=%s", valueName(d))
		case d.MaxCount == 0:
			b.WriteString(valueName(d))
		case d.MaxCount == 1:
			fmt.Fprintf(&b, " %s", valueName(d))
		default:
			fmt.Fprintf(&b, " %s...", valueName(d))
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (p *Parser) writeHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s", p.info.Name)
	for _, d := range p.reg.descs {
		fmt.Fprintf(w, " %s", usagePattern(d))
	}
	fmt.Fprintf(w, "\n\nDescription:\n%s\n", missinggo.Unchomp(p.info.Description))
	fmt.Fprintf(w, "Arguments:\n")
	tw := newUsageTabwriter(w)
	for _, d := range p.reg.descs {
		fmt.Fprint(tw, "  ")
		if d.Short != 0 {
			fmt.Fprintf(tw, "%c%c", shortPrefix, d.Short)
			if d.Long != "" {
				fmt.Fprint(tw, ", ")
			}
		}
		if d.Long != "" {
			fmt.Fprintf(tw, "%s%s", longPrefix, d.Long)
		}
		fmt.Fprintf(tw, "\t%s\n", d.Description)
	}
	tw.Flush()
}

// Help returns the help text for the registered options. It's built on first use and
// kept until another option is added.
func (p *Parser) Help() (string, error) {
	if p.closed {
		return "", errClosed
	}
	if p.helpValid {
		return p.help, nil
	}
	var b strings.Builder
	p.writeHelp(&b)
	if err := p.alloc(b.Len()); err != nil {
		return "", p.setStatus(err)
	}
	p.help = b.String()
	p.helpValid = true
	return p.help, nil
}

func (p *Parser) WriteHelp(w io.Writer) error {
	help, err := p.Help()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, help)
	return err
}

func (p *Parser) invalidateHelp() {
	if !p.helpValid {
		return
	}
	p.free(len(p.help))
	p.help = ""
	p.helpValid = false
}
