// Command vexdump prints the tokens vexflag finds in its own arguments.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/anacrolix/vexflag"
)

var descriptors = []vexflag.Descriptor{
	{Short: 'i', Long: "input", Type: vexflag.String, MaxCount: -1, Description: "Input files"},
	{Short: 'n', Long: "count", Type: vexflag.Integer, MaxCount: 1, Description: "Number of iterations"},
	{Short: 's', Long: "scale", Type: vexflag.Float, MaxCount: 0, Description: "Scale factor"},
	{Short: 'q', Long: "quiet", Type: vexflag.Flag, Description: "Only print the token count"},
}

func main() {
	log.SetFlags(0)
	p, err := vexflag.New(vexflag.Info{
		Name:        "vexdump",
		Version:     "0.1.0",
		Description: "Prints the tokens found in its arguments.",
	})
	if err != nil {
		log.Fatalf("creating parser: %s", err)
	}
	defer p.Close()
	for _, d := range descriptors {
		if err := p.Add(d); err != nil {
			log.Fatalf("adding %+v: %s", d, err)
		}
	}
	vexflag.Parse(p)
	if p.Found("quiet") {
		fmt.Println(p.Len())
		return
	}
	dump(p)
}

func dump(p *vexflag.Parser) {
	name := color.New(color.FgCyan, color.Bold).SprintFunc()
	_type := color.New(color.FgYellow).SprintFunc()
	for i, t := range p.All() {
		label := t.Name()
		if !t.IsOption() {
			label = "(bare)"
		}
		fmt.Fprintf(os.Stdout, "%d\t%s\t%s", i, name(label), _type(t.Type()))
		for _, v := range t.Values() {
			fmt.Fprintf(os.Stdout, "\t%q", v.String())
		}
		fmt.Fprintln(os.Stdout)
	}
}
