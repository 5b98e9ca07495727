package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/zdoc/pkg/types"
)

// treeNode writes n as one line followed by its children, indented:
//
//	server (Listener) "0.0.0.0" port=8080
//	  tls enabled=true
func (p *Printer) treeNode(w sink, n types.NodeRef, depth int) {
	if p.elided {
		return
	}
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	if !p.take() {
		w.WriteString(indent)
		w.WriteString(p.palette.punct("..."))
		w.WriteByte('\n')
		return
	}
	w.WriteString(indent)

	name := n.Name()
	if name == "" {
		name = "-"
	}
	w.WriteString(p.palette.name(name))
	if ty := n.Type(); ty != "" {
		w.WriteString(" ")
		w.WriteString(p.palette.punct("("))
		w.WriteString(p.palette.ty(ty))
		w.WriteString(p.palette.punct(")"))
	}
	for i, na := 0, n.NumArgs(); i < na; i++ {
		a := n.ArgAt(i)
		w.WriteByte(' ')
		if a.Name != "" {
			w.WriteString(a.Name)
			w.WriteString(p.palette.punct("="))
		}
		w.WriteString(p.palette.value(token(a.Value, p.opts.MaxValueBytes)))
	}
	w.WriteByte('\n')

	nc := n.NumChildren()
	if nc == 0 {
		return
	}
	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		childIndent := strings.Repeat(" ", (depth+1)*p.opts.IndentSize)
		w.WriteString(childIndent)
		w.WriteString(p.palette.punct(fmt.Sprintf("... (%d children)", nc)))
		w.WriteByte('\n')
		return
	}
	for i := 0; i < nc && !p.elided; i++ {
		p.treeNode(w, n.ChildAt(i), depth+1)
	}
}
