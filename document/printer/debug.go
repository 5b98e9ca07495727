package printer

import (
	"io"
	"strconv"

	"github.com/joshuapare/zdoc/pkg/types"
)

type sink interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
}

// debugEntry writes one entry. withName prefixes named entries with
// "name = ", which is only done at the top level; inside maps the name is
// already the key.
func (p *Printer) debugEntry(w sink, e types.Entry, withName bool, depth int) {
	if withName {
		if name := e.Name(); name != "" {
			w.WriteString(p.palette.name(name))
			w.WriteString(" = ")
		}
	}
	if e.IsArg {
		w.WriteString(p.palette.value(token(e.Arg.Value, -1)))
		return
	}

	if !p.take() {
		w.WriteString(p.palette.punct("..."))
		return
	}
	child := e.Child
	class := types.ClassifyNode(child)
	ty := child.Type()
	terminator := ""
	if ty != "" {
		switch class {
		case types.StructVariant, types.MixedVariant, types.SeqVariant:
			w.WriteString(p.palette.ty(ty))
			w.WriteByte(' ')
		case types.ValueVariant:
			w.WriteString(p.palette.ty(ty))
			w.WriteString(p.palette.punct("("))
			terminator = p.palette.punct(")")
		case types.UnitVariant:
			w.WriteString(p.palette.ty(ty))
		}
	}
	p.debugEntries(w, class, child, depth+1)
	w.WriteString(terminator)
}

func (p *Printer) debugEntries(w sink, class types.Classify, n types.NodeRef, depth int) {
	total := types.NumEntries(n)
	if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth && total > 0 {
		w.WriteString(p.palette.punct("..."))
		return
	}
	switch class {
	case types.Struct, types.StructVariant, types.Mixed, types.MixedVariant:
		w.WriteString(p.palette.punct("{"))
		for i := 0; i < total; i++ {
			if i > 0 {
				w.WriteString(p.palette.punct(", "))
			}
			e := types.EntryAt(n, i)
			w.WriteString(p.palette.name(strconv.Quote(e.Name())))
			w.WriteString(p.palette.punct(": "))
			p.debugEntry(w, e, false, depth)
		}
		w.WriteString(p.palette.punct("}"))
	case types.Seq, types.SeqVariant:
		w.WriteString(p.palette.punct("["))
		for i := 0; i < total; i++ {
			if i > 0 {
				w.WriteString(p.palette.punct(", "))
			}
			p.debugEntry(w, types.EntryAt(n, i), false, depth)
		}
		w.WriteString(p.palette.punct("]"))
	case types.ValueNode, types.ValueVariant:
		if total == 0 {
			w.WriteString(p.palette.punct("()"))
			return
		}
		p.debugEntry(w, types.EntryAt(n, 0), false, depth)
	case types.Unit:
		w.WriteString(p.palette.punct("()"))
	case types.UnitVariant:
		// The type name was already written.
	}
}
