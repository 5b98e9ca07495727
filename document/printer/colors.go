package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when output is coloured.
type ColorMode int

const (
	// ColorAuto colours output written directly to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colours output unconditionally.
	ColorAlways
	// ColorNever disables colour.
	ColorNever
)

func (m ColorMode) enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type paint func(a ...any) string

// palette maps each token class to a colouring function.
type palette struct {
	name   paint
	ty     paint
	str    paint
	number paint
	null   paint
	binary paint
	punct  paint
}

func plain(a ...any) string { return fmt.Sprint(a...) }

func forced(attrs ...color.Attribute) paint {
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintFunc()
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{plain, plain, plain, plain, plain, plain, plain}
	}
	return palette{
		name:   forced(color.FgCyan, color.Bold),
		ty:     forced(color.FgYellow),
		str:    forced(color.FgGreen),
		number: forced(color.FgMagenta),
		null:   forced(color.FgHiBlack),
		binary: forced(color.FgBlue),
		punct:  forced(color.FgHiBlack),
	}
}

func (p palette) value(v valueToken) string {
	switch v.class {
	case tokString:
		return p.str(v.text)
	case tokNumber:
		return p.number(v.text)
	case tokBinary:
		return p.binary(v.text)
	default:
		return p.null(v.text)
	}
}
