package console

import (
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/rbset"
	"github.com/npillmayer/rbset/rbtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Printer outputs the content of sets to a console with a fixed width font.
type Printer struct {
	Out       io.Writer
	LineWidth int            // line length in fixed width ‘en’s
	Context   *uax11.Context // context for calculating display widths
	colors    map[rbtree.Color]*color.Color
}

var setupGraphemes sync.Once

// NewPrinter creates a printer writing to out. If colored is false, node
// colors will not be shown.
func NewPrinter(out io.Writer, colored bool) *Printer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &Printer{
		Out:       out,
		LineWidth: 65,
		Context:   uax11.LatinContext,
		colors:    makeDefaultPalette(),
	}
	for _, c := range p.colors {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func makeDefaultPalette() map[rbtree.Color]*color.Color {
	palette := map[rbtree.Color]*color.Color{
		rbtree.Red:   color.New(color.FgRed, color.Bold),
		rbtree.Black: color.New(color.FgHiBlack),
	}
	return palette
}

// PrinterFromTerminal is a simple helper for creating a printer for stdout.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and switches on colors. The display width context is derived from the user
// environment.
func PrinterFromTerminal() *Printer {
	fd := int(os.Stdout.Fd())
	interactive := term.IsTerminal(fd)
	p := NewPrinter(os.Stdout, interactive)
	if interactive {
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 30 {
				p.LineWidth = w - 5
			} else if w > 10 {
				p.LineWidth = w
			} else {
				p.LineWidth = 10
			}
		}
	}
	p.Context = uax11.ContextFromEnvironment()
	tracer().P("console", "terminal").Infof("setting line length to %d en", p.LineWidth)
	return p
}

// List prints the elements of s in ascending order, arranged in columns.
// label renders an element.
func List[T any](p *Printer, s *rbset.Set[T], label func(*T) string) error {
	var labels []string
	var widths []int
	maxw := 0
	s.Ascend(func(obj *T) bool {
		l := label(obj)
		w := p.width(l)
		labels = append(labels, l)
		widths = append(widths, w)
		maxw = max(maxw, w)
		return true
	})
	if len(labels) == 0 {
		return nil
	}
	cols := max(1, p.LineWidth/(maxw+2))
	var b strings.Builder
	for i, l := range labels {
		b.WriteString(l)
		if (i+1)%cols == 0 || i == len(labels)-1 {
			b.WriteByte('\n')
		} else {
			b.WriteString(strings.Repeat(" ", maxw-widths[i]+2))
		}
	}
	_, err := io.WriteString(p.Out, b.String())
	return err
}

// Tree prints the tree underlying s sideways, the root at the left margin and
// larger elements on top. Red nodes are highlighted if the printer is colored.
func Tree[T any](p *Printer, s *rbset.Set[T], label func(*T) string) error {
	var err error
	var walk func(n *rbset.Node[T], depth int)
	walk = func(n *rbset.Node[T], depth int) {
		if n == nil || err != nil {
			return
		}
		walk(n.Right(), depth+1)
		if err == nil {
			_, err = io.WriteString(p.Out, strings.Repeat("    ", depth))
		}
		if err == nil {
			_, err = p.colors[n.Color()].Fprint(p.Out, label(n.Owner()))
		}
		if err == nil {
			_, err = io.WriteString(p.Out, "\n")
		}
		walk(n.Left(), depth+1)
	}
	walk(s.Root(), 0)
	return err
}

// width returns the display width of s in ‘en’s. uax11 classifies ASCII
// digits as possible keycap emoji, so ASCII graphemes are counted as narrow
// before asking uax11.
func (p *Printer) width(s string) int {
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if len(g) == 1 && g[0] < utf8.RuneSelf {
			w++
			continue
		}
		w += uax11.Width([]byte(g), p.Context)
	}
	return w
}
