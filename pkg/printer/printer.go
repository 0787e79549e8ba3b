// Package printer renders the level-order walk of a B+ tree as text, one
// line per level. Internal nodes are shown as (k1 k2 ...), leaves as
// [k1 k2 ...].
package printer

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"go-bptree/pkg/bptree"

	"github.com/fatih/color"
	"golang.org/x/exp/constraints"
)

// Options controls the rendering.
type Options struct {
	// Color enables ANSI colors: levels yellow, internal nodes cyan,
	// leaves green.
	Color bool

	// IDs appends the arena id of every node, e.g. [1 2]#4.
	IDs bool
}

type Printer[K constraints.Ordered] struct {
	w        io.Writer
	opts     Options
	level    *color.Color
	internal *color.Color
	leaf     *color.Color
}

func New[K constraints.Ordered](w io.Writer, opts Options) *Printer[K] {
	p := &Printer[K]{
		w:        w,
		opts:     opts,
		level:    color.New(color.FgYellow),
		internal: color.New(color.FgCyan, color.Bold),
		leaf:     color.New(color.FgGreen),
	}

	for _, c := range []*color.Color{p.level, p.internal, p.leaf} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes every level of nodes followed by an empty line.
func (p *Printer[K]) Print(nodes iter.Seq2[int, bptree.NodeSummary[K]]) error {
	line := strings.Builder{}
	current := -1

	flush := func() error {
		if current < 0 {
			return nil
		}
		line.WriteByte('\n')
		_, err := io.WriteString(p.w, line.String())
		line.Reset()
		return err
	}

	for depth, s := range nodes {
		if depth != current {
			if err := flush(); err != nil {
				return err
			}
			current = depth
			line.WriteString(p.level.Sprintf("L%d:", depth))
		}
		line.WriteByte(' ')
		line.WriteString(p.node(s))
	}

	if err := flush(); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}

func (p *Printer[K]) node(s bptree.NodeSummary[K]) string {
	keys := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		keys[i] = fmt.Sprint(k)
	}

	var text string
	if s.Leaf {
		text = p.leaf.Sprintf("[%s]", strings.Join(keys, " "))
	} else {
		text = p.internal.Sprintf("(%s)", strings.Join(keys, " "))
	}

	if p.opts.IDs {
		text += fmt.Sprintf("#%d", s.ID)
	}
	return text
}

// Sprint renders nodes without colors.
func Sprint[K constraints.Ordered](nodes iter.Seq2[int, bptree.NodeSummary[K]]) string {
	buf := strings.Builder{}
	_ = New[K](&buf, Options{}).Print(nodes)
	return buf.String()
}
