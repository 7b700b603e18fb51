// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package ic

import (
	"fmt"
	"strings"

	"github.com/icalc/ic/term"
)

// varKind distinguishes the three things a synthesized name can label:
// a lambda binder, or one of a duplicator's two projection endpoints.
type varKind uint8

const (
	kindVar varKind = iota
	kindDp0
	kindDp1
)

type varKey struct {
	loc  uint32
	kind varKind
}

// printer accumulates variable names and duplicator registrations
// while walking a term once, then renders it. Grounded on
// original_source/src/show.c's VarNameTable/ColTable split: names are
// assigned in one traversal so every occurrence of a binder or
// duplicator endpoint agrees on its label, then the surviving
// duplicators are rendered as a preamble before the term body.
type printer struct {
	c        *Context
	names    map[varKey]string
	varSeq   int
	dp0Seq   int
	dp1Seq   int
	colLocs  []uint32
	colLabs  []uint8
	seenCol  map[uint32]bool
	visiting map[uint32]bool
}

func newPrinter(c *Context) *printer {
	return &printer{
		c:        c,
		names:    make(map[varKey]string),
		seenCol:  make(map[uint32]bool),
		visiting: make(map[uint32]bool),
	}
}

func (p *printer) nameFor(key varKey) string {
	if n, ok := p.names[key]; ok {
		return n
	}
	var n string
	switch key.kind {
	case kindDp0:
		n = fmt.Sprintf("a%d", p.dp0Seq)
		p.dp0Seq++
	case kindDp1:
		n = fmt.Sprintf("b%d", p.dp1Seq)
		p.dp1Seq++
	default:
		n = fmt.Sprintf("x%d", p.varSeq)
		p.varSeq++
	}
	p.names[key] = n
	return n
}

// assignIDs is the first pass: walk the term, naming every binder and
// every still-standing duplicator endpoint it reaches, and recording
// each distinct duplicator cell exactly once in traversal order.
func (p *printer) assignIDs(t term.Term) {
	tag := term.TagOf(t)
	loc := term.Val(t)

	// A duplicated closure whose body is exactly its own bound variable
	// can leave an unentered copy's body chasing back, through its
	// installed substitution, to a location already on this very path.
	// Stop rather than recurse forever.
	if p.visiting[loc] {
		return
	}
	p.visiting[loc] = true
	defer delete(p.visiting, loc)

	switch {
	case tag == term.Var:
		cell := p.c.get(loc)
		if term.IsSub(cell) {
			p.assignIDs(term.ClearSub(cell))
			return
		}
		p.nameFor(varKey{loc, kindVar})

	case term.IsDup(t):
		cell := p.c.get(loc)
		if term.IsSub(cell) {
			p.assignIDs(term.ClearSub(cell))
			return
		}
		if !p.seenCol[loc] {
			p.seenCol[loc] = true
			p.colLocs = append(p.colLocs, loc)
			p.colLabs = append(p.colLabs, term.Label(t))
			p.assignIDs(cell)
		}

	case tag == term.Lam:
		p.nameFor(varKey{loc, kindVar})
		p.assignIDs(p.c.get(loc))

	case tag == term.App:
		p.assignIDs(p.c.get(loc + 0))
		p.assignIDs(p.c.get(loc + 1))

	case term.IsSup(t):
		p.assignIDs(p.c.get(loc + 0))
		p.assignIDs(p.c.get(loc + 1))

	case tag == term.Suc:
		p.assignIDs(p.c.get(loc))

	case tag == term.Swi:
		p.assignIDs(p.c.get(loc + 0))
		p.assignIDs(p.c.get(loc + 1))
		p.assignIDs(p.c.get(loc + 2))

	case tag == term.Get:
		p.assignIDs(p.c.get(loc + 0))
		p.assignIDs(p.c.get(loc + 1))

	case tag == term.Rwt:
		p.assignIDs(p.c.get(loc + 0))
		p.assignIDs(p.c.get(loc + 1))
	}
}

func (p *printer) write(buf *strings.Builder, t term.Term) {
	tag := term.TagOf(t)
	loc := term.Val(t)

	// Keyed on the whole term word rather than loc: a lambda and its own
	// bound variable share a location without forming a cycle.
	if p.visiting[uint32(t)] {
		buf.WriteString("‥")
		return
	}
	p.visiting[uint32(t)] = true
	defer delete(p.visiting, uint32(t))

	switch {
	case tag == term.Var:
		cell := p.c.get(loc)
		if term.IsSub(cell) {
			p.write(buf, term.ClearSub(cell))
			return
		}
		buf.WriteString(p.nameFor(varKey{loc, kindVar}))

	case term.IsDp0(t):
		p.writeDupEndpoint(buf, loc, kindDp0)

	case term.IsDp1(t):
		p.writeDupEndpoint(buf, loc, kindDp1)

	case tag == term.Lam:
		fmt.Fprintf(buf, "λ%s.", p.nameFor(varKey{loc, kindVar}))
		p.write(buf, p.c.get(loc))

	case tag == term.App:
		buf.WriteByte('(')
		p.write(buf, p.c.get(loc+0))
		buf.WriteByte(' ')
		p.write(buf, p.c.get(loc+1))
		buf.WriteByte(')')

	case term.IsSup(t):
		fmt.Fprintf(buf, "&%d{", term.Label(t))
		p.write(buf, p.c.get(loc+0))
		buf.WriteByte(',')
		p.write(buf, p.c.get(loc+1))
		buf.WriteByte('}')

	case term.IsEra(t):
		buf.WriteRune('⋆')

	case tag == term.Num:
		fmt.Fprintf(buf, "%d", term.Val(t))

	case tag == term.Suc:
		buf.WriteByte('+')
		p.write(buf, p.c.get(loc))

	case tag == term.Swi:
		buf.WriteString("~")
		p.write(buf, p.c.get(loc+0))
		buf.WriteString("{0:")
		p.write(buf, p.c.get(loc+1))
		buf.WriteString(";+:")
		p.write(buf, p.c.get(loc+2))
		buf.WriteByte('}')

	case tag == term.Get:
		buf.WriteString("![")
		p.write(buf, p.c.get(loc+0))
		buf.WriteString("] = ")
		p.write(buf, p.c.get(loc+1))

	case tag == term.Rwt:
		buf.WriteByte('%')
		p.write(buf, p.c.get(loc+0))
		buf.WriteString("; ")
		p.write(buf, p.c.get(loc+1))

	default:
		buf.WriteString("<?>")
	}
}

func (p *printer) writeDupEndpoint(buf *strings.Builder, loc uint32, kind varKind) {
	cell := p.c.get(loc)
	if term.IsSub(cell) {
		p.write(buf, term.ClearSub(cell))
		return
	}
	buf.WriteString(p.nameFor(varKey{loc, kind}))
}

func (p *printer) writePreamble(buf *strings.Builder) {
	for i, loc := range p.colLocs {
		a := p.nameFor(varKey{loc, kindDp0})
		b := p.nameFor(varKey{loc, kindDp1})
		fmt.Fprintf(buf, "! &%d{%s,%s} = ", p.colLabs[i], a, b)
		p.write(buf, p.c.get(loc))
		buf.WriteString(";\n")
	}
}

// Show renders t in the fixed readable syntax: surviving duplicators
// first, as a preamble, then the term itself.
func (c *Context) Show(t term.Term) string {
	p := newPrinter(c)
	p.assignIDs(t)
	var buf strings.Builder
	p.writePreamble(&buf)
	p.write(&buf, t)
	return buf.String()
}
