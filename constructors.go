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

import "github.com/icalc/ic/term"

// Lam builds a lambda. The binder slot is allocated first so that body
// can reference the bound variable passed to it; this mirrors how the
// reference parser wires a let-binding's name to a VAR pointing at the
// not-yet-filled binder slot before parsing the body that uses it
// (original_source/src/parse/term/let.c).
func (c *Context) Lam(body func(x term.Term) term.Term) (term.Term, error) {
	loc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	x := term.Make(term.Var, loc)
	c.set(loc, body(x))
	return term.Make(term.Lam, loc), nil
}

// App builds an application (fn arg).
func (c *Context) App(fn, arg term.Term) (term.Term, error) {
	loc, err := c.Alloc(2)
	if err != nil {
		return 0, err
	}
	c.set(loc+0, fn)
	c.set(loc+1, arg)
	return term.Make(term.App, loc), nil
}

// Sup builds a labeled superposition &L{a,b}.
func (c *Context) Sup(lab uint8, a, b term.Term) (term.Term, error) {
	loc, err := c.Alloc(2)
	if err != nil {
		return 0, err
	}
	c.set(loc+0, a)
	c.set(loc+1, b)
	return term.Make(term.SupTag(lab), loc), nil
}

// Dup builds a duplicator cell over val and hands the two projection
// endpoints to body, which assembles the term that uses them:
// !&L{x0,x1} = val; body(x0,x1).
func (c *Context) Dup(lab uint8, val term.Term, body func(x0, x1 term.Term) term.Term) (term.Term, error) {
	loc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	c.set(loc, val)
	x0 := term.Make(term.Dp0Tag(lab), loc)
	x1 := term.Make(term.Dp1Tag(lab), loc)
	return body(x0, x1), nil
}

// Era returns the erasure constant. It never allocates.
func (c *Context) Era() term.Term {
	return term.Make(term.Era, 0)
}

// Num packs an unsigned literal directly into the value field; it
// never allocates, since NUM has no children.
func (c *Context) Num(k uint32) term.Term {
	return term.Make(term.Num, k)
}

// Suc builds a numeral successor +n.
func (c *Context) Suc(n term.Term) (term.Term, error) {
	loc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	c.set(loc, n)
	return term.Make(term.Suc, loc), nil
}

// Swi builds a zero/succ switch ~n{0:z;+:s}.
func (c *Context) Swi(n, z, s term.Term) (term.Term, error) {
	loc, err := c.Alloc(3)
	if err != nil {
		return 0, err
	}
	c.set(loc+0, n)
	c.set(loc+1, z)
	c.set(loc+2, s)
	return term.Make(term.Swi, loc), nil
}

// Get builds a sigma-pair eliminator ![x0,x1] = val; body(x0,x1).
//
// This mirrors original_source/src/parse/term/get.c, including its
// unfinished state: the original never gave the two projections
// distinct heap cells (both point at the same binder slot), a detail
// consistent with collapse.c's own "This is a WIP" header comment. No
// runtime or collapse-time interaction is defined for GET (see
// SPEC_FULL.md §7) -- only the constructor and heap layout exist, same
// as in the original.
func (c *Context) Get(val term.Term, body func(x0, x1 term.Term) term.Term) (term.Term, error) {
	loc, err := c.Alloc(3)
	if err != nil {
		return 0, err
	}
	c.set(loc+0, val)
	binder := term.Make(term.Var, loc+2)
	bod := body(binder, binder)
	c.set(loc+1, bod)
	return term.Make(term.Get, loc), nil
}

// Rwt builds an equality-rewrite eliminator %eq; body.
//
// Mirrors original_source/src/parse/term/rwt.c; like Get, no
// interaction rule is defined for it.
func (c *Context) Rwt(eq, body term.Term) (term.Term, error) {
	loc, err := c.Alloc(2)
	if err != nil {
		return 0, err
	}
	c.set(loc+0, eq)
	c.set(loc+1, body)
	return term.Make(term.Rwt, loc), nil
}
