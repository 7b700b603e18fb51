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

// CollapseSups is collapse pass A: it pushes superpositions outward
// through binders, application spines, and switch branches until none
// of them sit where a runtime interaction would otherwise keep them
// hidden. It recurses with host recursion, not the explicit WHNF
// stack, matching original_source/src/collapse.c's ic_collapse_sups.
//
// Duplicating a closure whose body is exactly its own bound variable
// (the identity shape) can leave the untouched copy's body chasing
// back, through the installed substitution, to the very superposition
// this pass is already in the middle of unpacking. ic_collapse_sups
// has no guard against that and neither did an early version of this
// pass; visiting tracks the locations on the current path so a repeat
// stops the recursion instead of exhausting the stack.
func (c *Context) CollapseSups(t term.Term) (term.Term, error) {
	return c.collapseSups(t, make(map[uint32]bool))
}

func (c *Context) collapseSups(t term.Term, visiting map[uint32]bool) (term.Term, error) {
	t, err := c.WHNF(t)
	if err != nil {
		return 0, err
	}
	tag := term.TagOf(t)
	loc := term.Val(t)

	if visiting[loc] {
		return t, nil
	}
	visiting[loc] = true
	defer delete(visiting, loc)

	switch {
	case tag == term.Lam:
		bod, err := c.collapseSups(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, bod)
	case tag == term.App:
		fn, err := c.collapseSups(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		arg, err := c.collapseSups(c.get(loc+1), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, fn)
		c.set(loc+1, arg)
	case term.IsSup(t):
		a, err := c.collapseSups(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		b, err := c.collapseSups(c.get(loc+1), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, a)
		c.set(loc+1, b)
	case tag == term.Swi:
		n, err := c.collapseSups(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		z, err := c.collapseSups(c.get(loc+1), visiting)
		if err != nil {
			return 0, err
		}
		s, err := c.collapseSups(c.get(loc+2), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, n)
		c.set(loc+1, z)
		c.set(loc+2, s)
	}

	t, err = c.WHNF(t)
	if err != nil {
		return 0, err
	}
	tag = term.TagOf(t)
	loc = term.Val(t)

	switch {
	case tag == term.Lam:
		bodCol := c.get(loc + 0)
		switch {
		case term.IsSup(bodCol):
			next, err := c.supLam(loc, bodCol)
			if err != nil {
				return 0, err
			}
			return c.collapseSups(next, visiting)
		case term.IsEra(bodCol):
			return c.collapseSups(c.eraLam(loc), visiting)
		}

	case tag == term.App:
		argCol := c.get(loc + 1)
		switch {
		case term.IsSup(argCol):
			next, err := c.supApp(loc, argCol)
			if err != nil {
				return 0, err
			}
			return c.collapseSups(next, visiting)
		case term.IsEra(argCol):
			return c.collapseSups(c.appEra(), visiting)
		}

	case term.IsSup(t):
		lab := term.Label(t)
		lftCol := c.get(loc + 0)
		rgtCol := c.get(loc + 1)
		switch {
		case term.IsSup(lftCol) && lab > term.Label(lftCol):
			next, err := c.supSupX(lab, lftCol, rgtCol)
			if err != nil {
				return 0, err
			}
			return c.collapseSups(next, visiting)
		case term.IsSup(rgtCol) && lab > term.Label(rgtCol):
			next, err := c.supSupY(lab, lftCol, rgtCol)
			if err != nil {
				return 0, err
			}
			return c.collapseSups(next, visiting)
		}

	case tag == term.Swi:
		ifz := c.get(loc + 1)
		ifs := c.get(loc + 2)
		switch {
		case term.IsSup(ifz):
			next, err := c.supSwiZ(loc, ifz)
			if err != nil {
				return 0, err
			}
			return c.collapseSups(next, visiting)
		case term.IsSup(ifs):
			next, err := c.supSwiS(loc, ifs)
			if err != nil {
				return 0, err
			}
			return c.collapseSups(next, visiting)
		}
	}

	return t, nil
}

// CollapseDups is collapse pass B: for each DUP endpoint still
// standing after pass A, collapse what it targets and dissolve the
// duplication into substitutions when the target is a VAR, APP, or
// ERA; anything else is irreducible sharing and is left in place.
// Mirrors ic_collapse_dups, with the same path-based cycle guard as
// collapseSups and for the same reason.
func (c *Context) CollapseDups(t term.Term) (term.Term, error) {
	return c.collapseDups(t, make(map[uint32]bool))
}

func (c *Context) collapseDups(t term.Term, visiting map[uint32]bool) (term.Term, error) {
	t, err := c.WHNF(t)
	if err != nil {
		return 0, err
	}
	tag := term.TagOf(t)
	loc := term.Val(t)

	if visiting[loc] {
		return t, nil
	}
	visiting[loc] = true
	defer delete(visiting, loc)

	switch {
	case term.IsDup(t):
		val, err := c.collapseDups(c.get(loc), visiting)
		if err != nil {
			return 0, err
		}
		switch {
		case term.TagOf(val) == term.Var:
			return c.collapseDups(c.dupVar(loc, val), visiting)
		case term.TagOf(val) == term.App:
			lab := uint8(tag) & 0x3
			isDp0 := term.IsDp0(term.Make(tag, 0))
			next, err := c.dupApp(loc, lab, isDp0, val)
			if err != nil {
				return 0, err
			}
			return c.collapseDups(next, visiting)
		case term.IsEra(val):
			return c.collapseDups(c.dupEra(loc), visiting)
		default:
			return t, nil
		}

	case tag == term.Lam:
		bod, err := c.collapseDups(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, bod)
		return t, nil

	case tag == term.App:
		fn, err := c.collapseDups(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		arg, err := c.collapseDups(c.get(loc+1), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, fn)
		c.set(loc+1, arg)
		return t, nil

	case term.IsSup(t):
		a, err := c.collapseDups(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		b, err := c.collapseDups(c.get(loc+1), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, a)
		c.set(loc+1, b)
		return t, nil

	case tag == term.Suc:
		n, err := c.collapseDups(c.get(loc), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc, n)
		return t, nil

	case tag == term.Swi:
		n, err := c.collapseDups(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		z, err := c.collapseDups(c.get(loc+1), visiting)
		if err != nil {
			return 0, err
		}
		s, err := c.collapseDups(c.get(loc+2), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, n)
		c.set(loc+1, z)
		c.set(loc+2, s)
		return t, nil

	default:
		// VAR, ERA, NUM, and the unreduced GET/RWT forms have no
		// children this pass needs to visit.
		return t, nil
	}
}

// Collapse runs both collapser passes in sequence and returns a term
// satisfying the label-ordering and dup-elimination invariants.
func (c *Context) Collapse(t term.Term) (term.Term, error) {
	t, err := c.CollapseSups(t)
	if err != nil {
		return 0, err
	}
	return c.CollapseDups(t)
}
