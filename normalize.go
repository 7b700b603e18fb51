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

// Normalize drives t to WHNF and then recurses into every structural
// child, normalizing each in turn: the full normal form reachable by
// the seven runtime interactions alone, with no collapse-time rules
// applied. Superpositions and duplications that runtime interactions
// cannot resolve are left standing, unlike Collapse.
//
// Uses the same path-based visiting guard as collapseSups/collapseDups:
// a duplicated closure whose body is its own bound variable can leave a
// structural child chasing back to a location already being normalized.
func (c *Context) Normalize(t term.Term) (term.Term, error) {
	return c.normalize(t, make(map[uint32]bool))
}

func (c *Context) normalize(t term.Term, visiting map[uint32]bool) (term.Term, error) {
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
		bod, err := c.normalize(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, bod)

	case tag == term.App:
		fn, err := c.normalize(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		arg, err := c.normalize(c.get(loc+1), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, fn)
		c.set(loc+1, arg)

	case term.IsSup(t):
		a, err := c.normalize(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		b, err := c.normalize(c.get(loc+1), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, a)
		c.set(loc+1, b)

	case term.IsDup(t):
		val, err := c.normalize(c.get(loc), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc, val)

	case tag == term.Suc:
		n, err := c.normalize(c.get(loc), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc, n)

	case tag == term.Swi:
		n, err := c.normalize(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		z, err := c.normalize(c.get(loc+1), visiting)
		if err != nil {
			return 0, err
		}
		s, err := c.normalize(c.get(loc+2), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, n)
		c.set(loc+1, z)
		c.set(loc+2, s)

	case tag == term.Get:
		val, err := c.normalize(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		bod, err := c.normalize(c.get(loc+1), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, val)
		c.set(loc+1, bod)

	case tag == term.Rwt:
		eq, err := c.normalize(c.get(loc+0), visiting)
		if err != nil {
			return 0, err
		}
		bod, err := c.normalize(c.get(loc+1), visiting)
		if err != nil {
			return 0, err
		}
		c.set(loc+0, eq)
		c.set(loc+1, bod)

	default:
		// VAR and NUM have no children.
	}

	return t, nil
}
