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

// WHNF reduces t to weak head normal form: a term whose head
// constructor is stable under all seven runtime interactions. It
// drives reduction with the Context's own explicit redex stack rather
// than host recursion (spec §9, "Explicit stack over recursion").
//
// If reduction reaches a point where no interaction matches a pending
// frame (an open term stuck on a free variable, or an ill-formed
// graph), no further rewrite can apply to any enclosing frame either
// -- none of them mutated t on the way down -- so WHNF simply returns
// the original term unchanged rather than the truncated innermost
// fragment.
func (c *Context) WHNF(t term.Term) (term.Term, error) {
	c.stack.Reset()
	orig := t
	cur := t
	for {
		tag := term.TagOf(cur)
		switch {
		case tag == term.Var:
			loc := term.Val(cur)
			cell := c.get(loc)
			if term.IsSub(cell) {
				// Clear the bit in the stored cell itself, not just
				// the local copy, so a later read of loc finds it
				// already cleared.
				cur = term.ClearSub(cell)
				c.set(loc, cur)
				continue
			}
			// A free variable is already head-normal; resolve
			// whatever frame is waiting on it, if any.
			next, done, matched, err := c.popAndApply(cur)
			if err != nil {
				return 0, err
			}
			if !matched {
				return orig, nil
			}
			if done {
				return next, nil
			}
			cur = next

		case term.IsDup(cur):
			loc := term.Val(cur)
			cell := c.get(loc)
			if term.IsSub(cell) {
				cur = term.ClearSub(cell)
				c.set(loc, cur)
				continue
			}
			if err := c.pushFrame(frame{kind: frameDup, tag: tag, loc: loc}); err != nil {
				return 0, err
			}
			cur = cell

		case tag == term.App:
			loc := term.Val(cur)
			if err := c.pushFrame(frame{kind: frameApp, tag: tag, loc: loc}); err != nil {
				return 0, err
			}
			cur = c.get(loc + 0)

		case tag == term.Swi:
			loc := term.Val(cur)
			if err := c.pushFrame(frame{kind: frameSwi, tag: tag, loc: loc}); err != nil {
				return 0, err
			}
			cur = c.get(loc + 0)

		default:
			// LAM, SUP, ERA, NUM, SUC and the unreduced forms
			// (GET, RWT) are already head-normal; resolve
			// whatever redex is waiting on this value.
			next, done, matched, err := c.popAndApply(cur)
			if err != nil {
				return 0, err
			}
			if !matched {
				return orig, nil
			}
			if done {
				return next, nil
			}
			cur = next
		}
	}
}

// popAndApply pops the top pending frame (if any) and applies the
// interaction it names against resolved. If the stack is empty,
// resolved is already the final WHNF and done is true. If a frame is
// pending but no interaction matches it, matched is false and the
// caller must give up on the whole reduction, not just this frame.
func (c *Context) popAndApply(resolved term.Term) (result term.Term, done bool, matched bool, err error) {
	f, ok := c.stack.Pop()
	if !ok {
		return resolved, true, true, nil
	}
	switch f.kind {
	case frameApp:
		return c.applyApp(f, resolved)
	case frameDup:
		return c.applyDup(f, resolved)
	case frameSwi:
		return c.applySwi(f, resolved)
	default:
		return resolved, true, true, nil
	}
}

func (c *Context) applyApp(f frame, fn term.Term) (term.Term, bool, bool, error) {
	arg := c.get(f.loc + 1)
	switch {
	case term.TagOf(fn) == term.Lam:
		return c.appLam(term.Val(fn), arg), false, true, nil
	case term.IsSup(fn):
		t, err := c.appSup(fn, arg)
		return t, false, true, err
	case term.IsEra(fn):
		return c.appEra(), false, true, nil
	default:
		return 0, false, false, nil
	}
}

func (c *Context) applyDup(f frame, val term.Term) (term.Term, bool, bool, error) {
	lab := uint8(f.tag) & 0x3
	isDp0 := term.IsDp0(term.Make(f.tag, 0))
	switch {
	case term.TagOf(val) == term.Lam:
		t, err := c.dupLam(f.loc, lab, isDp0, term.Val(val))
		return t, false, true, err
	case term.IsSup(val):
		if term.Label(val) == lab {
			return c.dupSupSame(f.loc, isDp0, val), false, true, nil
		}
		t, err := c.dupSupCross(f.loc, lab, isDp0, val)
		return t, false, true, err
	case term.IsEra(val):
		return c.dupEra(f.loc), false, true, nil
	case term.TagOf(val) == term.Num:
		return c.dupNum(f.loc, val), false, true, nil
	default:
		return 0, false, false, nil
	}
}

func (c *Context) applySwi(f frame, scrut term.Term) (term.Term, bool, bool, error) {
	z := c.get(f.loc + 1)
	s := c.get(f.loc + 2)
	switch {
	case term.TagOf(scrut) == term.Num:
		k := term.Val(scrut)
		if k == 0 {
			return z, false, true, nil
		}
		app, err := c.App(s, c.Num(k-1))
		return app, false, true, err
	case term.TagOf(scrut) == term.Suc:
		pred := c.get(term.Val(scrut))
		app, err := c.App(s, pred)
		return app, false, true, err
	case term.IsEra(scrut):
		// Symmetric with APP-ERA: eliminating an erased
		// scrutinee erases.
		return c.appEra(), false, true, nil
	default:
		// Includes the SUP case: distributing a switch over a
		// superposition is collapse-time work (rule 11), not
		// WHNF's.
		return 0, false, false, nil
	}
}
