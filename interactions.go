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

// The seven runtime interactions. Each matches a pending redex frame
// against the term that resolved at its site, performs one local graph
// rewrite, bumps the interaction counter exactly once, and returns the
// new head term. Grounded on original_source/src/interactions/app_lam.c
// and the corresponding rules sketched in original_source/src/ic.h.

// appLam: (λx.body arg) -- install x <- arg, continue on body.
func (c *Context) appLam(lamLoc uint32, arg term.Term) term.Term {
	c.interactions++
	body := c.get(lamLoc)
	c.set(lamLoc, term.MakeSub(arg))
	return body
}

// appSup: (&L{a,b} x) -- duplicate x and distribute the application.
func (c *Context) appSup(sup term.Term, arg term.Term) (term.Term, error) {
	c.interactions++
	lab := term.Label(sup)
	supLoc := term.Val(sup)
	a := c.get(supLoc + 0)
	b := c.get(supLoc + 1)

	dupLoc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	c.set(dupLoc, arg)
	x0 := term.Make(term.Dp0Tag(lab), dupLoc)
	x1 := term.Make(term.Dp1Tag(lab), dupLoc)

	app0, err := c.App(a, x0)
	if err != nil {
		return 0, err
	}
	app1, err := c.App(b, x1)
	if err != nil {
		return 0, err
	}
	return c.Sup(lab, app0, app1)
}

// appEra: (⋆ x) -- erasures absorb applied arguments.
func (c *Context) appEra() term.Term {
	c.interactions++
	return c.Era()
}

// dupLam: !&L{r0,r1} = λx.f -- split the lambda across the label.
func (c *Context) dupLam(dupLoc uint32, lab uint8, isDp0 bool, lamLoc uint32) (term.Term, error) {
	c.interactions++
	f := c.get(lamLoc)

	lam0Loc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	lam1Loc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}

	// x <- &L{x0,x1}: occurrences of the original binder now see a
	// superposition of the two fresh binders.
	x0 := term.Make(term.Var, lam0Loc)
	x1 := term.Make(term.Var, lam1Loc)
	xsup, err := c.Sup(lab, x0, x1)
	if err != nil {
		return 0, err
	}
	c.set(lamLoc, term.MakeSub(xsup))

	// !&L{f0,f1} = f: the two split bodies are the two projections of
	// a fresh duplicator over the original body, not two copies of the
	// same term -- so the body is shared and duplicated in turn rather
	// than aliased.
	dupFLoc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	c.set(dupFLoc, f)
	f0 := term.Make(term.Dp0Tag(lab), dupFLoc)
	f1 := term.Make(term.Dp1Tag(lab), dupFLoc)
	c.set(lam0Loc, f0)
	c.set(lam1Loc, f1)
	lam0 := term.Make(term.Lam, lam0Loc)
	lam1 := term.Make(term.Lam, lam1Loc)

	if isDp0 {
		c.set(dupLoc, term.MakeSub(lam1))
		return lam0, nil
	}
	c.set(dupLoc, term.MakeSub(lam0))
	return lam1, nil
}

// dupSupSame: !&L{r0,r1} = &L{a,b} -- same label, annihilate.
func (c *Context) dupSupSame(dupLoc uint32, isDp0 bool, sup term.Term) term.Term {
	c.interactions++
	supLoc := term.Val(sup)
	a := c.get(supLoc + 0)
	b := c.get(supLoc + 1)
	if isDp0 {
		c.set(dupLoc, term.MakeSub(b))
		return a
	}
	c.set(dupLoc, term.MakeSub(a))
	return b
}

// dupSupCross: !&L{r0,r1} = &M{a,b}, L != M -- commute the dup inward.
func (c *Context) dupSupCross(dupLoc uint32, lab uint8, isDp0 bool, sup term.Term) (term.Term, error) {
	c.interactions++
	outerLab := term.Label(sup)
	supLoc := term.Val(sup)
	a := c.get(supLoc + 0)
	b := c.get(supLoc + 1)

	dupALoc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	dupBLoc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	c.set(dupALoc, a)
	c.set(dupBLoc, b)
	a0 := term.Make(term.Dp0Tag(lab), dupALoc)
	a1 := term.Make(term.Dp1Tag(lab), dupALoc)
	b0 := term.Make(term.Dp0Tag(lab), dupBLoc)
	b1 := term.Make(term.Dp1Tag(lab), dupBLoc)

	sup0, err := c.Sup(outerLab, a0, b0)
	if err != nil {
		return 0, err
	}
	sup1, err := c.Sup(outerLab, a1, b1)
	if err != nil {
		return 0, err
	}
	if isDp0 {
		c.set(dupLoc, term.MakeSub(sup1))
		return sup0, nil
	}
	c.set(dupLoc, term.MakeSub(sup0))
	return sup1, nil
}

// dupEra: !&L{r0,r1} = ⋆ -- both endpoints erase.
func (c *Context) dupEra(dupLoc uint32) term.Term {
	c.interactions++
	era := c.Era()
	c.set(dupLoc, term.MakeSub(era))
	return era
}

// dupNum: !&L{r0,r1} = n -- numerals have no substructure, so both
// endpoints just receive the literal. Not one of the eleven named
// interactions (spec.md only requires DUP-LAM/DUP-SUP/DUP-ERA at
// runtime); supplemented the same way DUP-ERA is, so that duplicating
// a fully-reduced numeral doesn't get stuck.
func (c *Context) dupNum(dupLoc uint32, num term.Term) term.Term {
	c.interactions++
	c.set(dupLoc, term.MakeSub(num))
	return num
}
