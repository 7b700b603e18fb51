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

// The collapse-time interactions. Unlike the seven runtime
// interactions, these only fire from inside the collapser: they expose
// sharing that WHNF leaves hidden inside binders, application spines,
// and switch branches. Grounded on original_source/src/collapse.c.

// eraLam: λx.* -- the body already erased; erase the binder too.
func (c *Context) eraLam(lamLoc uint32) term.Term {
	c.interactions++
	c.set(lamLoc, term.MakeSub(c.Era()))
	return c.Era()
}

// supLam: λx.&L{f0,f1} -- push the lambda through the superposition.
func (c *Context) supLam(lamLoc uint32, sup term.Term) (term.Term, error) {
	c.interactions++
	lab := term.Label(sup)
	supLoc := term.Val(sup)
	f0 := c.get(supLoc + 0)
	f1 := c.get(supLoc + 1)

	lam0Loc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	lam1Loc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	c.set(lam0Loc, f0)
	c.set(lam1Loc, f1)
	x0 := term.Make(term.Var, lam0Loc)
	x1 := term.Make(term.Var, lam1Loc)

	xsup, err := c.Sup(lab, x0, x1)
	if err != nil {
		return 0, err
	}
	c.set(lamLoc, term.MakeSub(xsup))

	lam0 := term.Make(term.Lam, lam0Loc)
	lam1 := term.Make(term.Lam, lam1Loc)
	return c.Sup(lab, lam0, lam1)
}

// supApp: (f &L{x,y}) -- a superposed argument forces f to be
// duplicated across the two applications. This is the mirror image of
// the runtime's APP-SUP (which fires on a superposed function); it
// only matters once the collapser forces argument positions to WHNF
// too, which the ordinary call-by-need driver never does.
func (c *Context) supApp(appLoc uint32, sup term.Term) (term.Term, error) {
	c.interactions++
	lab := term.Label(sup)
	supLoc := term.Val(sup)
	fun := c.get(appLoc + 0)
	lft := c.get(supLoc + 0)
	rgt := c.get(supLoc + 1)

	dupLoc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	c.set(dupLoc, fun)
	f0 := term.Make(term.Dp0Tag(lab), dupLoc)
	f1 := term.Make(term.Dp1Tag(lab), dupLoc)

	app0, err := c.App(f0, lft)
	if err != nil {
		return 0, err
	}
	app1, err := c.App(f1, rgt)
	if err != nil {
		return 0, err
	}
	return c.Sup(lab, app0, app1)
}

// supSupX: &R{&L{x0,x1},y}, R>L -- float the outer label through the
// left arm, duplicating y so both new arms can use it.
func (c *Context) supSupX(outerLab uint8, innerSup, y term.Term) (term.Term, error) {
	c.interactions++
	innerLab := term.Label(innerSup)
	innerLoc := term.Val(innerSup)
	x0 := c.get(innerLoc + 0)
	x1 := c.get(innerLoc + 1)

	dupLoc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	c.set(dupLoc, y)
	y0 := term.Make(term.Dp0Tag(outerLab), dupLoc)
	y1 := term.Make(term.Dp1Tag(outerLab), dupLoc)

	sup0, err := c.Sup(outerLab, x0, y0)
	if err != nil {
		return 0, err
	}
	sup1, err := c.Sup(outerLab, x1, y1)
	if err != nil {
		return 0, err
	}
	return c.Sup(innerLab, sup0, sup1)
}

// supSupY: &R{x,&L{y0,y1}}, R>L -- symmetric to supSupX, floating
// through the right arm instead.
func (c *Context) supSupY(outerLab uint8, x, innerSup term.Term) (term.Term, error) {
	c.interactions++
	innerLab := term.Label(innerSup)
	innerLoc := term.Val(innerSup)
	y0 := c.get(innerLoc + 0)
	y1 := c.get(innerLoc + 1)

	dupLoc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	c.set(dupLoc, x)
	x0 := term.Make(term.Dp0Tag(outerLab), dupLoc)
	x1 := term.Make(term.Dp1Tag(outerLab), dupLoc)

	sup0, err := c.Sup(outerLab, x0, y0)
	if err != nil {
		return 0, err
	}
	sup1, err := c.Sup(outerLab, x1, y1)
	if err != nil {
		return 0, err
	}
	return c.Sup(innerLab, sup0, sup1)
}

// supSwiZ: ~N{0:&L{z0,z1};+:s} -- a superposed zero branch forces N
// and s to be duplicated so each arm gets its own switch.
func (c *Context) supSwiZ(swiLoc uint32, sup term.Term) (term.Term, error) {
	c.interactions++
	lab := term.Label(sup)
	supLoc := term.Val(sup)
	num := c.get(swiLoc + 0)
	z0 := c.get(supLoc + 0)
	z1 := c.get(supLoc + 1)
	s := c.get(swiLoc + 2)
	return c.splitSwi(lab, num, z0, z1, s, s, true)
}

// supSwiS: ~N{0:z;+:&L{s0,s1}} -- symmetric to supSwiZ for the
// successor branch.
func (c *Context) supSwiS(swiLoc uint32, sup term.Term) (term.Term, error) {
	c.interactions++
	lab := term.Label(sup)
	supLoc := term.Val(sup)
	num := c.get(swiLoc + 0)
	z := c.get(swiLoc + 1)
	s0 := c.get(supLoc + 0)
	s1 := c.get(supLoc + 1)
	return c.splitSwi(lab, num, z, z, s0, s1, false)
}

// splitSwi is the shared tail of supSwiZ/supSwiS: duplicate the two
// terms not already split by the caller's superposition and assemble
// the two resulting switches.
func (c *Context) splitSwi(lab uint8, num, z0, z1, s0, s1 term.Term, dupZ bool) (term.Term, error) {
	dupNLoc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	c.set(dupNLoc, num)
	n0 := term.Make(term.Dp0Tag(lab), dupNLoc)
	n1 := term.Make(term.Dp1Tag(lab), dupNLoc)

	if dupZ {
		// z0/z1 already distinct (the caller's SUP arms); s is shared.
		dupSLoc, err := c.Alloc(1)
		if err != nil {
			return 0, err
		}
		c.set(dupSLoc, s0)
		s0 = term.Make(term.Dp0Tag(lab), dupSLoc)
		s1 = term.Make(term.Dp1Tag(lab), dupSLoc)
	} else {
		dupZLoc, err := c.Alloc(1)
		if err != nil {
			return 0, err
		}
		c.set(dupZLoc, z0)
		z0 = term.Make(term.Dp0Tag(lab), dupZLoc)
		z1 = term.Make(term.Dp1Tag(lab), dupZLoc)
	}

	swi0, err := c.Swi(n0, z0, s0)
	if err != nil {
		return 0, err
	}
	swi1, err := c.Swi(n1, z1, s1)
	if err != nil {
		return 0, err
	}
	return c.Sup(lab, swi0, swi1)
}

// dupVar: !&L{x0,x1} = x, x a free variable -- both endpoints become x.
func (c *Context) dupVar(dupLoc uint32, v term.Term) term.Term {
	c.interactions++
	c.set(dupLoc, term.MakeSub(v))
	return v
}

// dupApp: !&L{a0,a1} = (f x) -- push the duplication into the spine so
// sharing survives past the application.
func (c *Context) dupApp(dupLoc uint32, lab uint8, isDp0 bool, app term.Term) (term.Term, error) {
	c.interactions++
	appLoc := term.Val(app)
	fun := c.get(appLoc + 0)
	arg := c.get(appLoc + 1)

	dupFunLoc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	dupArgLoc, err := c.Alloc(1)
	if err != nil {
		return 0, err
	}
	c.set(dupFunLoc, fun)
	c.set(dupArgLoc, arg)
	f0 := term.Make(term.Dp0Tag(lab), dupFunLoc)
	f1 := term.Make(term.Dp1Tag(lab), dupFunLoc)
	x0 := term.Make(term.Dp0Tag(lab), dupArgLoc)
	x1 := term.Make(term.Dp1Tag(lab), dupArgLoc)

	app0, err := c.App(f0, x0)
	if err != nil {
		return 0, err
	}
	app1, err := c.App(f1, x1)
	if err != nil {
		return 0, err
	}
	if isDp0 {
		c.set(dupLoc, term.MakeSub(app1))
		return app0, nil
	}
	c.set(dupLoc, term.MakeSub(app0))
	return app1, nil
}
