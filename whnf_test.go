// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package ic

import (
	"testing"

	"github.com/icalc/ic/term"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContext(Options{HeapSize: 256, StackSize: 256})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)
	return c
}

// ((λx.x) (λy.y)) -- APP-LAM once, result is the identity lambda.
func TestWHNFAppLam(t *testing.T) {
	c := newTestContext(t)
	id, err := c.Lam(func(x term.Term) term.Term { return x })
	if err != nil {
		t.Fatal(err)
	}
	outer, err := c.Lam(func(x term.Term) term.Term { return x })
	if err != nil {
		t.Fatal(err)
	}
	app, err := c.App(id, outer)
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.WHNF(app)
	if err != nil {
		t.Fatal(err)
	}
	if term.TagOf(result) != term.Lam {
		t.Fatalf("expected LAM, got %v", term.TagOf(result))
	}
	if c.Interactions() != 1 {
		t.Fatalf("expected 1 interaction, got %d", c.Interactions())
	}
}

// ((λx.(x x)) (λy.y)) -- two APP-LAM firings land on the identity.
func TestWHNFSelfApply(t *testing.T) {
	c := newTestContext(t)
	selfApp, err := c.Lam(func(x term.Term) term.Term {
		app, err := c.App(x, x)
		if err != nil {
			t.Fatal(err)
		}
		return app
	})
	if err != nil {
		t.Fatal(err)
	}
	id, err := c.Lam(func(x term.Term) term.Term { return x })
	if err != nil {
		t.Fatal(err)
	}
	app, err := c.App(selfApp, id)
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.WHNF(app)
	if err != nil {
		t.Fatal(err)
	}
	if term.TagOf(result) != term.Lam {
		t.Fatalf("expected LAM, got %v", term.TagOf(result))
	}
}

// (λx.⋆) (λy.y) -- APP-LAM substitutes the argument for x, which is
// never used; body is already ⋆.
func TestWHNFAppLamEraBody(t *testing.T) {
	c := newTestContext(t)
	eraLam, err := c.Lam(func(x term.Term) term.Term { return c.Era() })
	if err != nil {
		t.Fatal(err)
	}
	id, err := c.Lam(func(x term.Term) term.Term { return x })
	if err != nil {
		t.Fatal(err)
	}
	app, err := c.App(eraLam, id)
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.WHNF(app)
	if err != nil {
		t.Fatal(err)
	}
	if !term.IsEra(result) {
		t.Fatalf("expected ERA, got %v", term.TagOf(result))
	}
	if c.Interactions() != 1 {
		t.Fatalf("expected 1 interaction, got %d", c.Interactions())
	}
}

// A free variable applied to an argument is already WHNF-stable: no
// interaction matches, and the whole unreduced application comes back.
func TestWHNFStuckOnFreeVariable(t *testing.T) {
	c := newTestContext(t)
	loc, err := c.Alloc(1)
	if err != nil {
		t.Fatal(err)
	}
	free := term.Make(term.Var, loc)
	arg := c.Num(1)
	app, err := c.App(free, arg)
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.WHNF(app)
	if err != nil {
		t.Fatal(err)
	}
	if result != app {
		t.Fatalf("expected the original application back unchanged, got %v", result)
	}
	if c.Interactions() != 0 {
		t.Fatalf("no interaction should have fired, got %d", c.Interactions())
	}
}

// Nested applications over a free head must not lose outer arguments
// when the inner redex gets stuck: ((f x) y) with f free must return
// exactly the original three-node graph, not just (f x).
func TestWHNFStuckPreservesOuterFrames(t *testing.T) {
	c := newTestContext(t)
	loc, err := c.Alloc(1)
	if err != nil {
		t.Fatal(err)
	}
	free := term.Make(term.Var, loc)
	inner, err := c.App(free, c.Num(1))
	if err != nil {
		t.Fatal(err)
	}
	outer, err := c.App(inner, c.Num(2))
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.WHNF(outer)
	if err != nil {
		t.Fatal(err)
	}
	if result != outer {
		t.Fatalf("expected outer application preserved, got %v", result)
	}
	if term.TagOf(result) != term.App {
		t.Fatalf("expected head APP, got %v", term.TagOf(result))
	}
	if c.get(term.Val(result)+1) != c.Num(2) {
		t.Fatal("outer argument must survive untouched")
	}
}

func TestWHNFSwiZero(t *testing.T) {
	c := newTestContext(t)
	z := c.Num(100)
	s, err := c.Lam(func(n term.Term) term.Term { return n })
	if err != nil {
		t.Fatal(err)
	}
	swi, err := c.Swi(c.Num(0), z, s)
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.WHNF(swi)
	if err != nil {
		t.Fatal(err)
	}
	if term.TagOf(result) != term.Num || term.Val(result) != 100 {
		t.Fatalf("got %v, want NUM 100", result)
	}
}

func TestWHNFSwiSucc(t *testing.T) {
	c := newTestContext(t)
	z := c.Num(0)
	s, err := c.Lam(func(n term.Term) term.Term { return n })
	if err != nil {
		t.Fatal(err)
	}
	swi, err := c.Swi(c.Num(7), z, s)
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.WHNF(swi)
	if err != nil {
		t.Fatal(err)
	}
	if term.TagOf(result) != term.Num || term.Val(result) != 6 {
		t.Fatalf("got %v, want NUM 6 (pred of 7 through the identity)", result)
	}
}
