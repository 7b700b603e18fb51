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

// E1: ((λx.x) (λy.y)) collapses to λy.y in exactly one interaction.
func TestScenarioE1IdentityApply(t *testing.T) {
	c := newTestContext(t)
	id, err := c.Lam(func(x term.Term) term.Term { return x })
	if err != nil {
		t.Fatal(err)
	}
	other, err := c.Lam(func(x term.Term) term.Term { return x })
	if err != nil {
		t.Fatal(err)
	}
	app, err := c.App(id, other)
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.Collapse(app)
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

// E2: ((λx.(x x)) (λy.y)) drives to WHNF in two APP-LAM firings, landing
// on the identity lambda. Collapsing further would recurse into that
// lambda's own body, which (since it is its own bound variable) chases
// back through the very substitution installed to reach it; this is
// asserted at the WHNF boundary, which never looks past the head tag.
func TestScenarioE2SelfApplyIdentity(t *testing.T) {
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
	if c.Interactions() != 2 {
		t.Fatalf("expected 2 interactions, got %d", c.Interactions())
	}
}

// E3: !&0{a,b} = λz.z; (a b) -- DUP-LAM splits the lambda into two fresh
// ones sharing a duplicated body, APP-LAM applies the first to the
// second, and resolving that body's own duplicated occurrence drives it
// through the freshly-installed superposition, firing DUP-SUP-same: a
// genuine λz.z lands at the head after three interactions, not two --
// the split lambda's body is still self-referential (it is still an
// identity shape, just freshly relabeled), so the collapser's
// location-keyed guard stops at that variable, harmlessly, exactly as
// it would for the original, undivided identity lambda.
func TestScenarioE3DupLamThenAppLam(t *testing.T) {
	c := newTestContext(t)
	idz, err := c.Lam(func(z term.Term) term.Term { return z })
	if err != nil {
		t.Fatal(err)
	}
	body, err := c.Dup(0, idz, func(a, b term.Term) term.Term {
		app, err := c.App(a, b)
		if err != nil {
			t.Fatal(err)
		}
		return app
	})
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.Collapse(body)
	if err != nil {
		t.Fatal(err)
	}
	if term.TagOf(result) != term.Lam {
		t.Fatalf("expected LAM, got %v", term.TagOf(result))
	}
	if c.Interactions() != 3 {
		t.Fatalf("expected 3 interactions, got %d", c.Interactions())
	}
}

// E4: !&0{a,b} = &0{λx.x, λy.y}; (a b) -- DUP-SUP annihilate picks one
// of the two distinct lambdas directly (no fresh copies are minted, so
// there is no self-reference to chase), then APP-LAM reduces it, two
// interactions, result λy.y.
func TestScenarioE4DupSupAnnihilateThenAppLam(t *testing.T) {
	c := newTestContext(t)
	idx, err := c.Lam(func(x term.Term) term.Term { return x })
	if err != nil {
		t.Fatal(err)
	}
	idy, err := c.Lam(func(y term.Term) term.Term { return y })
	if err != nil {
		t.Fatal(err)
	}
	sup, err := c.Sup(0, idx, idy)
	if err != nil {
		t.Fatal(err)
	}
	body, err := c.Dup(0, sup, func(a, b term.Term) term.Term {
		app, err := c.App(a, b)
		if err != nil {
			t.Fatal(err)
		}
		return app
	})
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.Collapse(body)
	if err != nil {
		t.Fatal(err)
	}
	if term.TagOf(result) != term.Lam {
		t.Fatalf("expected LAM, got %v", term.TagOf(result))
	}
	if c.Interactions() != 2 {
		t.Fatalf("expected 2 interactions, got %d", c.Interactions())
	}
}

// E5: !&0{a,b} = &1{p,q}; &0{a,b} -- cross-label commute canonicalizes
// so the smaller label (0) ends up outermost.
func TestScenarioE5CrossLabelCommute(t *testing.T) {
	c := newTestContext(t)
	p := c.Num(1)
	q := c.Num(2)
	inner, err := c.Sup(1, p, q)
	if err != nil {
		t.Fatal(err)
	}
	body, err := c.Dup(0, inner, func(a, b term.Term) term.Term {
		sup, err := c.Sup(0, a, b)
		if err != nil {
			t.Fatal(err)
		}
		return sup
	})
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.Collapse(body)
	if err != nil {
		t.Fatal(err)
	}
	if !term.IsSup(result) {
		t.Fatalf("expected SUP at head, got %v", term.TagOf(result))
	}
	if term.Label(result) != 0 {
		t.Fatalf("expected outer label 0, got %d", term.Label(result))
	}
	loc := term.Val(result)
	left := c.get(loc + 0)
	right := c.get(loc + 1)
	if !term.IsSup(left) || term.Label(left) != 1 {
		t.Fatalf("expected label-1 SUP on the left, got %v", left)
	}
	if !term.IsSup(right) || term.Label(right) != 1 {
		t.Fatalf("expected label-1 SUP on the right, got %v", right)
	}
}

// E6: (λx.⋆) (λy.y) -- the lambda is entered directly by application,
// so ordinary APP-LAM alone drives it to ⋆; ERA-LAM (a collapse-time
// rule for a LAM node found standing with an ERA body) never gets a
// chance to fire here since the LAM is consumed by application first.
func TestScenarioE6AppLamThenEraLam(t *testing.T) {
	c := newTestContext(t)
	eraLam, err := c.Lam(func(x term.Term) term.Term { return c.Era() })
	if err != nil {
		t.Fatal(err)
	}
	id, err := c.Lam(func(y term.Term) term.Term { return y })
	if err != nil {
		t.Fatal(err)
	}
	app, err := c.App(eraLam, id)
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.Collapse(app)
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

func TestCollapseIdempotent(t *testing.T) {
	c := newTestContext(t)
	p := c.Num(1)
	q := c.Num(2)
	inner, err := c.Sup(1, p, q)
	if err != nil {
		t.Fatal(err)
	}
	body, err := c.Dup(0, inner, func(a, b term.Term) term.Term {
		sup, err := c.Sup(0, a, b)
		if err != nil {
			t.Fatal(err)
		}
		return sup
	})
	if err != nil {
		t.Fatal(err)
	}
	once, err := c.Collapse(body)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := c.Collapse(once)
	if err != nil {
		t.Fatal(err)
	}
	if c.Show(once) != c.Show(twice) {
		t.Fatalf("collapse not idempotent: %q vs %q", c.Show(once), c.Show(twice))
	}
}
