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
	"errors"
	"testing"

	"github.com/icalc/ic/term"
)

func TestNewContextDefaults(t *testing.T) {
	c, err := NewContext(Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if c.arena.Cap() != DefaultHeapSize {
		t.Fatalf("got heap cap %d want %d", c.arena.Cap(), DefaultHeapSize)
	}
	if c.Interactions() != 0 {
		t.Fatal("fresh context should have zero interactions")
	}
}

func TestContextIDStable(t *testing.T) {
	c, err := NewContext(Options{HeapSize: 64, StackSize: 64})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	id := c.ID()
	if id != c.ID() {
		t.Fatal("ID must be stable across calls")
	}
}

func TestAllocWrapsHeapExhausted(t *testing.T) {
	c, err := NewContext(Options{HeapSize: 4, StackSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if _, err := c.Alloc(4); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Alloc(1); !errors.Is(err, ErrHeapExhausted) {
		t.Fatalf("expected ErrHeapExhausted, got %v", err)
	}
}

func TestLamAppRoundTrip(t *testing.T) {
	c, err := NewContext(Options{HeapSize: 64, StackSize: 64})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	id, err := c.Lam(func(x term.Term) term.Term { return x })
	if err != nil {
		t.Fatal(err)
	}
	arg := c.Num(5)
	app, err := c.App(id, arg)
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.WHNF(app)
	if err != nil {
		t.Fatal(err)
	}
	if term.TagOf(result) != term.Num || term.Val(result) != 5 {
		t.Fatalf("got %v, want NUM 5", result)
	}
	if c.Interactions() != 1 {
		t.Fatalf("expected 1 interaction, got %d", c.Interactions())
	}
}
