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

// Package ic implements the Interaction Calculus runtime core: term
// representation, heap allocator, the eleven rewrite interactions, the
// weak-head-normal-form reducer, and the two-phase collapser.
package ic

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/icalc/ic/heap"
	"github.com/icalc/ic/term"
)

const (
	// DefaultHeapSize is the default term-word capacity of a new
	// Context, matching the consolidated header's 2^27 default
	// adjusted for the widened tag field (see DESIGN.md, Open
	// Question (a)): 2^26 words.
	DefaultHeapSize = uint32(1) << 26

	// DefaultStackSize is the default depth of the WHNF driver's
	// explicit redex stack.
	DefaultStackSize = uint32(1) << 24
)

// Options configures a new Context. The zero value selects the
// defaults. Per spec: these are the only two recognized options;
// there are no environment variables and no persisted state.
type Options struct {
	HeapSize  uint32
	StackSize uint32
}

func (o Options) withDefaults() Options {
	if o.HeapSize == 0 {
		o.HeapSize = DefaultHeapSize
	}
	if o.StackSize == 0 {
		o.StackSize = DefaultStackSize
	}
	return o
}

// frameKind distinguishes the three shapes of pending redex the WHNF
// driver's explicit stack can hold.
type frameKind uint8

const (
	frameApp frameKind = iota
	frameDup
	frameSwi
)

// frame is a pending redex: an APP, DUP endpoint, or SWI whose
// function/target/scrutinee is being driven to WHNF.
type frame struct {
	kind frameKind
	tag  term.Tag // original tag at loc (carries the DUP label, if any)
	loc  uint32
}

// Context holds all state needed to build and reduce interaction
// calculus terms: the heap, the WHNF driver's explicit stack, and the
// interaction counter. A Context is not safe for concurrent use (spec
// §5: "Writes are single-owner").
type Context struct {
	id           uuid.UUID
	opts         Options
	arena        *heap.Arena
	stack        *heap.Stack[frame]
	interactions uint64
}

// NewContext creates a new Context with the given options. The heap
// size is rounded up to the next power of two; the stack size is used
// as given.
func NewContext(opts Options) (*Context, error) {
	opts = opts.withDefaults()
	return &Context{
		id:    uuid.New(),
		opts:  opts,
		arena: heap.NewArena(opts.HeapSize),
		stack: heap.NewStack[frame](opts.StackSize),
	}, nil
}

// Close releases the Context's backing storage. Further use of the
// Context after Close is undefined.
func (c *Context) Close() {
	c.arena = nil
	c.stack = nil
}

// ID returns a stable identifier for this Context, for correlating log
// lines and diagnostics across a process that manages several
// contexts concurrently (each with exclusive single-threaded use).
func (c *Context) ID() uuid.UUID { return c.id }

// Interactions returns the number of interactions fired so far. It is
// strictly non-decreasing over the life of a Context.
func (c *Context) Interactions() uint64 { return c.interactions }

// Alloc reserves n consecutive term slots on the heap and returns the
// index of the first one.
func (c *Context) Alloc(n uint32) (uint32, error) {
	loc, err := c.arena.Alloc(n)
	if err != nil {
		return 0, fmt.Errorf("ic: alloc %d words: %w", n, err)
	}
	return loc, nil
}

func (c *Context) get(loc uint32) term.Term {
	return c.arena.Get(loc)
}

func (c *Context) set(loc uint32, t term.Term) {
	c.arena.Set(loc, t)
}

func (c *Context) pushFrame(f frame) error {
	if err := c.stack.Push(f); err != nil {
		return fmt.Errorf("ic: whnf stack: %w", err)
	}
	return nil
}
