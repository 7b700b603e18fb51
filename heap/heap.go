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

// Package heap implements the bump-allocated arena that backs an
// interaction calculus context: a contiguous array of term words that
// only ever grows, plus the explicit work stack the WHNF driver uses
// in place of host recursion.
package heap

import (
	"errors"
	"fmt"

	"github.com/icalc/ic/term"
)

// ErrExhausted is returned when an allocation would exceed the arena's
// fixed capacity. The arena is left in its pre-allocation state but the
// owning context should be treated as unusable for further reduction
// (spec: resource bounds are not rolled back at the context level).
var ErrExhausted = errors.New("heap: exhausted")

// Arena is a bump allocator over a fixed-capacity slice of term words.
// Cells are never freed; the arena is reclaimed only by discarding the
// whole context.
type Arena struct {
	terms []term.Term
	pos   uint32
}

// NewArena allocates an arena with room for size term words. size is
// rounded up to the next power of two to match the configuration
// contract in the embedding interface.
func NewArena(size uint32) *Arena {
	size = nextPow2(size)
	return &Arena{terms: mapTerms(size)}
}

// Cap returns the arena's total capacity in term words.
func (a *Arena) Cap() uint32 { return uint32(len(a.terms)) }

// Len returns the number of term words currently allocated.
func (a *Arena) Len() uint32 { return a.pos }

// Alloc reserves n consecutive term slots and returns the index of the
// first one. It fails with ErrExhausted if the arena would overflow.
func (a *Arena) Alloc(n uint32) (uint32, error) {
	if n == 0 {
		return a.pos, nil
	}
	if uint64(a.pos)+uint64(n) > uint64(len(a.terms)) {
		return 0, fmt.Errorf("%w: requested %d words at pos %d, cap %d", ErrExhausted, n, a.pos, len(a.terms))
	}
	loc := a.pos
	a.pos += n
	return loc, nil
}

// Get reads the term word at loc.
func (a *Arena) Get(loc uint32) term.Term {
	return a.terms[loc]
}

// Set writes a term word at loc.
func (a *Arena) Set(loc uint32, t term.Term) {
	a.terms[loc] = t
}

// Words returns the allocated prefix of the arena, Len() words
// long. The returned slice aliases the arena's backing storage and is
// only valid until the next Alloc.
func (a *Arena) Words() []term.Term {
	return a.terms[:a.pos]
}

// Reset rewinds the bump position to zero without releasing the
// backing storage, allowing the arena to be reused for a fresh
// reduction.
func (a *Arena) Reset() {
	a.pos = 0
}

func nextPow2(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}
