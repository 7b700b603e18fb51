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

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/icalc/ic/internal/snapshot"
	"github.com/icalc/ic/term"
)

// Snapshot writes a compressed dump of the context's allocated heap
// words to w, for crash diagnostics. It does not touch the WHNF
// driver's stack, which holds no state worth preserving once a
// reduction is paused between frames.
func (c *Context) Snapshot(w io.Writer) error {
	words := c.arena.Words()
	raw := make([]byte, 4*len(words))
	for i, t := range words {
		binary.LittleEndian.PutUint32(raw[4*i:], uint32(t))
	}
	if err := snapshot.Dump(w, raw, uint32(len(words))); err != nil {
		return fmt.Errorf("ic: snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads back a dump written by Snapshot into a fresh
// Context sized to hold it.
func LoadSnapshot(r io.Reader) (*Context, error) {
	raw, wordCount, err := snapshot.Load(r)
	if err != nil {
		return nil, fmt.Errorf("ic: load snapshot: %w", err)
	}
	c, err := NewContext(Options{HeapSize: wordCount})
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < wordCount; i++ {
		c.set(i, term.Term(binary.LittleEndian.Uint32(raw[4*i:])))
	}
	if _, err := c.Alloc(wordCount); err != nil {
		return nil, fmt.Errorf("ic: load snapshot: %w", err)
	}
	return c, nil
}
