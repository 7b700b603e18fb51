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
	"github.com/icalc/ic/internal/xhash"
	"github.com/icalc/ic/term"
)

// Fingerprint renders t the same way Show does and hashes the result,
// giving callers (chiefly determinism property tests comparing two
// independent collapse runs) a cheap pair of integers to compare instead
// of two potentially large rendered strings.
func (c *Context) Fingerprint(t term.Term) (lo, hi uint64) {
	return xhash.Fingerprint(0, 0, []byte(c.Show(t)))
}
