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
	"errors"

	"github.com/icalc/ic/heap"
)

// ErrHeapExhausted is returned by allocation when a context's heap
// capacity would be exceeded. The context is left unusable for
// further reduction; callers should recreate it.
var ErrHeapExhausted = heap.ErrExhausted

// ErrStackExhausted is returned by the WHNF driver when its explicit
// redex stack would overflow. Same recovery policy as ErrHeapExhausted.
var ErrStackExhausted = heap.ErrStackExhausted

// ErrMalformedGraph indicates a VAR or DUP endpoint pointed at a cell
// that cannot hold the kind of value it claims to (e.g. a VAR whose
// target is not a LAM binder slot). This can only happen on ill-formed
// input graphs; well-formed graphs produced through the constructors in
// this package cannot trigger it.
var ErrMalformedGraph = errors.New("ic: malformed graph")
