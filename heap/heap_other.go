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

//go:build !unix && !windows

package heap

import "github.com/icalc/ic/term"

// mapTerms falls back to a plain Go allocation on platforms with
// neither an mmap nor a VirtualAlloc backend, mirroring the
// //go:build !linux fallback in debug/fd_windows.go.
func mapTerms(n uint32) []term.Term {
	return make([]term.Term, n)
}
