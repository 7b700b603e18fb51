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

//go:build windows

package heap

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/icalc/ic/term"
)

// mapTerms mirrors heap_unix.go's mmap-backed arena using
// VirtualAlloc, the way vm/malloc_windows.go backs the VM's own
// memory region on Windows.
func mapTerms(n uint32) []term.Term {
	nbytes := uintptr(n) * unsafe.Sizeof(term.Term(0))
	addr, err := windows.VirtualAlloc(0, nbytes, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return make([]term.Term, n)
	}
	return unsafe.Slice((*term.Term)(unsafe.Pointer(addr)), n)
}
