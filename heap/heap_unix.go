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

//go:build unix

package heap

import (
	"syscall"
	"unsafe"

	"github.com/icalc/ic/term"
)

// mapTerms backs an arena with an anonymous mmap region rather than a
// plain Go slice, so that large heaps (the default is 2^26 term words,
// 256MiB) don't pressure the garbage collector's scan of live pointers:
// a []term.Term has no pointers in it, but a GC-owned allocation of
// that size still costs a sweep pass. Mirrors vm/malloc_linux.go and
// vm/malloc_darwin.go's use of syscall.Mmap for the VM's own arena.
func mapTerms(n uint32) []term.Term {
	nbytes := uintptr(n) * unsafe.Sizeof(term.Term(0))
	buf, err := syscall.Mmap(-1, 0, int(nbytes), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_PRIVATE|syscall.MAP_ANON)
	if err != nil {
		// fall back to a regular Go allocation rather than
		// failing arena construction outright.
		return make([]term.Term, n)
	}
	return unsafe.Slice((*term.Term)(unsafe.Pointer(&buf[0])), n)
}
