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

// Package xhash wraps siphash for fingerprinting the rendered form of a
// term graph, so determinism checks can compare a pair of 64-bit halves
// instead of diffing two rendered strings byte by byte.
package xhash

import "github.com/dchest/siphash"

// Fingerprint hashes data under the given 128-bit key and returns the
// two 64-bit halves siphash produces, the same split
// vm/interphash.go's bchashvaluego keeps in its lo/hi hash registers.
func Fingerprint(k0, k1 uint64, data []byte) (lo, hi uint64) {
	return siphash.Hash128(k0, k1, data)
}

// Equal reports whether two fingerprints produced by Fingerprint match.
func Equal(lo1, hi1, lo2, hi2 uint64) bool {
	return lo1 == lo2 && hi1 == hi2
}
