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

// Package snapshot compresses a raw heap dump for crash diagnostics.
// Grounded on ion/zion/compress.go's zstd encoder/decoder pair, sized
// down to a single reusable pair since a heap dump is an occasional
// diagnostic action, not a hot path needing per-call tuning.
package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"
	"runtime"

	"github.com/klauspost/compress/zstd"
)

// magic begins every snapshot this package writes, so Load can reject
// a file that is not one of its own dumps before trying to decompress it.
var magic = []byte{'i', 'c', 's', 0x01}

var (
	enc *zstd.Encoder
	dec *zstd.Decoder
)

func init() {
	enc, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	dec, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
}

// Dump writes a compressed snapshot of raw, consisting of wordCount
// packed term words (each a little-endian uint32), to w.
func Dump(w io.Writer, raw []byte, wordCount uint32) error {
	if _, err := w.Write(magic); err != nil {
		return err
	}
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], wordCount)
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	compressed := enc.EncodeAll(raw, nil)
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(compressed)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(compressed)
	return err
}

// Load reverses Dump, returning the decompressed term words and the
// word count recorded at Dump time.
func Load(r io.Reader) ([]byte, uint32, error) {
	hdr := make([]byte, len(magic)+4)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, 0, fmt.Errorf("snapshot: reading header: %w", err)
	}
	for i := range magic {
		if hdr[i] != magic[i] {
			return nil, 0, fmt.Errorf("snapshot: bad magic")
		}
	}
	wordCount := binary.LittleEndian.Uint32(hdr[len(magic):])

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, 0, fmt.Errorf("snapshot: reading compressed length: %w", err)
	}
	compressed := make([]byte, binary.LittleEndian.Uint32(lenBuf[:]))
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, 0, fmt.Errorf("snapshot: reading compressed body: %w", err)
	}

	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("snapshot: %w", err)
	}
	return raw, wordCount, nil
}
