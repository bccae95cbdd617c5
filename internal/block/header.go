// Package block holds the small stateless pieces of the block wire format:
// the per-entry header codec and the prefix-compression diff helper. The
// block itself (offsets, entry count, checksum) is assembled by the table
// builder, which owns the one growing buffer the whole table is built into.
package block

import "github.com/riftlsm/sstable/internal/encoding"

// Header is the per-entry prefix-compression header: overlap is the number
// of leading bytes the entry's key shares with its block's base key, and
// diff is the length of the remaining suffix stored inline.
type Header struct {
	Overlap uint16
	Diff    uint16
}

// Encode packs h into the single little-endian u32 the format stores: the
// overlap in the high 16 bits, the diff in the low 16 bits.
func (h Header) Encode() uint32 {
	return uint32(h.Overlap)<<16 | uint32(h.Diff)
}

// DecodeHeader is the symmetric inverse of Header.Encode.
func DecodeHeader(v uint32) Header {
	return Header{
		Overlap: uint16(v >> 16),
		Diff:    uint16(v),
	}
}

// AppendHeader appends h's 4-byte little-endian encoding to dst.
func AppendHeader(dst []byte, h Header) []byte {
	return encoding.AppendFixed32(dst, h.Encode())
}

// DecodeHeaderBytes decodes a Header from the 4 bytes at the start of b.
// REQUIRES: len(b) >= 4.
func DecodeHeaderBytes(b []byte) Header {
	return DecodeHeader(encoding.DecodeFixed32(b))
}
