package sstable

import "github.com/riftlsm/sstable/internal/encoding"

// valueTag distinguishes a Put from a Delete on the wire.
type valueTag uint8

const (
	tagDelete valueTag = 0
	tagPut    valueTag = 1
)

// Value is the tagged union stored alongside every key: either a Put
// carrying a payload, or a Delete tombstone with none.
type Value struct {
	tag     valueTag
	payload []byte
}

// Put wraps b as a Put value. b is retained, not copied.
func Put(b []byte) Value {
	return Value{tag: tagPut, payload: b}
}

// Delete returns the Delete tombstone value.
func Delete() Value {
	return Value{tag: tagDelete}
}

// IsDelete reports whether v is a Delete tombstone.
func (v Value) IsDelete() bool {
	return v.tag == tagDelete
}

// EncodedLen returns the exact number of bytes Encode will append, without
// allocating.
func (v Value) EncodedLen() int {
	if v.tag == tagDelete {
		return 1
	}
	return 1 + encoding.VarintLength(uint32(len(v.payload))) + len(v.payload)
}

// Encode appends v's wire form to dst: [tag=1][len varint][payload] for a
// Put, or the single byte [tag=0] for a Delete.
func (v Value) Encode(dst []byte) []byte {
	if v.tag == tagDelete {
		return append(dst, byte(tagDelete))
	}
	dst = append(dst, byte(tagPut))
	dst = encoding.AppendVarint32(dst, uint32(len(v.payload)))
	dst = append(dst, v.payload...)
	return dst
}
