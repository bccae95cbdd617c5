// Package sstable builds sorted-string tables for an LSM storage engine: a
// single-use, single-threaded accumulator that turns a strictly increasing
// stream of key/value entries into prefix-compressed, checksummed data
// blocks plus an out-of-band metadata descriptor.
package sstable

import (
	"math"

	"github.com/riftlsm/sstable/internal/block"
	"github.com/riftlsm/sstable/internal/bloom"
	"github.com/riftlsm/sstable/internal/checksum"
	"github.com/riftlsm/sstable/internal/encoding"
	"github.com/zeebo/xxh3"
)

// Builder accumulates entries into data blocks and assembles a finished
// table. A Builder is single-use: construct with New, call Add zero or more
// times, then consume it with exactly one Finish call.
type Builder struct {
	opts Options

	buf          []byte   // the whole table, grown in place
	baseOffset   uint32   // absolute offset where the current block starts
	baseKey      []byte   // current block's base key
	entryOffsets []uint32 // current block's entry offsets, relative to baseOffset
	fingerprints []uint32 // retained across every block in the table

	meta     Meta
	finished bool
}

// New constructs a Builder with the given options.
func New(opts Options) *Builder {
	return &Builder{opts: opts}
}

// IsEmpty reports whether Add has never been called.
func (b *Builder) IsEmpty() bool {
	return len(b.fingerprints) == 0
}

// Add appends key and value to the table. Keys must be delivered in
// strictly increasing order under the engine's comparator; this is a
// precondition the builder does not check.
//
// REQUIRES: Finish has not been called.
// REQUIRES: key's shared prefix with the block's base key, and the
// remaining unshared suffix, both fit in a u16.
func (b *Builder) Add(key []byte, value Value) {
	if b.finished {
		panic("sstable: Add called after Finish")
	}

	valLen := value.EncodedLen()

	if b.shouldFinishBlock(key, valLen) {
		b.finishBlock()
		b.baseOffset = uint32(len(b.buf))
		b.baseKey = b.baseKey[:0]
		b.entryOffsets = b.entryOffsets[:0]
	}

	fp := fingerprint32(userKey(key, b.opts.KeySuffixLen))
	b.fingerprints = append(b.fingerprints, fp)

	var diffKey []byte
	if len(b.baseKey) == 0 {
		b.baseKey = append(b.baseKey[:0], key...)
		diffKey = key
	} else {
		diffKey = block.ByteDiff(b.baseKey, key)
	}

	overlap := len(key) - len(diffKey)
	if overlap > math.MaxUint16 {
		panic("sstable: key overlap exceeds uint16 range")
	}
	if len(diffKey) > math.MaxUint16 {
		panic("sstable: diff key exceeds uint16 range")
	}
	if len(b.buf) > math.MaxUint32 {
		panic("sstable: table buffer exceeds uint32 range")
	}

	relOffset := uint32(len(b.buf)) - b.baseOffset
	b.entryOffsets = append(b.entryOffsets, relOffset)
	b.buf = block.AppendHeader(b.buf, block.Header{Overlap: uint16(overlap), Diff: uint16(len(diffKey))})
	b.buf = append(b.buf, diffKey...)
	b.buf = value.Encode(b.buf)

	b.meta.EstimatedSize += uint32(valLen + len(diffKey) + 4)
}

// shouldFinishBlock projects the current block's finalized size after
// adding one more entry for key/value and reports whether it would exceed
// BlockSize. It always admits at least one entry per block. The projection
// uses len(key) rather than the prefix-compressed diff length — a
// deliberate overestimate that keeps the check cheap.
func (b *Builder) shouldFinishBlock(key []byte, valLen int) bool {
	if len(b.entryOffsets) == 0 {
		return false
	}
	current := len(b.buf) - int(b.baseOffset)
	projected := current +
		6 + // header plus a conservative margin
		len(key) + valLen +
		(len(b.entryOffsets)+1)*4 + // offset table including this entry
		4 + // entry count
		8 + // checksum payload (sum + algo)
		4 // checksum length field
	return uint32(projected) > b.opts.BlockSize
}

// finishBlock seals the current block in place: appends the offset table,
// entry count, checksum message, and checksum length, then records the
// block's descriptor in the metadata.
//
// REQUIRES: the current block has at least one entry.
func (b *Builder) finishBlock() {
	if len(b.entryOffsets) == 0 {
		panic("sstable: finishBlock called on an empty block")
	}

	for _, off := range b.entryOffsets {
		b.buf = encoding.AppendFixed32(b.buf, off)
	}
	b.buf = encoding.AppendFixed32BE(b.buf, uint32(len(b.entryOffsets)))

	currentEnd := len(b.buf)
	sum := checksum.Value(b.buf[b.baseOffset:currentEnd])
	msg := checksum.Encode(checksum.Message{Sum: sum, Algo: checksum.AlgorithmCRC32C})
	b.buf = append(b.buf, msg...)
	b.buf = encoding.AppendFixed32BE(b.buf, uint32(len(msg)))

	b.meta.Offsets = append(b.meta.Offsets, BlockOffset{
		Key:    append([]byte(nil), b.baseKey...),
		Offset: b.baseOffset,
		Len:    uint32(len(b.buf)) - b.baseOffset,
	})
}

// ReachCapacity reports a conservative estimate of the final table size,
// assuming the current block closed right now, against TableCapacity. It is
// advisory: the caller decides whether to stop feeding entries.
func (b *Builder) ReachCapacity() bool {
	estimated := len(b.buf) +
		len(b.entryOffsets)*4 + 4 + 8 + 4 +
		4 + // reserved for index length
		5*len(b.meta.Offsets) // per-descriptor overhead estimate
	return uint32(estimated) > b.opts.TableCapacity
}

// Finish consumes the builder, sealing the final block and, if a bloom
// false-positive rate was configured, building the bloom filter over every
// fingerprint seen. It returns the table bytes and its metadata descriptor.
//
// A builder that never received an Add call fails the non-empty block
// assertion in finishBlock; empty tables are never emitted.
func (b *Builder) Finish() ([]byte, Meta) {
	if b.finished {
		panic("sstable: Finish called on an already-finished builder")
	}

	b.finishBlock()

	if b.opts.BloomFalsePositive > 0 {
		bitsPerKey := bloom.BitsPerKey(b.opts.BloomFalsePositive)
		b.meta.BloomFilter = bloom.Build(b.fingerprints, bitsPerKey)
	}

	b.finished = true
	return b.buf, b.meta
}

// fingerprint32 hashes a user key down to the 32-bit fingerprint the bloom
// filter is built from.
func fingerprint32(key []byte) uint32 {
	return uint32(xxh3.Hash(key))
}
