// Package checksum computes the CRC32C (Castagnoli) checksum used to guard
// every block written by the table builder, and provides the small
// structured encoding of the on-wire checksum descriptor.
//
// Reference: the Castagnoli polynomial is the same one RocksDB uses for its
// block checksums; this package does not apply RocksDB's string-embedding
// mask since the checksum here is never stored inside the bytes it covers.
package checksum

import (
	"hash/crc32"

	"github.com/riftlsm/sstable/internal/encoding"
)

// crc32cTable is the Castagnoli polynomial table used for CRC32C.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// Value computes the CRC32C checksum of data.
func Value(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// Algorithm identifies the checksum algorithm used by a Message. CRC32C is
// the only algorithm this builder ever emits; the tag is carried on the wire
// so a future format revision can introduce another one without bumping the
// block layout.
type Algorithm uint8

// AlgorithmCRC32C is the sole supported checksum algorithm.
const AlgorithmCRC32C Algorithm = 0

// Message is the serialized checksum descriptor embedded after a block's
// offset table: the checksum value plus the algorithm that produced it.
type Message struct {
	Sum  uint32
	Algo Algorithm
}

// Encode serializes the checksum message as [algo:u8][sum:u32 BE].
func Encode(m Message) []byte {
	buf := make([]byte, 0, 5)
	buf = append(buf, byte(m.Algo))
	buf = encoding.AppendFixed32BE(buf, m.Sum)
	return buf
}

// Decode parses a checksum message produced by Encode.
func Decode(b []byte) (Message, bool) {
	if len(b) != 5 {
		return Message{}, false
	}
	return Message{
		Algo: Algorithm(b[0]),
		Sum:  encoding.DecodeFixed32BE(b[1:]),
	}, true
}
