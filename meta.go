package sstable

import (
	"errors"

	"github.com/riftlsm/sstable/internal/encoding"
)

// BlockOffset locates one data block within the table: its base key, the
// block's absolute byte offset, and its length in bytes.
type BlockOffset struct {
	Key    []byte
	Offset uint32
	Len    uint32
}

// Meta is the out-of-band metadata descriptor delivered alongside a
// finished table: the ordered block descriptors, a running size estimate,
// and the optional bloom filter bytes. The builder never embeds this in the
// table's data bytes.
type Meta struct {
	Offsets       []BlockOffset
	EstimatedSize uint32
	BloomFilter   []byte
}

// HasBloomFilter reports whether a bloom filter was built for this table.
func (m Meta) HasBloomFilter() bool {
	return len(m.BloomFilter) > 0
}

// EncodeMeta serializes m with a stable, self-delimiting, length-prefixed
// scheme so a reader never needs to know the builder's version to parse it.
func EncodeMeta(m Meta) []byte {
	buf := encoding.AppendVarint32(nil, uint32(len(m.Offsets)))
	for _, bo := range m.Offsets {
		buf = encoding.AppendLengthPrefixedSlice(buf, bo.Key)
		buf = encoding.AppendFixed32(buf, bo.Offset)
		buf = encoding.AppendFixed32(buf, bo.Len)
	}
	buf = encoding.AppendFixed32(buf, m.EstimatedSize)
	buf = encoding.AppendLengthPrefixedSlice(buf, m.BloomFilter)
	return buf
}

var errTruncatedMeta = errors.New("sstable: truncated metadata descriptor")

// DecodeMeta parses a metadata descriptor produced by EncodeMeta.
func DecodeMeta(b []byte) (Meta, error) {
	count, n, err := encoding.DecodeVarint32(b)
	if err != nil {
		return Meta{}, err
	}
	b = b[n:]

	offsets := make([]BlockOffset, 0, count)
	for i := uint32(0); i < count; i++ {
		key, n, err := encoding.DecodeLengthPrefixedSlice(b)
		if err != nil {
			return Meta{}, err
		}
		b = b[n:]

		if len(b) < 8 {
			return Meta{}, errTruncatedMeta
		}
		offset := encoding.DecodeFixed32(b)
		length := encoding.DecodeFixed32(b[4:])
		b = b[8:]

		offsets = append(offsets, BlockOffset{Key: key, Offset: offset, Len: length})
	}

	if len(b) < 4 {
		return Meta{}, errTruncatedMeta
	}
	estimatedSize := encoding.DecodeFixed32(b)
	b = b[4:]

	bloomFilter, _, err := encoding.DecodeLengthPrefixedSlice(b)
	if err != nil {
		return Meta{}, err
	}

	return Meta{Offsets: offsets, EstimatedSize: estimatedSize, BloomFilter: bloomFilter}, nil
}
