package sstable

// Options configures a Builder. Both size knobs are soft: the builder
// checks them against running totals but never refuses an add because of
// them — ReachCapacity is advisory, and a block only ever flushes on its own
// next add.
type Options struct {
	// TableCapacity is a soft upper bound on the total table size in bytes,
	// consulted by ReachCapacity.
	TableCapacity uint32

	// BlockSize is a soft upper bound that triggers a block flush.
	BlockSize uint32

	// BloomFalsePositive is the target false-positive rate for the bloom
	// filter built at Finish. A value of 0 disables the filter entirely.
	BloomFalsePositive float64

	// KeySuffixLen is the length, in bytes, of the engine-specific trailer
	// (sequence number, version tag) appended to every key. It is stripped
	// before hashing a key into the bloom filter. The builder never
	// interprets the trailer's contents.
	KeySuffixLen int
}

// DefaultOptions returns the builder's default configuration: a 64 MiB
// table capacity, 4 KiB blocks, a 1% bloom false-positive rate, and an
// 8-byte key trailer (the common sequence-number suffix width).
func DefaultOptions() Options {
	return Options{
		TableCapacity:      64 << 20,
		BlockSize:          4 << 10,
		BloomFalsePositive: 0.01,
		KeySuffixLen:       8,
	}
}
