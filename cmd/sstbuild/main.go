// Package main provides the sstbuild CLI, a thin fixture generator around
// the sstable builder.
//
// Usage:
//
//	sstbuild --out=<path> [options] < records.tsv
//
// Input is newline-delimited key\tvalue records read from stdin, one per
// line, in strictly increasing key order. A value of exactly "\x00DELETE"
// emits a tombstone instead of a Put.
//
// Reference: cmd/ldb's flag-based CLI conventions.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/riftlsm/sstable"
)

var (
	outPath       = flag.String("out", "", "Path to write the table bytes to (required)")
	blockSize     = flag.Uint("block_size", 4096, "Soft block size in bytes")
	tableCapacity = flag.Uint("table_capacity", 64<<20, "Soft table capacity in bytes")
	falsePositive = flag.Float64("bloom_fpr", 0.01, "Bloom filter false-positive rate (0 disables)")
	suffixLen     = flag.Int("key_suffix_len", 8, "Length of the engine key trailer stripped before bloom hashing")
)

const deleteMarker = "\x00DELETE"

func main() {
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --out flag is required")
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sstbuild:", err)
		os.Exit(1)
	}
}

func run() error {
	b := sstable.New(sstable.Options{
		TableCapacity:      uint32(*tableCapacity),
		BlockSize:          uint32(*blockSize),
		BloomFalsePositive: *falsePositive,
		KeySuffixLen:       *suffixLen,
	})

	n, err := feed(b, os.Stdin)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no records read from stdin")
	}

	data, meta := b.Finish()
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	fmt.Printf("wrote %s: %d bytes, %d records, %d blocks, estimated_size=%d, bloom_filter=%v\n",
		*outPath, len(data), n, len(meta.Offsets), meta.EstimatedSize, meta.HasBloomFilter())
	return nil
}

// feed reads tab-separated key/value records from r and drives b, returning
// the number of records added.
func feed(b *sstable.Builder, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)

	n := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "\t")
		if !ok {
			return n, fmt.Errorf("malformed record %q: expected key\\tvalue", line)
		}
		if value == deleteMarker {
			b.Add([]byte(key), sstable.Delete())
		} else {
			b.Add([]byte(key), sstable.Put([]byte(value)))
		}
		n++
	}
	return n, scanner.Err()
}
