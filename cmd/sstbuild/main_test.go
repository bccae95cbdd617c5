package main

import (
	"strings"
	"testing"

	"github.com/riftlsm/sstable"
)

func TestFeedParsesPutAndDeleteRecords(t *testing.T) {
	input := "a\tvalue-a\nb\t\x00DELETE\nc\tvalue-c\n"
	b := sstable.New(sstable.DefaultOptions())

	n, err := feed(b, strings.NewReader(input))
	if err != nil {
		t.Fatalf("feed error = %v", err)
	}
	if n != 3 {
		t.Fatalf("n = %d, want 3", n)
	}

	_, meta := b.Finish()
	if len(meta.Offsets) == 0 {
		t.Error("expected at least one block descriptor")
	}
}

func TestFeedRejectsMalformedRecords(t *testing.T) {
	b := sstable.New(sstable.DefaultOptions())
	if _, err := feed(b, strings.NewReader("no-tab-here\n")); err == nil {
		t.Fatal("feed accepted a record with no tab separator")
	}
}

func TestFeedSkipsBlankLines(t *testing.T) {
	b := sstable.New(sstable.DefaultOptions())
	n, err := feed(b, strings.NewReader("\n\na\tv\n\n"))
	if err != nil {
		t.Fatalf("feed error = %v", err)
	}
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
}
