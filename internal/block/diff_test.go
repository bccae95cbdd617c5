package block

import (
	"bytes"
	"testing"
)

func TestByteDiff(t *testing.T) {
	tests := []struct {
		name string
		base string
		key  string
		want string
	}{
		{"empty base", "", "aaaa01", "aaaa01"},
		{"no overlap", "zzzz", "aaaa01", "aaaa01"},
		{"partial overlap", "aaaa01", "aaaa02", "2"},
		{"shorter overlap", "aaaa01", "aaab00", "b00"},
		{"base equals key", "aaaa01", "aaaa01", ""},
		{"base longer than key", "aaaa0100", "aaaa", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByteDiff([]byte(tt.base), []byte(tt.key))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("ByteDiff(%q, %q) = %q, want %q", tt.base, tt.key, got, tt.want)
			}
		})
	}
}
