package encoding

import (
	"bytes"
	"testing"
)

func TestFixed32(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  []byte
	}{
		{"zero", 0, []byte{0x00, 0x00, 0x00, 0x00}},
		{"one", 1, []byte{0x01, 0x00, 0x00, 0x00}},
		{"max", 0xFFFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"0x12345678", 0x12345678, []byte{0x78, 0x56, 0x34, 0x12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appended := AppendFixed32(nil, tt.value)
			if !bytes.Equal(appended, tt.want) {
				t.Errorf("AppendFixed32(%d) = %v, want %v", tt.value, appended, tt.want)
			}
			if got := DecodeFixed32(tt.want); got != tt.value {
				t.Errorf("DecodeFixed32(%v) = %d, want %d", tt.want, got, tt.value)
			}
		})
	}
}

func TestFixed32BE(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  []byte
	}{
		{"zero", 0, []byte{0x00, 0x00, 0x00, 0x00}},
		{"0x12345678", 0x12345678, []byte{0x12, 0x34, 0x56, 0x78}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appended := AppendFixed32BE(nil, tt.value)
			if !bytes.Equal(appended, tt.want) {
				t.Errorf("AppendFixed32BE(%d) = %v, want %v", tt.value, appended, tt.want)
			}
			if got := DecodeFixed32BE(tt.want); got != tt.value {
				t.Errorf("DecodeFixed32BE(%v) = %d, want %d", tt.want, got, tt.value)
			}
		})
	}
}

func TestVarint32RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 16383, 16384, 1 << 20, 1<<32 - 1}
	for _, v := range values {
		buf := AppendVarint32(nil, v)
		if len(buf) != VarintLength(v) {
			t.Errorf("VarintLength(%d) = %d, encoded length = %d", v, VarintLength(v), len(buf))
		}
		got, n, err := DecodeVarint32(buf)
		if err != nil {
			t.Fatalf("DecodeVarint32(%v) error = %v", buf, err)
		}
		if got != v || n != len(buf) {
			t.Errorf("DecodeVarint32(%v) = (%d, %d), want (%d, %d)", buf, got, n, v, len(buf))
		}
	}
}

func TestDecodeVarint32Truncated(t *testing.T) {
	buf := AppendVarint32(nil, 1<<20)
	_, _, err := DecodeVarint32(buf[:1])
	if err == nil {
		t.Fatal("DecodeVarint32 on truncated input: want error, got nil")
	}
}

func TestLengthPrefixedSlice(t *testing.T) {
	cases := [][]byte{nil, []byte(""), []byte("a"), []byte("hello world")}
	for _, c := range cases {
		buf := AppendLengthPrefixedSlice(nil, c)
		got, n, err := DecodeLengthPrefixedSlice(buf)
		if err != nil {
			t.Fatalf("DecodeLengthPrefixedSlice(%v) error = %v", buf, err)
		}
		if n != len(buf) {
			t.Errorf("bytesRead = %d, want %d", n, len(buf))
		}
		if !bytes.Equal(got, c) && !(len(got) == 0 && len(c) == 0) {
			t.Errorf("DecodeLengthPrefixedSlice(%v) = %v, want %v", buf, got, c)
		}
	}
}

func TestDecodeLengthPrefixedSliceTooShort(t *testing.T) {
	buf := AppendVarint32(nil, 10)
	_, _, err := DecodeLengthPrefixedSlice(buf)
	if err == nil {
		t.Fatal("DecodeLengthPrefixedSlice: want error for truncated payload, got nil")
	}
}
