package htmlent

import "math/bits"

// ByteSet is a set of byte values.
type ByteSet [4]uint64

// NewByteSet returns the set of bytes appearing in s.
func NewByteSet(s string) ByteSet {
	var set ByteSet
	for i := 0; i < len(s); i++ {
		set[s[i]>>6] |= 1 << (s[i] & 63)
	}
	return set
}

// Contains reports whether b is in the set.
func (s ByteSet) Contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// Len returns the number of bytes in the set.
func (s ByteSet) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// String returns the members in ascending order.
func (s ByteSet) String() string {
	out := make([]byte, 0, s.Len())
	for b := 0; b < 256; b++ {
		if s.Contains(byte(b)) {
			out = append(out, byte(b))
		}
	}
	return string(out)
}
