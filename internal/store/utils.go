package store

import (
	"fmt"
)

// byteReader is a simple reader for varint decoding without allocations.
type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data, pos: 0}
}

func (r *byteReader) ReadUvarint() (uint64, error) {
	var x uint64
	var s uint
	for i := 0; ; i++ {
		if r.pos >= len(r.data) {
			return 0, fmt.Errorf("unexpected EOF")
		}
		if i == 10 {
			return 0, fmt.Errorf("uvarint overflows 64 bits")
		}
		b := r.data[r.pos]
		r.pos++
		if b < 0x80 {
			return x | uint64(b)<<s, nil
		}
		x |= uint64(b&0x7f) << s
		s += 7
	}
}

func (r *byteReader) ReadBytes(n uint64) ([]byte, error) {
	if n > uint64(len(r.data)-r.pos) {
		return nil, fmt.Errorf("unexpected EOF")
	}
	b := r.data[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return b, nil
}

// readOffsets reads a count followed by that many delta-encoded offsets.
func (r *byteReader) readOffsets() ([]int, error) {
	count, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if count > uint64(len(r.data)-r.pos) {
		return nil, fmt.Errorf("offset count %d exceeds remaining data", count)
	}

	offsets := make([]int, count)
	prev := 0
	for i := range offsets {
		delta, err := r.ReadUvarint()
		if err != nil {
			return nil, err
		}
		offsets[i] = prev + int(delta)
		prev = offsets[i]
	}
	return offsets, nil
}
