package cprs

import (
	"encoding/binary"
	"io"
)

// wordReader reads little-endian 32-bit words from a byte slice.
type wordReader struct {
	data []byte // The container being decoded.
	pos  int    // Byte offset of the next word.
}

// ReadWord reads the next word, or returns io.EOF if fewer than 4 bytes remain.
func (r *wordReader) ReadWord() (uint32, error) {
	if len(r.data)-r.pos < WordSize {
		return 0, io.EOF
	}

	w := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += WordSize

	return w, nil
}

// countingReader counts the bytes read through it.
type countingReader struct {
	base  io.Reader // The reader to read from.
	count int64     // The number of bytes read.
}

// Read reads from the base reader and increments the count.
func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.base.Read(p)
	r.count += int64(n)

	return n, err
}
