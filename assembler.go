package cprs

import (
	"encoding/binary"
	"fmt"
)

// assembler writes decoded bytes into a fixed-size buffer one word at a time.
// Bytes of an incomplete word stay in acc until four are collected or until
// a back-reference needs to read them.
type assembler struct {
	dst     []byte // Preallocated output of the declared size.
	acc     uint32 // Pending bytes of the current word, lowest byte first.
	emitted int    // Total bytes decoded so far.
	flushed int    // Bytes of dst that hold their final value.
	last    byte   // Most recently emitted byte; the run fill value.
}

// emitByte appends b to the output.
func (a *assembler) emitByte(b byte) error {
	if a.emitted >= len(a.dst) {
		return fmt.Errorf("%w: size=%d", ErrOutputOverrun, len(a.dst))
	}

	shift := uint(a.emitted&3) * 8
	a.acc = a.acc&^(0xff<<shift) | uint32(b)<<shift
	a.emitted++
	a.last = b

	if a.emitted&3 == 0 {
		binary.LittleEndian.PutUint32(a.dst[a.emitted-WordSize:], a.acc)
		a.acc = 0
		a.flushed = a.emitted
	}

	return nil
}

// emitRun repeats the last emitted byte length times.
func (a *assembler) emitRun(length int) error {
	b := a.last
	for i := 0; i < length; i++ {
		if err := a.emitByte(b); err != nil {
			return err
		}
	}

	return nil
}

// emitMatch copies length bytes starting distance bytes back.
// Source and destination may overlap (distance < length): bytes are copied one
// at a time so each written byte is visible to the next read.
func (a *assembler) emitMatch(length, distance int) error {
	src := a.emitted - distance
	if src < 0 {
		return fmt.Errorf("%w: distance=%d emitted=%d", ErrInvalidDistance, distance, a.emitted)
	}

	for i := 0; i < length; i++ {
		// The source byte may still sit in the accumulator.
		if src+i >= a.flushed {
			a.flush()
		}

		if err := a.emitByte(a.dst[src+i]); err != nil {
			return err
		}
	}

	return nil
}

// flush stores the pending bytes of an incomplete word. flushed stays on the
// word boundary: the same bytes are stored again on every call until the word
// completes, and dst is never read at or above emitted.
func (a *assembler) flush() {
	for i := a.flushed; i < a.emitted; i++ {
		a.dst[i] = byte(a.acc >> (uint(i&3) * 8))
	}
}

// bytes flushes and returns the output buffer.
func (a *assembler) bytes() []byte {
	a.flush()

	return a.dst
}
