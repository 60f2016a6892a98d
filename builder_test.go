package cprs

import (
	"encoding/binary"
	"testing"
)

// streamBuilder encodes tokens into a container for tests.
type streamBuilder struct {
	tb    testing.TB
	words []uint32
	acc   uint64
	nbits uint
}

func newStreamBuilder(tb testing.TB) *streamBuilder {
	tb.Helper()
	return &streamBuilder{tb: tb}
}

// put appends the low n bits of v, lowest bit first.
func (b *streamBuilder) put(v uint32, n uint32) {
	b.acc |= uint64(v&(1<<n-1)) << b.nbits
	b.nbits += uint(n)
	for b.nbits >= 32 {
		b.words = append(b.words, uint32(b.acc))
		b.acc >>= 32
		b.nbits -= 32
	}
}

func (b *streamBuilder) literal(c byte) *streamBuilder {
	b.put(uint32(c)<<1, literalBits)
	return b
}

func (b *streamBuilder) literals(s []byte) *streamBuilder {
	for _, c := range s {
		b.literal(c)
	}
	return b
}

// copyToken writes a raw copy token from class indices and extra bit values.
func (b *streamBuilder) copyToken(lclass, lextra, dclass, dextra uint32) *streamBuilder {
	b.put(1, 1)
	b.put(lclass, 2)
	b.put(lextra, lengthCodes[lclass].extraBits)
	b.put(dclass, 4)
	b.put(dextra, distanceCodes[dclass].extraBits)
	return b
}

// backref writes a copy token for a run (distance 0) or a match of the given
// distance in table units.
func (b *streamBuilder) backref(length, distance int) *streamBuilder {
	b.tb.Helper()
	for dc, d := range distanceCodes {
		if uint32(distance) < d.base || uint32(distance)-d.base > d.mask() {
			continue
		}
		term := length - int(d.lengthBonus())
		for lc, l := range lengthCodes {
			if term < int(l.base) || uint32(term)-l.base > l.mask() {
				continue
			}
			return b.copyToken(uint32(lc), uint32(term)-l.base, uint32(dc), uint32(distance)-d.base)
		}
		b.tb.Fatalf("length %d not encodable with distance %d", length, distance)
	}
	b.tb.Fatalf("distance %d not encodable", distance)
	return b
}

func (b *streamBuilder) run(length int) *streamBuilder {
	return b.backref(length, 0)
}

// match takes the distance in bytes; it must be even.
func (b *streamBuilder) match(length, distance int) *streamBuilder {
	b.tb.Helper()
	if distance%2 != 0 {
		b.tb.Fatalf("odd match distance %d", distance)
	}
	return b.backref(length, distance/2)
}

func (b *streamBuilder) terminal() *streamBuilder {
	return b.copyToken(0, 0, distanceClasses-1, 0x7fff)
}

// stream pads the pending bits and returns the bitstream words, including one
// spare word so the window never reads past the payload.
func (b *streamBuilder) stream() []uint32 {
	words := append([]uint32(nil), b.words...)
	if b.nbits > 0 {
		words = append(words, uint32(b.acc))
	}
	words = append(words, 0)
	for len(words) < 2 {
		words = append(words, 0)
	}
	return words
}

// container wraps the stream into a CPRS container declaring size output bytes.
func (b *streamBuilder) container(size int) []byte {
	return buildContainer(b.stream(), size)
}

func buildContainer(words []uint32, size int) []byte {
	out := make([]byte, 0, HeaderSize+len(words)*4)
	out = append(out, Signature...)
	out = binary.LittleEndian.AppendUint32(out, uint32(HeaderSize-8+len(words)*4+len(Signature)))
	out = binary.LittleEndian.AppendUint32(out, uint32(size))
	for _, w := range words {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return append(out, Signature...)
}
