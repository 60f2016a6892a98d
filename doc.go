/*
Package cprs decompresses CPRS containers, a bit-packed LZ format found in
Seagate/LSI controller firmware images.

Container: "CPRS" signature, u32 compressed size, u32 decompressed size,
two u32 words preloading the bit window, the payload as little-endian u32
words, and a trailing "CPRS" signature. Length must be a multiple of 4.

Bitstream: tokens are read lowest bit first from a 32-bit window. Bit 0 = 0
is a literal (next 8 bits). Bit 0 = 1 is a copy: a 2-bit length class and a
4-bit distance class, each followed by a class-dependent number of extra
bits and resolved through a constant table. Distance 0 repeats the last
byte, other distances copy from the output in 2-byte units, and a distance
of 0x10002 or more ends the stream.

Output is collected in 4-byte words; back-references are copied one byte at
a time, so overlapping copies extend the output by repetition.

There is no compressor.

# Examples

Decompress with default options:

	out, err := cprs.Decompress(data, nil)
	if err != nil {
		return err
	}

Require the stream to fill the declared size and cap allocation:

	opts := cprs.StrictOptions()
	opts.MaxDecodedSize = 64 << 20
	out, err := cprs.Decompress(data, opts)

Inspect the header without decoding:

	h, err := cprs.ParseHeader(data)
	if errors.Is(err, cprs.ErrFormat) {
		// not a CPRS container
	}
	_ = h.DecompressedSize

Trace tokens:

	opts := &cprs.Options{OnToken: func(t cprs.Token) { fmt.Println(t) }}
	_, err := cprs.Decompress(data, opts)
*/
package cprs
