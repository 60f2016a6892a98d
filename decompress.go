package cprs

import (
	"fmt"
	"io"
)

// Decompress decodes a complete CPRS container.
// Options nil means DefaultOptions. The result is always exactly the declared
// decompressed size; no output is returned alongside an error.
func Decompress(src []byte, opts *Options) ([]byte, error) {
	h, err := ParseHeader(src)
	if err != nil {
		return nil, err
	}

	if opts == nil {
		opts = DefaultOptions()
	}

	if opts.MaxDecodedSize > 0 && uint64(h.DecompressedSize) > uint64(opts.MaxDecodedSize) {
		return nil, fmt.Errorf("%w: size=%d limit=%d", ErrOutputTooLarge, h.DecompressedSize, opts.MaxDecodedSize)
	}

	out := &assembler{dst: make([]byte, h.DecompressedSize)}
	window := newBitWindow(src, h)

	for {
		tok := decodeToken(window.alpha)
		tok.Offset = out.emitted
		if opts.OnToken != nil {
			opts.OnToken(tok)
		}

		switch tok.Kind {
		case TokenLiteral:
			err = out.emitByte(tok.Literal)
		case TokenRunFill:
			err = out.emitRun(tok.Length)
		case TokenMatch:
			err = out.emitMatch(tok.Length, tok.Distance)
		case TokenTerminal:
			if opts.Strict && out.emitted != len(out.dst) {
				return nil, fmt.Errorf("%w: got=%d want=%d", ErrShortOutput, out.emitted, len(out.dst))
			}

			return out.bytes(), nil
		}

		if err != nil {
			return nil, err
		}

		if err := window.advance(uint(tok.Bits)); err != nil {
			return nil, err
		}
	}
}

// DecompressFromReader reads a whole container from r and decodes it.
// The format has no end marker the decoder could stop at, so r is read to EOF.
// It returns the decoded bytes and the number of bytes read.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	counter := &countingReader{base: r}
	src, err := io.ReadAll(counter)
	if err != nil {
		return nil, counter.count, err
	}

	out, err := Decompress(src, opts)
	if err != nil {
		return nil, counter.count, err
	}

	return out, counter.count, nil
}
