package cprs

import "encoding/binary"

// Header is the fixed part of a CPRS container.
type Header struct {
	CompressedSize   uint32 // Informational; not checked against the payload.
	DecompressedSize uint32 // Exact length of the decoded output.
	Alpha            uint32 // First bitstream word.
	Beta             uint32 // Second bitstream word.
}

// ParseHeader validates the container framing of src and returns its header.
// Checks run in order: alignment, minimum size, leading and trailing signature.
// Errors are returned unwrapped, so a rejected container costs no allocation.
func ParseHeader(src []byte) (Header, error) {
	if len(src)%WordSize != 0 {
		return Header{}, ErrMisaligned
	}

	if len(src) < MinSize {
		return Header{}, ErrTooShort
	}

	if binary.LittleEndian.Uint32(src) != signatureWord {
		return Header{}, ErrBadSignature
	}

	if binary.LittleEndian.Uint32(src[len(src)-WordSize:]) != signatureWord {
		return Header{}, ErrBadTrailer
	}

	return Header{
		CompressedSize:   binary.LittleEndian.Uint32(src[4:]),
		DecompressedSize: binary.LittleEndian.Uint32(src[8:]),
		Alpha:            binary.LittleEndian.Uint32(src[12:]),
		Beta:             binary.LittleEndian.Uint32(src[16:]),
	}, nil
}
