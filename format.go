package cprs

// CPRS container format constants.
const (
	Signature  = "CPRS" // Leading and trailing container signature.
	HeaderSize = 20     // Signature, compressedSize, decompressedSize, alpha, beta.
	MinSize    = 20     // Smallest container accepted by ParseHeader.
	WordSize   = 4      // Payload granularity; container length must be a multiple of it.

	signatureWord    = 0x53525043 // Signature as a little-endian u32.
	terminalDistance = 0x10002    // Distance values at or above this end the stream.
	literalBits      = 9          // Control bit plus one byte.
	windowBits       = 32         // Width of the bit window register.
)
