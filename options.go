package cprs

// Options configures Decompress behavior.
type Options struct {
	// Strict: if true, a terminal token reached before the declared size was
	// produced returns ErrShortOutput. If false, the rest of the output stays zero.
	Strict bool
	// MaxDecodedSize rejects headers declaring more output bytes. 0 means no limit.
	MaxDecodedSize int
	// OnToken, if set, is called for every decoded token including the terminal one.
	OnToken func(Token)
}

// DefaultOptions returns options for default behavior: zero-padded short output, no size limit.
func DefaultOptions() *Options {
	return &Options{}
}

// StrictOptions returns options that require the output to be filled exactly.
func StrictOptions() *Options {
	return &Options{
		Strict: true,
	}
}
