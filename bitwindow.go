package cprs

import (
	"errors"
	"fmt"
	"io"
)

// bitWindow is the rolling view of the bitstream. alpha holds the next 32
// unconsumed bits, lowest bit first. beta is the word fetched most recently,
// and remaining counts how many of its high bits have not entered alpha yet.
type bitWindow struct {
	alpha     uint32
	beta      uint32
	remaining int
	words     wordReader
}

// newBitWindow positions a window on the first payload word of src.
func newBitWindow(src []byte, h Header) bitWindow {
	return bitWindow{
		alpha:     h.Alpha,
		beta:      h.Beta,
		remaining: windowBits,
		words:     wordReader{data: src, pos: HeaderSize},
	}
}

// advance drops n bits from alpha and realigns it, fetching a word when beta
// has been fully shifted in.
func (w *bitWindow) advance(n uint) error {
	carry := w.consume(n)
	if w.remaining < 0 {
		return w.refill()
	}

	w.alpha = carry | w.beta<<uint(w.remaining)

	return nil
}

// consume accounts for n used bits and returns the unused high bits of alpha.
func (w *bitWindow) consume(n uint) uint32 {
	w.remaining -= int(n)

	return w.alpha >> n
}

// refill loads the next word into beta once remaining went negative.
// The bits of the old beta not consumed yet become the low bits of alpha.
func (w *bitWindow) refill() error {
	w.remaining += windowBits
	carry := w.beta >> uint(windowBits-w.remaining)

	pos := w.words.pos
	next, err := w.words.ReadWord()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: no word at offset %d", ErrTruncated, pos)
		}

		return err
	}

	w.beta = next
	w.alpha = carry | w.beta<<uint(w.remaining)

	return nil
}
