// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/cprs

package cprs

import (
	"errors"
	"fmt"
)

// ErrFormat is the parent of every container validation error.
var ErrFormat = errors.New("malformed cprs container")

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrMisaligned      = fmt.Errorf("%w: length is not a multiple of 4", ErrFormat)
	ErrTooShort        = fmt.Errorf("%w: shorter than header", ErrFormat)
	ErrBadSignature    = fmt.Errorf("%w: leading signature mismatch", ErrFormat)
	ErrBadTrailer      = fmt.Errorf("%w: trailing signature mismatch", ErrFormat)
	ErrTruncated       = errors.New("bitstream ended before terminal token")
	ErrOutputOverrun   = errors.New("decoded data exceeds declared size")
	ErrInvalidDistance = fmt.Errorf("%w: back-reference before start of output", ErrOutputOverrun)
	ErrShortOutput     = errors.New("terminal token before declared size was reached")
	ErrOutputTooLarge  = errors.New("declared size exceeds limit")
	ErrNilReader       = errors.New("reader is nil")
)
