package cprs

import "fmt"

// TokenKind classifies a decoded token.
type TokenKind uint8

// Token kinds.
const (
	TokenLiteral  TokenKind = iota // One raw byte.
	TokenRunFill                   // Repeat of the last emitted byte.
	TokenMatch                     // Copy from earlier output.
	TokenTerminal                  // End of stream.
)

// String returns the kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenRunFill:
		return "run"
	case TokenMatch:
		return "match"
	case TokenTerminal:
		return "end"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}

// Token is one decoded step of the bitstream.
type Token struct {
	Kind     TokenKind
	Literal  byte  // Byte value of a literal.
	Length   int   // Output bytes produced by a run or match.
	Distance int   // Backward distance of a match in bytes.
	Bits     uint8 // Bits consumed from the window.
	Offset   int   // Output position where the token starts.
}

// String formats the token for traces.
func (t Token) String() string {
	switch t.Kind {
	case TokenLiteral:
		return fmt.Sprintf("%08x literal 0x%02x", t.Offset, t.Literal)
	case TokenRunFill:
		return fmt.Sprintf("%08x run len=%d", t.Offset, t.Length)
	case TokenMatch:
		return fmt.Sprintf("%08x match len=%d dist=%d", t.Offset, t.Length, t.Distance)
	default:
		return fmt.Sprintf("%08x %s", t.Offset, t.Kind)
	}
}

// decodeToken decodes the token at the bottom of alpha.
//
// Layout, lowest bit first:
//
//	0            literal: 8 bits of byte value
//	1            copy:    2 bits length class, length extra bits,
//	                      4 bits distance class, distance extra bits
//
// A copy with distance 0 is a run fill and a distance at or above
// terminalDistance ends the stream. Match distances are stored in
// two-byte units.
func decodeToken(alpha uint32) Token {
	if alpha&1 == 0 {
		return Token{Kind: TokenLiteral, Literal: byte(alpha >> 1), Length: 1, Bits: literalBits}
	}

	lc := lengthCodes[alpha>>1&(lengthClasses-1)]
	v := alpha >> 3
	length := lc.base + v&lc.mask()
	v >>= lc.extraBits

	dc := distanceCodes[v&(distanceClasses-1)]
	v >>= 4
	distance := dc.base + v&dc.mask()

	bits := uint8(1 + 2 + lc.extraBits + 4 + dc.extraBits)
	if distance >= terminalDistance {
		return Token{Kind: TokenTerminal, Bits: bits}
	}

	length += dc.lengthBonus()
	if distance == 0 {
		return Token{Kind: TokenRunFill, Length: int(length), Bits: bits}
	}

	return Token{Kind: TokenMatch, Length: int(length), Distance: int(distance) * 2, Bits: bits}
}
