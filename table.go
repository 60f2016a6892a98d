package cprs

// codeTable is the constant class table of the format, four words per row.
// Rows 0-3 describe length classes and rows 4-19 (word offset 16) describe
// distance classes as (extra bits, correction, base, unused). The remaining
// rows are never addressed by the decoder.
var codeTable = [192]uint32{
	0x00000001, 0x00000003, 0x00000000, 0x00000001,
	0x00000001, 0x00000003, 0x00000002, 0x00000003,
	0x00000003, 0x00000005, 0x00000004, 0x0000000b,
	0x00000008, 0x0000000a, 0x0000000c, 0x0000010a,
	0x00000002, 0x00000006, 0x00000000, 0x00000003,
	0x00000002, 0x00000006, 0x00000004, 0x00000007,
	0x00000002, 0x00000006, 0x00000008, 0x0000000b,
	0x00000003, 0x00000007, 0x0000000c, 0x00000013,
	0x00000004, 0x00000008, 0x00000014, 0x00000023,
	0x00000005, 0x00000009, 0x00000024, 0x00000043,
	0x00000006, 0x0000000a, 0x00000044, 0x00000083,
	0x00000007, 0x0000000b, 0x00000084, 0x00000103,
	0x00000008, 0x0000000c, 0x00000104, 0x00000203,
	0x00000009, 0x0000000d, 0x00000204, 0x00000403,
	0x0000000a, 0x0000000e, 0x00000404, 0x00000803,
	0x0000000b, 0x0000000f, 0x00000804, 0x00001003,
	0x0000000c, 0x00000010, 0x00001004, 0x00002003,
	0x0000000d, 0x00000011, 0x00002004, 0x00004003,
	0x0000000e, 0x00000012, 0x00004004, 0x00008003,
	0x0000000f, 0x00000013, 0x00008004, 0x00010002,
	0x00000001, 0x00000002, 0x00000004, 0x00000008,
	0x00000010, 0x00000020, 0x00000040, 0x00000080,
	0x00000100, 0x00000200, 0x00000400, 0x00000800,
	0x00001000, 0x00002000, 0x00004000, 0x00008000,
	0x00010000, 0x00020000, 0x00040000, 0x00080000,
	0x00000009, 0x00000012, 0x00000024, 0x00000048,
	0x00000090, 0x00000120, 0x00000240, 0x00000480,
	0x00000900, 0x00001200, 0x00002400, 0x00004800,
	0x00000001, 0x00009000, 0x00002490, 0x00010900,
	0x00004349, 0x00000091, 0x00019024, 0x00002599,
	0x00051941, 0x0005d34b, 0x00004101, 0x00008001,
	0x0000b080, 0x00082c94, 0x00014308, 0x0004d183,
	0x000880b5, 0x0003f8ad, 0x000cadd5, 0x0004f7db,
	0x00010901, 0x0000d349, 0x00002401, 0x00009924,
	0x000066d0, 0x000519d0, 0x0004436f, 0x00006498,
	0x00059940, 0x000563cb, 0x00086d95, 0x0001c309,
	0x00000000, 0x00c602b5, 0x018c016b, 0x01ce037b,
	0x02940021, 0x01290042, 0x01ad0231, 0x02520084,
	0x031802d6, 0x0210014a, 0x039c02f7, 0x027303de,
	0x03bd00e7, 0x035a0063, 0x01ef0339, 0x00a50108,
	0x015502aa, 0x0372025b, 0x00b702e5, 0x00100200,
	0x01f602cf, 0x019f03ec, 0x039602dc, 0x03d9033e,
	0x01cb016e, 0x00fb0367, 0x00010020, 0x00040080,
	0x00080100, 0x01b9032d, 0x00020040, 0x027d03b3,
	0x021d0160, 0x03b0000b, 0x00240111, 0x00810228,
	0x0335019b, 0x02b9036c, 0x02d500b6, 0x02b602c5,
	0x01e30185, 0x006f00ac, 0x03b502a2, 0x02bd0055,
	0x02690192, 0x0133024c, 0x02f501f4, 0x02b7028f,
}

const (
	lengthClasses   = 4
	distanceClasses = 16
	rowWords        = 4
	distanceOffset  = 16 // Word offset of the first distance class row.
)

// code is one decoded class row.
type code struct {
	extraBits  uint32 // Number of raw bits following the class index.
	correction uint32 // Second column; only distance rows feed it into the length.
	base       uint32 // Value added to the raw extra bits.
}

// mask returns the extra bit mask of the row.
func (c code) mask() uint32 {
	return 1<<c.extraBits - 1
}

// lengthBonus is the per-token length term carried by a distance row.
func (c code) lengthBonus() uint32 {
	return (c.correction + 0xb) >> 3
}

var (
	lengthCodes   = loadCodes(0, lengthClasses)
	distanceCodes = loadCodes(distanceOffset, distanceClasses)
)

// loadCodes reads n consecutive rows of codeTable starting at word offset.
func loadCodes(offset, n int) []code {
	codes := make([]code, n)
	for i := range codes {
		row := codeTable[offset+i*rowWords:]
		codes[i] = code{extraBits: row[0], correction: row[1], base: row[2]}
	}

	return codes
}
