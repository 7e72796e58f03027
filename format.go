package citro3d

// Tex3DS compressed-payload format constants.
const (
	FormatRaw     = 0x00 // stored, no compression
	FormatLZ10    = 0x10 // LZSS: 4-bit length nibble (3..18), 12-bit displacement
	FormatLZ11    = 0x11 // LZSS with tiered lengths up to 0x10110
	FormatHuffman = 0x28 // binary Huffman tree, 8-bit symbols
	FormatRLE     = 0x30 // run-length encoding

	// DefaultBufferSize is the read-ahead capacity used when a helper
	// creates its own Buffer.
	DefaultBufferSize = 1024

	headerExtend   = 0x80 // header byte 0 bit 7: 32-bit output size follows
	huffSymbolBits = 8    // symbol width used by this container
)
