package citro3d

import "fmt"

// Decompress decodes one compressed payload from b into out.
// Options nil means DefaultOptions (oversized payloads clamp to capacity).
func Decompress(b *Buffer, out []byte, opts *Options) error {
	return DecompressV(b, []IOVec{{Data: out}}, opts)
}

// DecompressV decodes one compressed payload from b into the region sequence
// iov, treating the regions as one contiguous output space. On failure the
// regions hold an unspecified partial state.
func DecompressV(b *Buffer, iov []IOVec, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(iov) == 0 {
		return ErrNoOutput
	}

	format, declared, err := readHeader(b)
	if err != nil {
		return err
	}

	size := int(declared)
	if capacity := iovSize(iov); uint64(declared) > uint64(capacity) {
		if opts.SizePolicy == SizeStrict {
			return fmt.Errorf("%w: declared=%d capacity=%d", ErrOutputTooSmall, declared, capacity)
		}
		size = capacity
	}

	return dispatch(format, b, iov, size)
}

// DecompressAlloc decodes one compressed payload from b into a new buffer
// sized from the container header.
func DecompressAlloc(b *Buffer, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	format, declared, err := readHeader(b)
	if err != nil {
		return nil, err
	}

	out := make([]byte, declared)
	if err := dispatch(format, b, []IOVec{{Data: out}}, len(out)); err != nil {
		return nil, err
	}

	return out, nil
}

// readHeader reads the container header: algorithm id in byte 0 bits 0-6 and
// a 24-bit little-endian output size. When bit 7 of byte 0 is set the header
// is 8 bytes; byte 4 extends the size to 32 bits, bytes 5-7 are reserved.
func readHeader(b *Buffer) (format byte, size uint32, err error) {
	var header [4]byte
	if err := b.Read(header[:]); err != nil {
		return 0, 0, err
	}

	format = header[0]
	size = uint32(header[1]) | uint32(header[2])<<8 | uint32(header[3])<<16

	if format&headerExtend != 0 {
		format &^= headerExtend

		var ext [4]byte
		if err := b.Read(ext[:]); err != nil {
			return 0, 0, err
		}

		size |= uint32(ext[0]) << 24
	}

	return format, size, nil
}

// dispatch runs the decoder selected by the algorithm id until exactly size
// output bytes are produced. Raw payloads are a direct input-to-output copy.
func dispatch(format byte, b *Buffer, iov []IOVec, size int) error {
	switch format {
	case FormatRaw:
		out := iovBegin(iov)
		return out.readFrom(b, size)

	case FormatLZ10:
		return lz10Decode(b, iov, size)

	case FormatLZ11:
		return lz11Decode(b, iov, size)

	case FormatHuffman:
		return huffDecode(b, iov, size)

	case FormatRLE:
		return rleDecode(b, iov, size)
	}

	return fmt.Errorf("%w: 0x%02x", ErrUnsupportedFormat, format)
}
