/*
Package citro3d implements decoding of Tex3DS texture containers and the
compressed payload formats they carry: raw copy, LZSS/LZ10, LZ11, binary
Huffman and run-length encoding.

Payload header: algorithm id byte (0x00 raw, 0x10 LZ10, 0x11 LZ11, 0x28
Huffman, 0x30 RLE; bit 7 = 32-bit size follows), then 24-bit LE output size.
LZ back-references: 12-bit displacement backward from the output cursor,
length 3..18 (LZ10) or up to 0x10110 (LZ11); displacement may be shorter than
length, which repeats freshly written bytes.

Input is pull-based: the decoder requests bytes on demand through a PullFunc
and buffers read-ahead internally. Output is scatter-based: one or more
caller-allocated regions are written as a single logical space, so a cubemap
can decode straight into six face buffers in one call. A payload declaring
more output than the caller provided is clamped by default; StrictOptions
makes it an error instead. The engine is decode-only.

Use NewBuffer(capacity, pull) to wrap a byte source with read-ahead.
Use Decompress(b, out, opts) to decode one payload into a single buffer.
Use DecompressV(b, iov, opts) to decode one payload across several regions.
Use DecompressAlloc(b, opts) to size the output from the payload header.
Use ImportTexture(pull, opts) to parse a full container and decode its data.
Use ImportTextureReader(r, opts) to import from a stream and learn how many
bytes were consumed.
Use ReaderPull or BytesPull to adapt an io.Reader or a byte slice.

# Examples

Decode a compressed payload of known size from a file:

	b, err := citro3d.NewBuffer(1024, citro3d.ReaderPull(f))
	if err != nil {
		return err
	}
	out := make([]byte, expectedLen)
	if err := citro3d.Decompress(b, out, nil); err != nil {
		return err
	}

Decode into two regions as one output space:

	iov := []citro3d.IOVec{{Data: first}, {Data: second}}
	if err := citro3d.DecompressV(b, iov, nil); err != nil {
		return err
	}

Import a texture and reposition the stream after it:

	tex, consumed, err := citro3d.ImportTextureReader(f, nil)
	if err != nil {
		return err
	}
	_, err = f.Seek(start+consumed, io.SeekStart)

Fail instead of truncating when the caller's buffer is too small:

	err := citro3d.Decompress(b, out, citro3d.StrictOptions())
*/
package citro3d
