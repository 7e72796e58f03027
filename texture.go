package citro3d

import (
	"encoding/binary"
	"fmt"
	"io"
)

// PixelFormat is the GPU color format of a texture.
type PixelFormat uint8

// Pixel formats, in wire order.
const (
	RGBA8 PixelFormat = iota
	RGB8
	RGBA5551
	RGB565
	RGBA4
	LA8
	HILO8
	L8
	A8
	LA4
	L4
	A4
	ETC1
	ETC1A4
)

// dataSize returns the byte size of n pixels, 0 for unknown formats.
func (f PixelFormat) dataSize(n int) int {
	switch f {
	case RGBA8:
		return n * 4
	case RGB8:
		return n * 3
	case RGBA5551, RGB565, RGBA4, LA8, HILO8:
		return n * 2
	case L8, A8, LA4, ETC1A4:
		return n
	case L4, A4, ETC1:
		return n / 2
	}

	return 0
}

// SubTexture is one atlas entry: pixel dimensions and texcoords in texture
// space. Coordinates are decoded from 1/1024 fixed point.
type SubTexture struct {
	Width  uint16
	Height uint16
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// Rotated reports whether the sub-texture is stored rotated 90 degrees.
func (s *SubTexture) Rotated() bool {
	return s.Top < s.Bottom
}

// TopLeft returns the top-left texcoords, accounting for rotation.
func (s *SubTexture) TopLeft() (u, v float32) {
	if s.Rotated() {
		return s.Top, s.Left
	}

	return s.Left, s.Top
}

// TopRight returns the top-right texcoords, accounting for rotation.
func (s *SubTexture) TopRight() (u, v float32) {
	if s.Rotated() {
		return s.Top, s.Right
	}

	return s.Right, s.Top
}

// BottomLeft returns the bottom-left texcoords, accounting for rotation.
func (s *SubTexture) BottomLeft() (u, v float32) {
	if s.Rotated() {
		return s.Bottom, s.Left
	}

	return s.Left, s.Bottom
}

// BottomRight returns the bottom-right texcoords, accounting for rotation.
func (s *SubTexture) BottomRight() (u, v float32) {
	if s.Rotated() {
		return s.Bottom, s.Right
	}

	return s.Right, s.Bottom
}

// Texture is a parsed Tex3DS container with its decoded pixel data.
type Texture struct {
	Width        int
	Height       int
	Format       PixelFormat
	MipmapLevels int
	Cubemap      bool
	SubTextures  []SubTexture

	// Faces holds the decoded data: one element for 2D textures, six for
	// cubemaps. Each face contains the full mip chain, largest level first.
	Faces [][]byte
}

// ImportTexture parses a Tex3DS container supplied by pull and decodes its
// payload. Cubemap faces are allocated as six independent regions and filled
// by a single scatter decode.
func ImportTexture(pull PullFunc, opts *Options) (*Texture, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	capacity := opts.BufferSize
	if capacity == 0 {
		capacity = DefaultBufferSize
	}

	b, err := NewBuffer(capacity, pull)
	if err != nil {
		return nil, err
	}

	return importTexture(b, opts)
}

// ImportTextureReader parses a Tex3DS container from r, starting at the
// reader's current position. It returns the texture and the number of input
// bytes consumed, so seekable callers can reposition the stream past the
// texture (read-ahead may have pulled further). Consumed is valid even when
// the import fails.
func ImportTextureReader(r io.Reader, opts *Options) (*Texture, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	capacity := opts.BufferSize
	if capacity == 0 {
		capacity = DefaultBufferSize
	}

	b, err := NewBuffer(capacity, ReaderPull(r))
	if err != nil {
		return nil, 0, err
	}

	tex, err := importTexture(b, opts)

	return tex, b.Total(), err
}

// importTexture decodes the container header, sub-texture table and payload.
func importTexture(b *Buffer, opts *Options) (*Texture, error) {
	numSub, err := decodeU16(b)
	if err != nil {
		return nil, err
	}

	params, err := b.GetByte()
	if err != nil {
		return nil, err
	}

	format, err := b.GetByte()
	if err != nil {
		return nil, err
	}

	mipmapLevels, err := b.GetByte()
	if err != nil {
		return nil, err
	}

	tex := &Texture{
		Width:        1 << ((params>>0)&0x7 + 3),
		Height:       1 << ((params>>3)&0x7 + 3),
		Format:       PixelFormat(format),
		MipmapLevels: int(mipmapLevels),
		Cubemap:      (params>>6)&1 == 1,
		SubTextures:  make([]SubTexture, numSub),
	}

	for i := range tex.SubTextures {
		if err := decodeSubTexture(b, &tex.SubTextures[i]); err != nil {
			return nil, err
		}
	}

	faceSize := tex.Format.dataSize(tex.Width * tex.Height)
	if faceSize == 0 {
		return nil, fmt.Errorf("%w: 0x%02x", ErrBadPixelFormat, format)
	}
	faceSize = mipChainSize(faceSize, tex.MipmapLevels)

	faces := 1
	if tex.Cubemap {
		faces = 6
	}

	tex.Faces = make([][]byte, faces)
	iov := make([]IOVec, faces)
	for i := range iov {
		tex.Faces[i] = make([]byte, faceSize)
		iov[i].Data = tex.Faces[i]
	}

	if err := DecompressV(b, iov, opts); err != nil {
		return nil, err
	}

	return tex, nil
}

// mipChainSize returns the base level size plus each successive quarter-size
// mip level.
func mipChainSize(base, levels int) int {
	total := base
	for i := 0; i < levels; i++ {
		base /= 4
		total += base
	}

	return total
}

// decodeU16 reads a little-endian uint16.
func decodeU16(b *Buffer) (uint16, error) {
	var buf [2]byte
	if err := b.Read(buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(buf[:]), nil
}

// decodeFixed reads a texcoord stored as 1/1024 fixed point.
func decodeFixed(b *Buffer) (float32, error) {
	v, err := decodeU16(b)
	if err != nil {
		return 0, err
	}

	return float32(v) / 1024, nil
}

// decodeSubTexture reads one sub-texture table entry.
func decodeSubTexture(b *Buffer, s *SubTexture) error {
	var err error
	if s.Width, err = decodeU16(b); err != nil {
		return err
	}
	if s.Height, err = decodeU16(b); err != nil {
		return err
	}
	if s.Left, err = decodeFixed(b); err != nil {
		return err
	}
	if s.Top, err = decodeFixed(b); err != nil {
		return err
	}
	if s.Right, err = decodeFixed(b); err != nil {
		return err
	}

	s.Bottom, err = decodeFixed(b)

	return err
}
