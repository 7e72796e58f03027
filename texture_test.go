package citro3d

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// u16le appends a little-endian uint16.
func u16le(dst []byte, v uint16) []byte {
	return append(dst, byte(v), byte(v>>8))
}

// textureBlob assembles a container: sub-texture count, params byte, format,
// mipmap levels, sub-texture table, then the compressed payload.
func textureBlob(params byte, format PixelFormat, mips byte, subs [][6]uint16, payload []byte) []byte {
	blob := u16le(nil, uint16(len(subs)))
	blob = append(blob, params, byte(format), mips)
	for _, s := range subs {
		for _, v := range s {
			blob = u16le(blob, v)
		}
	}

	return append(blob, payload...)
}

func rawPayload(data []byte) []byte {
	header := []byte{FormatRaw, byte(len(data)), byte(len(data) >> 8), byte(len(data) >> 16)}
	return append(header, data...)
}

func TestImportTexture2D(t *testing.T) {
	// params 0x08: width 1<<(0+3)=8, height 1<<(1+3)=16, 2D.
	pixels := bytes.Repeat([]byte{0xA5}, 8*16)
	blob := textureBlob(0x08, L8, 0, [][6]uint16{
		{32, 32, 0, 1024, 1024, 0}, // left=0 top=1.0 right=1.0 bottom=0
	}, rawPayload(pixels))

	tex, err := ImportTexture(BytesPull(blob), nil)
	if err != nil {
		t.Fatal(err)
	}

	if tex.Width != 8 || tex.Height != 16 {
		t.Fatalf("dimensions %dx%d", tex.Width, tex.Height)
	}
	if tex.Format != L8 || tex.MipmapLevels != 0 || tex.Cubemap {
		t.Fatalf("format=%d mips=%d cubemap=%v", tex.Format, tex.MipmapLevels, tex.Cubemap)
	}

	wantSub := []SubTexture{{Width: 32, Height: 32, Left: 0, Top: 1, Right: 1, Bottom: 0}}
	if diff := cmp.Diff(wantSub, tex.SubTextures); diff != "" {
		t.Fatalf("sub-textures mismatch (-want +got):\n%s", diff)
	}

	if len(tex.Faces) != 1 || !bytes.Equal(tex.Faces[0], pixels) {
		t.Fatalf("faces=%d", len(tex.Faces))
	}
}

func TestImportTextureCubemap(t *testing.T) {
	// params 0x40: 8x8, cubemap bit set. Six L8 faces of 64 bytes, decoded
	// in one scatter call; the concatenation must equal the raw payload.
	pixels := make([]byte, 6*64)
	for i := range pixels {
		pixels[i] = byte(i)
	}
	blob := textureBlob(0x40, L8, 0, nil, rawPayload(pixels))

	tex, err := ImportTexture(BytesPull(blob), nil)
	if err != nil {
		t.Fatal(err)
	}

	if !tex.Cubemap || len(tex.Faces) != 6 {
		t.Fatalf("cubemap=%v faces=%d", tex.Cubemap, len(tex.Faces))
	}
	for i, face := range tex.Faces {
		if !bytes.Equal(face, pixels[i*64:(i+1)*64]) {
			t.Fatalf("face %d mismatch", i)
		}
	}
}

func TestImportTextureMipChain(t *testing.T) {
	// 8x8 L8 with two mip levels: 64 + 16 + 4 bytes.
	pixels := bytes.Repeat([]byte{0x11}, 84)
	blob := textureBlob(0x00, L8, 2, nil, rawPayload(pixels))

	tex, err := ImportTexture(BytesPull(blob), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(tex.Faces[0]) != 84 {
		t.Fatalf("face size %d, want 84", len(tex.Faces[0]))
	}
}

func TestImportTextureBadPixelFormat(t *testing.T) {
	blob := textureBlob(0x00, PixelFormat(0x7E), 0, nil, nil)

	_, err := ImportTexture(BytesPull(blob), nil)
	if !errors.Is(err, ErrBadPixelFormat) {
		t.Fatalf("want ErrBadPixelFormat, got %v", err)
	}
}

func TestImportTextureReaderConsumed(t *testing.T) {
	pixels := bytes.Repeat([]byte{0x33}, 64)
	blob := textureBlob(0x00, L8, 0, nil, rawPayload(pixels))
	stream := append(append([]byte{}, blob...), []byte("JUNK AFTER TEXTURE")...)

	tex, consumed, err := ImportTextureReader(bytes.NewReader(stream), nil)
	if err != nil {
		t.Fatal(err)
	}
	if tex == nil {
		t.Fatal("nil texture")
	}
	// Read-ahead may pull past the texture, but consumed counts only the
	// bytes the import actually used.
	if consumed != int64(len(blob)) {
		t.Fatalf("consumed=%d want %d", consumed, len(blob))
	}
}

func TestImportTextureReaderNil(t *testing.T) {
	if _, _, err := ImportTextureReader(nil, nil); err != ErrNilReader {
		t.Fatalf("want ErrNilReader, got %v", err)
	}
}

func TestSubTextureCorners(t *testing.T) {
	plain := SubTexture{Left: 0.25, Top: 1, Right: 0.75, Bottom: 0.5}
	if plain.Rotated() {
		t.Fatal("plain sub-texture reported rotated")
	}
	if u, v := plain.TopLeft(); u != 0.25 || v != 1 {
		t.Fatalf("top-left (%v,%v)", u, v)
	}
	if u, v := plain.BottomRight(); u != 0.75 || v != 0.5 {
		t.Fatalf("bottom-right (%v,%v)", u, v)
	}

	rotated := SubTexture{Left: 0.25, Top: 0.5, Right: 0.75, Bottom: 1}
	if !rotated.Rotated() {
		t.Fatal("rotated sub-texture not detected")
	}
	if u, v := rotated.TopLeft(); u != 0.5 || v != 0.25 {
		t.Fatalf("rotated top-left (%v,%v)", u, v)
	}
	if u, v := rotated.BottomLeft(); u != 1 || v != 0.25 {
		t.Fatalf("rotated bottom-left (%v,%v)", u, v)
	}
}

func TestPixelFormatSizes(t *testing.T) {
	cases := []struct {
		format PixelFormat
		pixels int
		want   int
	}{
		{RGBA8, 16, 64},
		{RGB8, 16, 48},
		{RGB565, 16, 32},
		{L8, 16, 16},
		{L4, 16, 8},
		{ETC1, 64, 32},
	}
	for _, c := range cases {
		if got := c.format.dataSize(c.pixels); got != c.want {
			t.Fatalf("format %d: got %d want %d", c.format, got, c.want)
		}
	}
}
