package citro3d

// lz10Decode decodes an LZSS/LZ10 payload. One flag byte gates eight blocks,
// consumed most-significant bit first: 0 copies a raw byte from input, 1
// reads a two-byte (length, displacement) back-reference. length is the high
// nibble + 3 (3..18), displacement is the low nibble and a second byte
// (0..4095); the copy source starts displacement+1 bytes behind the cursor.
func lz10Decode(b *Buffer, iov []IOVec, size int) error {
	out := iovBegin(iov)

	var flags, mask byte // mask 0 forces a flag fetch on the first block

	for size > 0 {
		if mask == 0 {
			f, err := b.GetByte()
			if err != nil {
				return err
			}

			flags = f
			mask = 0x80
		}

		if flags&mask != 0 {
			hi, err := b.GetByte()
			if err != nil {
				return err
			}
			lo, err := b.GetByte()
			if err != nil {
				return err
			}

			length := int(hi>>4) + 3
			disp := int(hi&0x0F)<<8 | int(lo)

			if length > size {
				length = size
			}
			size -= length

			src := out
			if !src.sub(disp + 1) {
				return ErrBadBackReference
			}
			out.copyBack(&src, length)
		} else {
			c, err := b.GetByte()
			if err != nil {
				return err
			}

			out.put(c)
			size--
		}

		mask >>= 1
	}

	return nil
}
