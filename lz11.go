package citro3d

// lz11Decode decodes an LZ11 payload. The outer loop matches LZ10 (one flag
// byte per eight blocks, MSB first), but compressed-block lengths come in
// three tiers keyed by the high nibble of the first byte:
//
//	0: two more bytes, length = 8+4 bits + 0x11   (0x11..0x110)
//	1: three more bytes, length = 4+8+4 bits + 0x111 (0x111..0x10110)
//	n: one more byte, length = n + 1              (1..16)
//
// In every tier the final consumed byte's low nibble plus one further byte
// form the 12-bit displacement, exactly as in LZ10.
func lz11Decode(b *Buffer, iov []IOVec, size int) error {
	out := iovBegin(iov)

	for size > 0 {
		flags, err := b.GetByte()
		if err != nil {
			return err
		}

		for i := 0; i < 8 && size > 0; i, flags = i+1, flags<<1 {
			if flags&0x80 == 0 {
				c, err := b.GetByte()
				if err != nil {
					return err
				}

				out.put(c)
				size--
				continue
			}

			b0, err := b.GetByte()
			if err != nil {
				return err
			}

			var length, disp int

			switch b0 >> 4 {
			case 0: // extended block
				b1, err := b.GetByte()
				if err != nil {
					return err
				}
				b2, err := b.GetByte()
				if err != nil {
					return err
				}

				length = int(b0)<<4 | int(b1)>>4
				length += 0x11
				disp = int(b1&0x0F)<<8 | int(b2)

			case 1: // extra-extended block
				b1, err := b.GetByte()
				if err != nil {
					return err
				}
				b2, err := b.GetByte()
				if err != nil {
					return err
				}
				b3, err := b.GetByte()
				if err != nil {
					return err
				}

				length = int(b0&0x0F)<<12 | int(b1)<<4 | int(b2)>>4
				length += 0x111
				disp = int(b2&0x0F)<<8 | int(b3)

			default: // normal block
				b1, err := b.GetByte()
				if err != nil {
					return err
				}

				length = int(b0>>4) + 1
				disp = int(b0&0x0F)<<8 | int(b1)
			}

			if length > size {
				length = size
			}
			size -= length

			src := out
			if !src.sub(disp + 1) {
				return ErrBadBackReference
			}
			out.copyBack(&src, length)
		}
	}

	return nil
}
