package citro3d

// rleDecode decodes a run-length payload. Each block opens with a header
// byte: high bit set means a run of (low 7 bits)+3 copies of the next byte
// (3..130), high bit clear means (low 7 bits)+1 literal bytes copied from
// input (1..128). Block lengths clamp to the remaining target.
func rleDecode(b *Buffer, iov []IOVec, size int) error {
	out := iovBegin(iov)

	for size > 0 {
		header, err := b.GetByte()
		if err != nil {
			return err
		}

		if header&0x80 != 0 {
			length := int(header&0x7F) + 3
			if length > size {
				length = size
			}
			size -= length

			value, err := b.GetByte()
			if err != nil {
				return err
			}

			out.fill(value, length)
		} else {
			length := int(header&0x7F) + 1
			if length > size {
				length = size
			}
			size -= length

			if err := out.readFrom(b, length); err != nil {
				return err
			}
		}
	}

	return nil
}
