package citro3d

import "encoding/binary"

// huffDecode decodes a Huffman payload. The payload opens with a one-byte
// tree-size field followed by (treeSize+1)*2-1 tree bytes. Each node byte
// encodes a child offset in its low 5 bits; bit 7 marks the "left" child as
// a leaf, bit 6 the "right" child. Leaf bytes hold the decoded symbol.
//
// The bitstream is consumed as 32-bit little-endian words, MSB first. The
// walk starts at node index 1 and restarts there after every emitted symbol.
func huffDecode(b *Buffer, iov []IOVec, size int) error {
	tree := make([]byte, 512)
	if err := b.Read(tree[:1]); err != nil {
		return err
	}
	if err := b.Read(tree[1 : (int(tree[0])+1)*2]); err != nil {
		return err
	}

	out := iovBegin(iov)

	const dataMask = 1<<huffSymbolBits - 1
	var word, mask uint32 // mask 0 forces a word fetch on the first bit
	node := 1             // root

	for size > 0 {
		if mask == 0 {
			var wordbuf [4]byte
			if err := b.Read(wordbuf[:]); err != nil {
				return err
			}

			word = binary.LittleEndian.Uint32(wordbuf[:])
			mask = 0x80000000
		}

		offset := int(tree[node] & 0x1F)
		child := (node &^ 1) + offset*2 + 2

		var leaf bool
		if word&mask != 0 {
			child++ // "right" child
			leaf = tree[node]&0x40 != 0
		} else {
			leaf = tree[node]&0x80 != 0
		}

		if child >= len(tree) {
			return ErrTreeCorrupt
		}

		if leaf {
			out.put(tree[child] & dataMask)
			size--
			node = 1
		} else {
			node = child
		}

		mask >>= 1
	}

	return nil
}
