package citro3d

// IOVec is one output region: an independently allocated byte slice. An
// ordered sequence of IOVecs forms one logical output space; the decoder
// writes it in region order and never allocates output of its own.
type IOVec struct {
	Data []byte
}

// iovSize returns the total capacity of a region sequence.
func iovSize(iov []IOVec) int {
	size := 0
	for i := range iov {
		size += len(iov[i].Data)
	}

	return size
}

// iovIter is a positional cursor over a region sequence: (region index,
// offset within region). When all output has been produced it sits at the
// one-past-the-end sentinel (num == len(iov), pos == 0); at every other time
// pos addresses a writable byte. Pure positional state, copyable by value.
type iovIter struct {
	iov []IOVec
	num int // current region index
	pos int // offset within current region
}

// iovBegin returns a cursor at the first writable byte of the region
// sequence.
func iovBegin(iov []IOVec) iovIter {
	it := iovIter{iov: iov}
	it.norm()

	return it
}

// norm rolls the cursor forward past exhausted and zero-length regions so
// that it either addresses a writable byte or sits at the sentinel. Region
// sequences may legally contain empty regions.
func (it *iovIter) norm() {
	for it.num < len(it.iov) && it.pos == len(it.iov[it.num].Data) {
		it.num++
		it.pos = 0
	}
}

// put writes one byte at the cursor and advances it, rolling into the next
// region when the current one is exhausted.
func (it *iovIter) put(b byte) {
	it.norm()
	it.iov[it.num].Data[it.pos] = b
	it.pos++
	it.norm()
}

// add moves the cursor forward by n bytes, possibly crossing region
// boundaries.
func (it *iovIter) add(n int) {
	for n > 0 {
		left := len(it.iov[it.num].Data) - it.pos
		if left > n {
			it.pos += n
			return
		}

		n -= left
		it.num++
		it.pos = 0
	}
}

// sub moves the cursor backward by n bytes, possibly crossing region
// boundaries backward. It reports whether the move stayed inside the output:
// hostile back-references can point before the first output byte.
func (it *iovIter) sub(n int) bool {
	for it.pos < n {
		if it.num == 0 {
			return false
		}

		n -= it.pos
		it.num--
		it.pos = len(it.iov[it.num].Data)
	}

	it.pos -= n

	return true
}

// copyBack copies n bytes from src to it in ascending order, one byte at a
// time. Back-references may have a displacement shorter than the run length,
// so src can overlap bytes not yet written; each written byte must be
// visible to the next read. A block copy does not handle that overlap.
func (it *iovIter) copyBack(src *iovIter, n int) {
	for n > 0 {
		it.norm()
		src.norm()
		dst := it.iov[it.num].Data[it.pos:]
		from := src.iov[src.num].Data[src.pos:]

		chunk := len(dst)
		if len(from) < chunk {
			chunk = len(from)
		}
		if n < chunk {
			chunk = n
		}

		for i := 0; i < chunk; i++ {
			dst[i] = from[i]
		}

		n -= chunk
		it.add(chunk)
		src.add(chunk)
	}
}

// fill writes n copies of v starting at the cursor, crossing region
// boundaries as needed.
func (it *iovIter) fill(v byte, n int) {
	for n > 0 {
		it.norm()
		chunk := len(it.iov[it.num].Data) - it.pos
		if n < chunk {
			chunk = n
		}

		seg := it.iov[it.num].Data[it.pos : it.pos+chunk]
		for i := range seg {
			seg[i] = v
		}

		n -= chunk
		it.add(chunk)
	}
}

// readFrom pulls n bytes from the input buffer directly into the output,
// chunked at region boundaries. Input failures propagate.
func (it *iovIter) readFrom(b *Buffer, n int) error {
	for n > 0 {
		it.norm()
		chunk := len(it.iov[it.num].Data) - it.pos
		if n < chunk {
			chunk = n
		}

		if err := b.Read(it.iov[it.num].Data[it.pos : it.pos+chunk]); err != nil {
			return err
		}

		n -= chunk
		it.add(chunk)
	}

	return nil
}
