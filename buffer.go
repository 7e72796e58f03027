package citro3d

// PullFunc supplies more input on demand. It fills p with up to len(p) bytes
// and returns the number of bytes actually supplied. A return of zero or a
// negative value signals end-of-stream or a source error; the two are not
// distinguished. Short positive returns are legal and are retried.
type PullFunc func(p []byte) int

// Buffer is a demand-driven input prefetcher over a PullFunc. It exposes
// exact bulk reads and a single-byte fast path, never requests more than its
// capacity per callback invocation, and counts every byte delivered.
//
// A Buffer is not safe for concurrent use; distinct Buffers are independent.
type Buffer struct {
	data  []byte // read-ahead storage, len(data) is the capacity
	size  int    // bytes currently valid
	pos   int    // next unread byte, pos <= size
	total int64  // bytes ever delivered to the caller
	pull  PullFunc
}

// NewBuffer creates a Buffer with the given read-ahead capacity.
func NewBuffer(capacity int, pull PullFunc) (*Buffer, error) {
	if capacity <= 0 {
		return nil, ErrBufferCapacity
	}
	if pull == nil {
		return nil, ErrNilPull
	}

	return &Buffer{data: make([]byte, capacity), pull: pull}, nil
}

// Read fills dst completely or returns ErrSourceExhausted. Buffered bytes
// are copied out first; the buffer is then refilled with full-capacity pull
// requests until dst is satisfied. A short positive pull is not a failure,
// only a zero or negative return ends the stream.
func (b *Buffer) Read(dst []byte) error {
	for len(dst) > 0 {
		if n := b.size - b.pos; n > 0 {
			if n > len(dst) {
				n = len(dst)
			}
			copy(dst, b.data[b.pos:b.pos+n])
			b.pos += n
			b.total += int64(n)
			dst = dst[n:]
			if len(dst) == 0 {
				return nil
			}
		}

		b.pos, b.size = 0, 0
		rc := b.pull(b.data)
		if rc <= 0 {
			return ErrSourceExhausted
		}
		if rc > len(b.data) {
			rc = len(b.data) // size never exceeds capacity
		}
		b.size = rc
	}

	return nil
}

// GetByte returns the next input byte. If one is already buffered it is
// returned without touching the callback, otherwise it falls back to Read.
func (b *Buffer) GetByte() (byte, error) {
	if b.pos < b.size {
		c := b.data[b.pos]
		b.pos++
		b.total++

		return c, nil
	}

	var one [1]byte
	if err := b.Read(one[:]); err != nil {
		return 0, err
	}

	return one[0], nil
}

// Total returns the number of bytes delivered so far. Collaborators use it
// to learn how far the external stream advanced.
func (b *Buffer) Total() int64 {
	return b.total
}
