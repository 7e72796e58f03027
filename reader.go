package citro3d

import "io"

// ReaderPull adapts an io.Reader to a PullFunc. Bytes returned alongside an
// error are delivered first; the error surfaces as end-of-stream on the next
// pull.
func ReaderPull(r io.Reader) PullFunc {
	return func(p []byte) int {
		n, _ := r.Read(p)
		if n > 0 {
			return n
		}

		return 0
	}
}

// BytesPull adapts a byte slice to a PullFunc. Each call consumes from the
// front of the remaining slice.
func BytesPull(src []byte) PullFunc {
	return func(p []byte) int {
		n := copy(p, src)
		src = src[n:]

		return n
	}
}
