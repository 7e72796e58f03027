package citro3d

import (
	"bytes"
	"testing"
)

// trickle returns a pull that supplies exactly one byte per invocation,
// exercising the short-read retry path.
func trickle(src []byte) PullFunc {
	return func(p []byte) int {
		if len(src) == 0 {
			return 0
		}

		p[0] = src[0]
		src = src[1:]

		return 1
	}
}

func TestNewBufferBadCapacity(t *testing.T) {
	if _, err := NewBuffer(0, BytesPull(nil)); err != ErrBufferCapacity {
		t.Fatalf("want ErrBufferCapacity, got %v", err)
	}
	if _, err := NewBuffer(-1, BytesPull(nil)); err != ErrBufferCapacity {
		t.Fatalf("want ErrBufferCapacity, got %v", err)
	}
}

func TestNewBufferNilPull(t *testing.T) {
	if _, err := NewBuffer(16, nil); err != ErrNilPull {
		t.Fatalf("want ErrNilPull, got %v", err)
	}
}

func TestReadShortReadsRetried(t *testing.T) {
	src := []byte("short reads are not failures")
	b, err := NewBuffer(8, trickle(src))
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]byte, len(src))
	if err := b.Read(dst); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, dst) {
		t.Fatalf("got %q", dst)
	}
	if b.Total() != int64(len(src)) {
		t.Fatalf("total=%d want %d", b.Total(), len(src))
	}
}

func TestReadSourceExhausted(t *testing.T) {
	// Pull yields 3 bytes then signals end of stream.
	b, err := NewBuffer(8, BytesPull([]byte{1, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]byte, 5)
	if err := b.Read(dst); err != ErrSourceExhausted {
		t.Fatalf("want ErrSourceExhausted, got %v", err)
	}
	if b.Total() != 3 {
		t.Fatalf("total=%d want 3 (only delivered bytes)", b.Total())
	}
}

func TestGetByteFastPath(t *testing.T) {
	calls := 0
	src := bytes.Repeat([]byte{0x5A}, 16)
	pull := func(p []byte) int {
		calls++
		return copy(p, src)
	}

	b, err := NewBuffer(16, pull)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 16; i++ {
		c, err := b.GetByte()
		if err != nil {
			t.Fatal(err)
		}
		if c != 0x5A {
			t.Fatalf("byte %d: got %#x", i, c)
		}
	}

	// First byte triggers one refill; the other 15 come from the buffer.
	if calls != 1 {
		t.Fatalf("callback invoked %d times, want 1", calls)
	}
	if b.Total() != 16 {
		t.Fatalf("total=%d want 16", b.Total())
	}
}

func TestPullNeverExceedsCapacity(t *testing.T) {
	const capacity = 4
	pull := func(p []byte) int {
		if len(p) != capacity {
			t.Fatalf("pull request of %d bytes, capacity is %d", len(p), capacity)
		}
		for i := range p {
			p[i] = byte(i)
		}
		return len(p)
	}

	b, err := NewBuffer(capacity, pull)
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]byte, 10)
	if err := b.Read(dst); err != nil {
		t.Fatal(err)
	}
}

func TestReaderPullDeliversThenEOF(t *testing.T) {
	b, err := NewBuffer(8, ReaderPull(bytes.NewReader([]byte("abc"))))
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]byte, 3)
	if err := b.Read(dst); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst, []byte("abc")) {
		t.Fatalf("got %q", dst)
	}
	if _, err := b.GetByte(); err != ErrSourceExhausted {
		t.Fatalf("want ErrSourceExhausted, got %v", err)
	}
}
