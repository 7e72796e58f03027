package citro3d

// SizePolicy defines what happens when a payload header declares more output
// than the supplied regions can hold.
type SizePolicy int

// Size policy constants.
const (
	SizeClamp  SizePolicy = iota // Truncate the decode to the output capacity (default).
	SizeStrict                   // Return ErrOutputTooSmall instead of truncating.
)

// Options configures Decompress, DecompressV and the texture import helpers.
type Options struct {
	// SizePolicy sets clamping vs strict failure for oversized payloads.
	SizePolicy SizePolicy
	// BufferSize is the read-ahead capacity for helpers that create their
	// own Buffer. Zero means DefaultBufferSize.
	BufferSize int
}

// DefaultOptions returns options for default behavior: clamp oversized
// payloads to the output capacity, the caller's buffer is authoritative.
func DefaultOptions() *Options {
	return &Options{
		SizePolicy: SizeClamp,
		BufferSize: DefaultBufferSize,
	}
}

// StrictOptions returns options that fail with ErrOutputTooSmall when the
// declared output size exceeds the supplied capacity.
func StrictOptions() *Options {
	return &Options{
		SizePolicy: SizeStrict,
		BufferSize: DefaultBufferSize,
	}
}
