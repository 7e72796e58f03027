// SPDX-License-Identifier: MIT
// Copyright (c) 2026 citro3d authors
// Source: github.com/Chrs2021/citro3d

package citro3d

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrSourceExhausted   = errors.New("input exhausted before payload was complete")
	ErrUnsupportedFormat = errors.New("unsupported compression format")
	ErrNoOutput          = errors.New("no output regions")
	ErrOutputTooSmall    = errors.New("declared output size exceeds capacity")
	ErrBufferCapacity    = errors.New("buffer capacity must be positive")
	ErrNilPull           = errors.New("pull callback is nil")
	ErrNilReader         = errors.New("reader is nil")
	ErrBadBackReference  = errors.New("back-reference displacement before start of output")
	ErrTreeCorrupt       = errors.New("huffman tree walk out of table bounds")
	ErrBadPixelFormat    = errors.New("unknown pixel format")
)
