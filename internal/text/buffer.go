// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package text

import (
	"errors"
	"math"
	"strings"
)

// ErrReleased is the panic value raised when a Buffer is used after Destroy.
var ErrReleased = errors.New("text: buffer used after release")

// ErrTooLarge is the panic value raised when Repeat would overflow.
var ErrTooLarge = errors.New("text: repeated content too large")

// Buffer is a single mutable string with exactly one owner.
// The zero value is not usable; call New.
type Buffer struct {
	content  *strings.Builder
	released bool
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{content: &strings.Builder{}}
}

// Set discards the current content and replaces it with s.
func (b *Buffer) Set(s string) {
	b.mustLive()
	next := &strings.Builder{}
	next.WriteString(s)
	b.content = next
}

// Repeat extends the buffer with times-1 further copies of its current
// content. Repeat(0) and Repeat(1) leave the content unchanged. It panics
// with ErrTooLarge if the result would not fit in an int.
func (b *Buffer) Repeat(times uint) {
	b.mustLive()
	original := b.content.String()
	if times <= 1 || len(original) == 0 {
		return
	}
	if uint64(times) > uint64(math.MaxInt/len(original)) {
		panic(ErrTooLarge)
	}

	var repeats strings.Builder
	repeats.Grow(len(original) * int(times-1))
	for i := uint(1); i < times; i++ {
		repeats.WriteString(original)
	}

	b.content.WriteString(repeats.String())
}

// Reset truncates the buffer to its own current length, which leaves it
// unchanged.
func (b *Buffer) Reset() {
	b.mustLive()
	b.truncate(b.content.Len())
}

// Destroy releases the buffer's storage. It must be called exactly once.
func (b *Buffer) Destroy() {
	b.mustLive()
	b.content = nil
	b.released = true
}

// String returns the current content.
func (b *Buffer) String() string {
	b.mustLive()
	return b.content.String()
}

// Bytes returns a copy of the current content.
func (b *Buffer) Bytes() []byte {
	b.mustLive()
	return []byte(b.content.String())
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	b.mustLive()
	return b.content.Len()
}

func (b *Buffer) truncate(n int) {
	s := b.content.String()
	if n >= len(s) {
		return
	}
	if n < 0 {
		n = 0
	}
	next := &strings.Builder{}
	next.WriteString(s[:n])
	b.content = next
}

func (b *Buffer) mustLive() {
	if b == nil || b.released {
		panic(ErrReleased)
	}
}
