// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package stack implements a growable scratch stack used by the parser to
// assemble variable-length values before they are copied into their owners.
package stack

import "fmt"

// DefaultSize is the number of elements allocated by the first push onto a
// stack constructed without an explicit initial size.
const DefaultSize = 256

// A Stack is an append-only buffer of T with push and pop by length.
// The zero value is ready for use and allocates DefaultSize on first push.
//
// Regions returned by Push and Pop alias the stack's storage, and are only
// valid until the next call to Push. The caller must copy anything it needs
// to retain beyond that.
type Stack[T any] struct {
	buf  []T // len(buf) is the capacity in use
	top  int
	init int
}

// New constructs an empty stack whose first allocation holds initial
// elements. If initial <= 0, DefaultSize is used.
func New[T any](initial int) *Stack[T] {
	if initial <= 0 {
		initial = DefaultSize
	}
	return &Stack[T]{init: initial}
}

// Top reports the current top offset of s.
func (s *Stack[T]) Top() int { return s.top }

// Cap reports the number of elements s can hold without growing.
func (s *Stack[T]) Cap() int { return len(s.buf) }

// Push reserves n elements at the top of s and returns the reserved region.
// The storage grows by half its size at a time until the region fits; it
// never shrinks, and previously pushed elements are preserved.
func (s *Stack[T]) Push(n int) []T {
	if n < 0 {
		panic(fmt.Sprintf("stack: push of negative size %d", n))
	}
	if need := s.top + n; need > len(s.buf) {
		size := len(s.buf)
		if size == 0 {
			size = s.initial()
		}
		for need > size {
			size += max(size>>1, 1)
		}
		buf := make([]T, size)
		copy(buf, s.buf[:s.top])
		s.buf = buf
	}
	region := s.buf[s.top : s.top+n : s.top+n]
	s.top += n
	return region
}

// Put pushes a single element onto s.
func (s *Stack[T]) Put(v T) { s.Push(1)[0] = v }

// Pop removes n elements from the top of s and returns them.  The result is
// only valid until the next Push. Pop panics if fewer than n elements are on
// the stack.
func (s *Stack[T]) Pop(n int) []T {
	if n < 0 || n > s.top {
		panic(fmt.Sprintf("stack: pop %d with only %d elements", n, s.top))
	}
	s.top -= n
	return s.buf[s.top : s.top+n : s.top+n]
}

// Rewind discards everything pushed since top was at mark.  Discarded
// elements are zeroed so the stack does not retain references through them.
// Rewind panics if mark is past the current top.
func (s *Stack[T]) Rewind(mark int) {
	if mark < 0 || mark > s.top {
		panic(fmt.Sprintf("stack: rewind to %d past top %d", mark, s.top))
	}
	clear(s.buf[mark:s.top])
	s.top = mark
}

// Release discards the storage of s. It panics if any elements remain on
// the stack, since that means a caller failed to pop or rewind.
func (s *Stack[T]) Release() {
	if s.top != 0 {
		panic(fmt.Sprintf("stack: release with %d elements remaining", s.top))
	}
	s.buf = nil
}

func (s *Stack[T]) initial() int {
	if s.init <= 0 {
		return DefaultSize
	}
	return s.init
}
