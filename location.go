package jvalue

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// locate returns the line and column of offset off in src.
func locate(src mem.RO, off int) LineCol {
	lc := LineCol{Line: 1}
	for src.Len() != 0 {
		i := mem.IndexByte(src, '\n')
		if i < 0 || i >= off {
			break
		}
		lc.Line++
		off -= i + 1
		src = src.SliceFrom(i + 1)
	}
	lc.Column = off
	return lc
}

// offsetOf returns the offset in src of lc, the inverse of locate. A location
// past the end of its line or of src is clamped.
func offsetOf(src mem.RO, lc LineCol) int {
	off := 0
	for line := 1; line < lc.Line; line++ {
		i := mem.IndexByte(src.SliceFrom(off), '\n')
		if i < 0 {
			return src.Len()
		}
		off += i + 1
	}
	end := src.Len()
	if i := mem.IndexByte(src.SliceFrom(off), '\n'); i >= 0 {
		end = off + i
	}
	return min(off+max(lc.Column, 0), end)
}
