package bigbyte

import (
	"fmt"
	"io"
	"math"
)

// viewWriteChunk bounds how much a view copies per SubArray call while
// streaming; chunks never cross the view's end.
const viewWriteChunk = 32 * 1024

// View projects a contiguous range [offset, offset+length) of a base array
// as an independent Array without copying. It holds no storage of its own:
// every operation forwards to the base with the offset added, so mutation
// through a view is visible through the base and any overlapping view, and
// views can stack on other views.
//
// A View is immutable after construction and inherits the base's thread
// safety.
type View struct {
	base   Array
	offset uint64
	length uint64
}

var _ Array = (*View)(nil)

// NewView returns a view over base covering [offset, offset+length). The
// range must fit inside the base.
func NewView(base Array, offset, length uint64) (*View, error) {
	if base == nil {
		return nil, ErrNilBase
	}
	end := offset + length
	if end < offset || end > base.Length() {
		return nil, fmt.Errorf("view [%d,%d) over array of length %d: %w",
			offset, end, base.Length(), ErrOutOfRange)
	}

	return &View{base: base, offset: offset, length: length}, nil
}

// Length returns the view's own length, not the base's.
func (v *View) Length() uint64 { return v.length }

// Offset returns the view's starting position within the base.
func (v *View) Offset() uint64 { return v.offset }

// Base returns the array this view projects.
func (v *View) Base() Array { return v.base }

// String describes the view's range and what it projects.
func (v *View) String() string {
	if v.length == 0 {
		return fmt.Sprintf("bigbyte.View[] at offset %d of %v", v.offset, v.base)
	}
	return fmt.Sprintf("bigbyte.View[0,%d] at offset %d of %v", v.length-1, v.offset, v.base)
}

// Get returns the byte at view-relative index i.
func (v *View) Get(i uint64) (byte, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, err
	}
	return v.base.Get(v.offset + i)
}

// Put stores v at view-relative index i, writing through to the base.
func (v *View) Put(i uint64, b byte) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	return v.base.Put(v.offset+i, b)
}

// SubArray forwards to the base at the translated offset. As with the base,
// the result is always n bytes; a read that runs past the view's end keeps
// reading the base until the base itself ends.
func (v *View) SubArray(off uint64, n int) ([]byte, error) {
	if err := v.checkIndex(off); err != nil {
		return nil, err
	}
	return v.base.SubArray(v.offset+off, n)
}

// Bytes returns the viewed range as a single slice.
func (v *View) Bytes() ([]byte, error) {
	if v.length > math.MaxInt {
		return nil, fmt.Errorf("view length %d: %w", v.length, ErrTooLarge)
	}
	if v.length == 0 {
		return []byte{}, nil
	}
	return v.base.SubArray(v.offset, int(v.length))
}

// WriteTo streams the viewed range to w in bounded chunks. A zero-length
// view performs no write at all.
func (v *View) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for off := uint64(0); off < v.length; {
		n := uint64(viewWriteChunk)
		if rem := v.length - off; rem < n {
			n = rem
		}

		chunk, err := v.base.SubArray(v.offset+off, int(n))
		if err != nil {
			return written, err
		}

		wn, err := w.Write(chunk)
		written += int64(wn)
		if err != nil {
			return written, fmt.Errorf("write at %d: %w", off, err)
		}
		off += n
	}
	return written, nil
}

func (v *View) checkIndex(i uint64) error {
	if i >= v.length {
		return fmt.Errorf("index %d outside view [0,%d): %w", i, v.length, ErrOutOfRange)
	}
	return nil
}
