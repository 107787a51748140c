package bigbyte

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sourcegraph/conc/pool"
)

// ReadArray constructs an array of the declared length from a sequential
// byte source, filling it one block at a time through the engine's own
// materialization path. Blocks that turn out to be all zero are left
// unallocated, so a sparse source produces a sparse array. A source that
// ends before length bytes were delivered fails with ErrTruncatedSource.
func ReadArray(r io.Reader, length uint64, opts ...Option) (*BlockArray, error) {
	if r == nil {
		return nil, fmt.Errorf("nil source: %w", ErrInvalidArgument)
	}

	a, err := New(length, opts...)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, a.blockSize)
	var pos uint64
	for bi := uint64(0); pos < length; bi++ {
		n := a.blockSize
		if rem := length - pos; rem < n {
			n = rem
		}

		if _, err := io.ReadFull(r, buf[:n]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("position %d of %d: %w", pos, length, ErrTruncatedSource)
			}
			return nil, fmt.Errorf("read block %d: %w", bi, err)
		}

		a.fillBlock(bi, buf[:n])
		pos += n
	}
	return a, nil
}

// ReadArrayAt is ReadArray for random-access sources: blocks are loaded
// concurrently with a bounded goroutine pool (WithConcurrency), which pays
// off for file-backed sources. Contract and sparsity behavior are identical
// to ReadArray.
func ReadArrayAt(ctx context.Context, r io.ReaderAt, length uint64, opts ...Option) (*BlockArray, error) {
	if r == nil {
		return nil, fmt.Errorf("nil source: %w", ErrInvalidArgument)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	a, err := New(length, opts...)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return a, nil
	}

	p := pool.New().
		WithMaxGoroutines(options.Concurrency).
		WithContext(ctx).
		WithCancelOnError()

	maxBlock := a.maxBlockIndex()
	for bi := uint64(0); bi <= maxBlock; bi++ {
		bi := bi // per-iteration copy: module targets go >= 1.22 semantics, toolchain is 1.21
		p.Go(func(ctx context.Context) error {
			off := bi * a.blockSize
			n := a.blockSize
			if rem := length - off; rem < n {
				n = rem
			}

			buf := make([]byte, n)
			rn, err := r.ReadAt(buf, int64(off))
			if rn < len(buf) {
				if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					return fmt.Errorf("position %d of %d: %w", off+uint64(rn), length, ErrTruncatedSource)
				}
				return fmt.Errorf("read block %d: %w", bi, err)
			}

			a.fillBlock(bi, buf)
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return a, nil
}

// Reader is a sequential read adapter over any Array. It keeps its own
// cursor, answers io.EOF at the end of the array, and pulls bulk reads
// through the SubArray fast path. Reader is not safe for concurrent use;
// the underlying array is.
type Reader struct {
	arr  Array
	pos  uint64
	mark uint64
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.Seeker     = (*Reader)(nil)
)

// NewReader returns a Reader positioned at index 0.
func NewReader(a Array) (*Reader, error) {
	if a == nil {
		return nil, ErrNilBase
	}
	return &Reader{arr: a}, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= r.arr.Length() {
		return 0, io.EOF
	}

	n := uint64(len(p))
	if rem := r.arr.Length() - r.pos; rem < n {
		n = rem
	}
	if n == 0 {
		return 0, nil
	}

	chunk, err := r.arr.SubArray(r.pos, int(n))
	if err != nil {
		return 0, err
	}
	copy(p, chunk)
	r.pos += n
	return int(n), nil
}

func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= r.arr.Length() {
		return 0, io.EOF
	}

	b, err := r.arr.Get(r.pos)
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// Mark remembers the current position for a later Reset.
func (r *Reader) Mark() { r.mark = r.pos }

// Reset moves the cursor back to the last Mark, or to 0 if none was set.
func (r *Reader) Reset() { r.pos = r.mark }

func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = int64(r.pos) + offset
	case io.SeekEnd:
		next = int64(r.arr.Length()) + offset
	default:
		return 0, fmt.Errorf("seek whence %d: %w", whence, ErrInvalidArgument)
	}
	if next < 0 {
		return 0, fmt.Errorf("seek to %d: %w", next, ErrInvalidArgument)
	}
	r.pos = uint64(next)
	return next, nil
}
