package bigbyte

import (
	"fmt"
	"io"
	"math"
	"sync"
)

// BlockArray is the block-backed Array implementation. Storage is a sparse
// map from block index to a fixed-size byte block; a block exists only once
// something was written to it, and absent blocks read as zeros. Length and
// block size are fixed at construction.
//
// All methods are safe for concurrent use. The block map is guarded by a
// per-instance lock, so unrelated arrays never contend.
type BlockArray struct {
	length    uint64
	blockSize uint64

	mu     sync.RWMutex
	blocks map[uint64][]byte
}

var _ Array = (*BlockArray)(nil)

// New returns an empty array of the given length. No blocks are allocated
// until the first write.
func New(length uint64, opts ...Option) (*BlockArray, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.BlockSize <= 0 {
		return nil, fmt.Errorf("block size %d: %w", options.BlockSize, ErrInvalidArgument)
	}

	return &BlockArray{
		length:    length,
		blockSize: uint64(options.BlockSize),
		blocks:    make(map[uint64][]byte),
	}, nil
}

// FromBytes returns a one-block array holding a copy of p. Length and block
// size both equal len(p), so the array never aliases the caller's buffer.
func FromBytes(p []byte) *BlockArray {
	bs := len(p)
	if bs == 0 {
		bs = DefaultBlockSize
	}

	a := &BlockArray{
		length:    uint64(len(p)),
		blockSize: uint64(bs),
		blocks:    make(map[uint64][]byte, 1),
	}
	if len(p) > 0 {
		blk := make([]byte, len(p))
		copy(blk, p)
		a.blocks[0] = blk
	}
	return a
}

// Length returns the number of addressable bytes.
func (a *BlockArray) Length() uint64 { return a.length }

// String describes the array's index range.
func (a *BlockArray) String() string {
	if a.length == 0 {
		return "bigbyte.BlockArray[]"
	}
	return fmt.Sprintf("bigbyte.BlockArray[0,%d]", a.length-1)
}

// BlockSize returns the size of the lazily allocated blocks.
func (a *BlockArray) BlockSize() int { return int(a.blockSize) }

// Get returns the byte at index i, or 0 if its block was never written.
func (a *BlockArray) Get(i uint64) (byte, error) {
	if err := a.checkIndex(i); err != nil {
		return 0, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	if blk := a.blocks[a.blockIndex(i)]; blk != nil {
		return blk[a.indexInBlock(i)], nil
	}
	return 0, nil
}

// Put stores v at index i. The containing block is allocated zero-filled on
// first write; the check-allocate-write sequence happens under one lock, so
// concurrent writers cannot lose a block to each other.
func (a *BlockArray) Put(i uint64, v byte) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	bi := a.blockIndex(i)

	a.mu.Lock()
	defer a.mu.Unlock()

	blk := a.blocks[bi]
	if blk == nil {
		blk = make([]byte, a.blockSize)
		a.blocks[bi] = blk
	}
	blk[a.indexInBlock(i)] = v
	return nil
}

// SubArray copies n bytes starting at off into a fresh slice, walking the
// touched blocks once in index order. Unmaterialized blocks contribute zeros
// and stay unmaterialized. When off+n runs past the end of the array the
// result is still n bytes long and the tail past the end stays zero.
func (a *BlockArray) SubArray(off uint64, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("sub-array length %d: %w", n, ErrInvalidArgument)
	}
	if err := a.checkIndex(off); err != nil {
		return nil, err
	}

	out := make([]byte, n)
	end := off + uint64(n)
	if end > a.length || end < off {
		end = a.length
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	pos := 0
	for i := off; i < end; {
		in := a.indexInBlock(i)
		take := a.blockSize - in
		if rem := end - i; rem < take {
			take = rem
		}
		if blk := a.blocks[a.blockIndex(i)]; blk != nil {
			copy(out[pos:], blk[in:in+take])
		}
		pos += int(take)
		i += take
	}
	return out, nil
}

// Bytes returns the whole array as a single slice.
func (a *BlockArray) Bytes() ([]byte, error) {
	if a.length > math.MaxInt {
		return nil, fmt.Errorf("array length %d: %w", a.length, ErrTooLarge)
	}
	if a.length == 0 {
		return []byte{}, nil
	}
	return a.SubArray(0, int(a.length))
}

// WriteTo streams the array to w block by block. Each block is snapshotted
// under the read lock and written with the lock released, so a slow sink
// never stalls writers. Gaps are streamed as zeros without being allocated.
func (a *BlockArray) WriteTo(w io.Writer) (int64, error) {
	if a.length == 0 {
		return 0, nil
	}

	var written int64
	buf := make([]byte, a.blockSize)
	maxBlock := a.maxBlockIndex()

	for bi := uint64(0); bi <= maxBlock; bi++ {
		n := a.blockSize
		if bi == maxBlock {
			n = a.indexInBlock(a.length-1) + 1
		}

		a.mu.RLock()
		if blk := a.blocks[bi]; blk != nil {
			copy(buf[:n], blk[:n])
		} else {
			clear(buf[:n])
		}
		a.mu.RUnlock()

		wn, err := w.Write(buf[:n])
		written += int64(wn)
		if err != nil {
			return written, fmt.Errorf("write block %d: %w", bi, err)
		}
	}
	return written, nil
}

// FillFactor returns the ratio of materialized blocks to the maximum block
// count for this length. A zero-length array reports 1.0.
func (a *BlockArray) FillFactor() float64 {
	if a.length == 0 {
		return 1.0
	}

	a.mu.RLock()
	count := len(a.blocks)
	a.mu.RUnlock()

	return float64(count) / float64(a.maxBlockIndex()+1)
}

// Blocks returns the number of materialized blocks.
func (a *BlockArray) Blocks() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.blocks)
}

// fillBlock installs a copy of src as block bi, following the same
// materialize-on-write rule as Put: a block that would hold only zeros is
// not created. src must be at most one block long. Used by the loaders in
// reader.go.
func (a *BlockArray) fillBlock(bi uint64, src []byte) {
	if allZero(src) {
		return
	}

	blk := make([]byte, a.blockSize)
	copy(blk, src)

	a.mu.Lock()
	a.blocks[bi] = blk
	a.mu.Unlock()
}

// checkIndex enforces the bounds precondition shared by every public entry
// point. The block math below assumes it already passed.
func (a *BlockArray) checkIndex(i uint64) error {
	if i >= a.length {
		return fmt.Errorf("index %d outside [0,%d): %w", i, a.length, ErrOutOfRange)
	}
	return nil
}

func (a *BlockArray) blockIndex(i uint64) uint64 { return i / a.blockSize }

func (a *BlockArray) indexInBlock(i uint64) uint64 { return i % a.blockSize }

func (a *BlockArray) maxBlockIndex() uint64 {
	if a.length == 0 {
		return 0
	}
	return a.blockIndex(a.length - 1)
}

func allZero(p []byte) bool {
	for _, b := range p {
		if b != 0 {
			return false
		}
	}
	return true
}
