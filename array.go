package bigbyte

import "io"

// Array is the contract shared by block-backed arrays and views over them.
// Indices and lengths are 64-bit, so an Array can address far more bytes
// than a single Go slice; only Bytes is bound by the platform slice limit.
type Array interface {
	// Length returns the number of addressable bytes.
	Length() uint64

	// Get returns the byte at index i. Reading an index whose block was
	// never written returns 0.
	Get(i uint64) (byte, error)

	// Put stores v at index i, materializing the containing block if needed.
	Put(i uint64, v byte) error

	// SubArray copies n bytes starting at off into a fresh slice. It is the
	// bulk read path and synthesizes zeros for unmaterialized blocks without
	// allocating them.
	SubArray(off uint64, n int) ([]byte, error)

	// Bytes returns the whole array as a single slice, or ErrTooLarge when
	// the length does not fit one.
	Bytes() ([]byte, error)

	// WriteTo streams every byte in index order to w. It materializes no
	// blocks and writes nothing for a zero-length array.
	WriteTo(w io.Writer) (int64, error)
}
