// Package bigbyte provides byte arrays addressed by 64-bit indices, backed
// by lazily allocated fixed-size blocks.
//
// An array declares its full length up front but allocates nothing until a
// byte is written, so a sparsely populated multi-gigabyte array costs memory
// only for the regions actually touched. Reads of untouched regions return
// zeros. All arrays are safe for concurrent use.
//
// Basic usage:
//
//	arr, _ := bigbyte.New(1<<40, bigbyte.WithBlockSize(4096))
//
//	arr.Put(0, 7)
//	arr.Put(1<<39, 9)
//
//	b, _ := arr.Get(1 << 39)       // 9
//	b, _ = arr.Get(12345)          // 0, nothing allocated
//
//	chunk, _ := arr.SubArray(0, 4096) // bulk extraction, single pass
//	arr.FillFactor()                  // fraction of blocks materialized
//
// Views expose a sub-range of an existing array as an independent array
// without copying; they stack, and writes through a view land in the shared
// backing blocks:
//
//	v, _ := bigbyte.NewView(arr, 1<<20, 4096)
//	v.Put(0, 1) // same byte as arr index 1<<20
//
// Serialization is a raw dump of every byte in order, with reconstruction
// given the same length out of band:
//
//	arr.WriteTo(w)
//	again, _ := bigbyte.ReadArray(r, arr.Length())
//
// For random-access sources, ReadArrayAt loads blocks in parallel, and
// NewReader wraps any array as a sequential io.Reader.
package bigbyte
