package sparse3d

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// sizeOf returns the static byte size of a zero value of T — the generic
// replacement for C's sizeof(T). T is always a flat comparable value type
// here, so a zero value is enough to size it; there is no need to special-
// case pointer-bearing kinds the way a general-purpose arena allocator
// would (T never needs to be tracked by the garbage collector specially
// beyond what its own fields already are).
func sizeOf[T comparable]() uintptr {
	var zero T

	return unsafe.Sizeof(zero)
}

// Memory returns the exact number of bytes currently held by the array:
// a fixed header, one T-sized uniform value and one pointer-sized
// discriminant per block slot, plus one bs³-sized payload per dense block.
//
// The result is a float64 to permit callers to compare hypothetical sums
// (via MemoryBs) that could, in principle, exceed the machine's integer
// width for very large hypothetical block counts.
//
// Complexity: O(B).
func (a *Array[T]) Memory() float64 {
	elemSize := float64(sizeOf[T]())
	ptrSize := float64(unsafe.Sizeof(uintptr(0)))
	blocks := float64(len(a.slots))

	size := float64(unsafe.Sizeof(*a))
	size += blocks * elemSize
	size += blocks * ptrSize
	for i := range a.slots {
		if a.slots[i].dense() {
			size += elemSize * float64(a.bs3)
		}
	}

	return size
}

// MemoryBs returns the hypothetical byte footprint the array would have
// under block size bs', without mutating any state. If bs' equals the
// current block size this is identical to Memory(). Otherwise every
// virtual block under bs' is tested for homogeneity by reading through
// Get on the existing storage.
//
// Complexity: O(nx·ny·nz).
func (a *Array[T]) MemoryBs(bs int) float64 {
	if bs == a.bs {
		return a.Memory()
	}

	elemSize := float64(sizeOf[T]())
	ptrSize := float64(unsafe.Sizeof(uintptr(0)))
	mx, my, mz := ceilDiv(a.nx, bs), ceilDiv(a.ny, bs), ceilDiv(a.nz, bs)
	blocks := mx * my * mz

	size := float64(unsafe.Sizeof(*a))
	size += float64(blocks) * elemSize
	size += float64(blocks) * ptrSize

	for k1 := 0; k1 < mz; k1++ {
		for j1 := 0; j1 < my; j1++ {
			for i1 := 0; i1 < mx; i1++ {
				if !a.virtualBlockUniform(i1, j1, k1, bs) {
					size += elemSize * float64(bs*bs*bs)
				}
			}
		}
	}

	return size
}

// virtualBlockUniform tests whether the virtual block at (i1,j1,k1) under a
// candidate block size bs would be uniform, reading through Get. Outside
// positions (beyond nx,ny,nz) are skipped, exactly as blockUniform skips
// them for real blocks.
func (a *Array[T]) virtualBlockUniform(i1, j1, k1, bs int) bool {
	ref := a.Get(i1*bs, j1*bs, k1*bs)
	for k := k1 * bs; k < (k1+1)*bs && k < a.nz; k++ {
		for j := j1 * bs; j < (j1+1)*bs && j < a.ny; j++ {
			for i := i1 * bs; i < (i1+1)*bs && i < a.nx; i++ {
				if a.Get(i, j, k) != ref {
					return false
				}
			}
		}
	}

	return true
}

// String renders a human-readable summary of the array's shape, block
// size, dense-block occupancy, and current memory footprint.
func (a *Array[T]) String() string {
	dense := 0
	for i := range a.slots {
		if a.slots[i].dense() {
			dense++
		}
	}

	return fmt.Sprintf(
		"sparse3d.Array[%d,%d,%d bs=%d dense=%d/%d mem=%s]",
		a.nx, a.ny, a.nz, a.bs, dense, len(a.slots),
		humanize.Bytes(uint64(a.Memory())),
	)
}
