// Package sparse3d implements a compressed in-memory sparse 3D array over
// a comparable value type T.
//
// What:
//
//   - Array[T] tiles a logical (nx,ny,nz) volume into a uniform cubic grid
//     of blocks, each (bs,bs,bs) elements wide.
//   - Each block is stored as either a single uniform value or a dense
//     bs³-length payload; writes that break homogeneity expand a block,
//     writes that restore it compact the block back down.
//   - Memory() / MemoryBs() report exact and hypothetical footprint;
//     OptimizeBs() picks the cheapest block size from a fixed candidate
//     set and rebuilds storage under it via ChangeBs().
//   - Resize() grows or shrinks any axis, preserving surviving data and
//     filling newly in-range positions with the default value.
//
// Why:
//
//   - Sparse or piecewise-uniform volumes (terrain, voxel masks, simulation
//     grids) waste enormous memory as dense arrays; block uniformization
//     reclaims that memory without giving up O(1) point access.
//
// Complexity:
//
//   - Get:            O(1).
//   - Set:            O(1) for a no-op write; O(bs³) when it expands a
//     block or writes into a dense one (the uniformity check).
//   - Memory:         O(B) where B is the block count.
//   - MemoryBs:       O(nx·ny·nz) — reads every logical position once.
//   - ChangeBs:       O(nx·ny·nz).
//   - Resize:         O(surviving blocks + new sliver positions).
//
// Errors:
//
//   - ErrInvalidShape: nx, ny, or nz ≤ 0.
//   - ErrInvalidBlockSize: bs ≤ 1.
//
// Out-of-range coordinates passed to Get/Set are a programmer fault and
// panic, the same way an out-of-range slice index would.
//
// Concurrency: Array[T] is not safe for concurrent use. A single Array[T]
// owns its block storage exclusively; callers needing concurrent access
// must supply their own synchronization.
package sparse3d
