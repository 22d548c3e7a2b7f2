package sparse3d

// blockSlot is the storage cell for one block of the grid. A nil payload
// means the block is uniform and value holds every in-range position's
// content; a non-nil payload means the block is dense and has length bs3,
// one entry per intra-block position, addressed by the offset computed in
// indexing.go. A slot is never "both": Set and the uniformity oracle keep
// exactly one of the two meaningful at a time (invariant I2).
type blockSlot[T comparable] struct {
	value   T   // meaningful iff payload == nil
	payload []T // length bs3 when non-nil, nil when uniform
}

func (s *blockSlot[T]) dense() bool {
	return s.payload != nil
}

// Array is a compressed in-memory sparse 3D array over a comparable value
// type T. See the package doc for the storage model and invariants.
type Array[T comparable] struct {
	nx, ny, nz int // logical shape
	bs, bs3    int // block edge and block edge cubed
	mx, my, mz int // block-grid shape
	def        T   // default value for new/reset elements
	slots      []blockSlot[T]
}

// New constructs an Array with logical shape (nx,ny,nz), cubic block edge
// bs, and default value def. Every position starts as def.
//
// Stage 1 (Validate): shape must be positive in every axis, bs must be > 1.
// Stage 2 (Prepare): allocate the block-grid slot slice.
// Stage 3 (Finalize): every slot starts uniform at def.
//
// Complexity: O(B) where B = mx·my·mz.
func New[T comparable](nx, ny, nz, bs int, def T) (*Array[T], error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, ErrInvalidShape
	}
	if bs <= 1 {
		return nil, ErrInvalidBlockSize
	}

	mx, my, mz := ceilDiv(nx, bs), ceilDiv(ny, bs), ceilDiv(nz, bs)
	blocks := mx * my * mz
	slots := make([]blockSlot[T], blocks)
	for i := range slots {
		slots[i].value = def
	}

	return &Array[T]{
		nx: nx, ny: ny, nz: nz,
		bs: bs, bs3: bs * bs * bs,
		mx: mx, my: my, mz: mz,
		def:   def,
		slots: slots,
	}, nil
}

// Reset compacts every block back to uniform(def) in place, releasing all
// dense payloads. Shape and block size are preserved.
//
// Complexity: O(B).
func (a *Array[T]) Reset() {
	for i := range a.slots {
		a.slots[i].value = a.def
		a.slots[i].payload = nil
	}
}

// Shape returns the logical array dimensions.
func (a *Array[T]) Shape() (nx, ny, nz int) {
	return a.nx, a.ny, a.nz
}

// BlockSize returns the current cubic block edge length.
func (a *Array[T]) BlockSize() int {
	return a.bs
}

// ceilDiv computes ⌈n/d⌉ for positive n and d.
func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
