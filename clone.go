package sparse3d

// Duplicate returns a disjoint deep copy: same shape, same block size,
// same default value. Every uniform slot is copied by value; every dense
// slot gets a freshly allocated payload. Nothing is shared with the
// receiver — mutating one never affects the other.
//
// Complexity: O(B + dense-blocks·bs³).
func (a *Array[T]) Duplicate() *Array[T] {
	clone := &Array[T]{
		nx: a.nx, ny: a.ny, nz: a.nz,
		bs: a.bs, bs3: a.bs3,
		mx: a.mx, my: a.my, mz: a.mz,
		def:   a.def,
		slots: make([]blockSlot[T], len(a.slots)),
	}

	for i := range a.slots {
		if a.slots[i].dense() {
			payload := make([]T, a.bs3)
			copy(payload, a.slots[i].payload)
			clone.slots[i].payload = payload
		} else {
			clone.slots[i].value = a.slots[i].value
		}
	}

	return clone
}
