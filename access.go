package sparse3d

// Get returns the value stored at logical coordinate (x,y,z).
//
// Complexity: O(1).
func (a *Array[T]) Get(x, y, z int) T {
	n, o, _, _, _ := a.locate(x, y, z)
	slot := &a.slots[n]
	if !slot.dense() {
		return slot.value
	}

	return slot.payload[o]
}

// Set writes value at logical coordinate (x,y,z).
//
// A uniform block that already holds value is a no-op. A uniform block
// receiving a divergent value expands into a dense bs3-length payload
// filled with the old value, then the new value is written at its offset
// — and the uniformity oracle runs on the result the same as it does for
// an already-dense write, since a boundary block's sole in-range position
// can be the one just written, which trivially leaves it homogeneous. A
// dense block always writes directly into its payload, then the
// uniformity oracle runs; if it reports the block homogeneous again, the
// payload is released and the slot compacts back to uniform(value) — the
// just-written value, which the oracle has just confirmed matches every
// in-range position.
//
// Complexity: O(1) for a no-op; O(bs³) for an expansion, an already-dense
// write, or the compaction check following either.
func (a *Array[T]) Set(x, y, z int, value T) {
	n, o, i1, j1, k1 := a.locate(x, y, z)
	slot := &a.slots[n]

	if !slot.dense() {
		if value == slot.value {
			return
		}
		payload := make([]T, a.bs3)
		for i := range payload {
			payload[i] = slot.value
		}
		payload[o] = value
		slot.payload = payload
	} else {
		slot.payload[o] = value
	}

	if a.blockUniform(n, i1, j1, k1) {
		slot.value = value
		slot.payload = nil
	}
}
