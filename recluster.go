package sparse3d

// ChangeBs rebuilds storage under a new cubic block edge bs, preserving
// logical shape and default value. A temporary Array is built under bs and
// every logical position is copied into it in z-major, y, x order; the
// source position is simultaneously overwritten with def so dense payloads
// are released as the old storage drains rather than after a full second
// pass. The temporary's slot slice then replaces the receiver's.
//
// Complexity: O(nx·ny·nz).
func (a *Array[T]) ChangeBs(bs int) error {
	if bs <= 1 {
		return ErrInvalidBlockSize
	}

	tmp, err := New[T](a.nx, a.ny, a.nz, bs, a.def)
	if err != nil {
		return err
	}

	for z := 0; z < a.nz; z++ {
		for y := 0; y < a.ny; y++ {
			for x := 0; x < a.nx; x++ {
				tmp.Set(x, y, z, a.Get(x, y, z))
				a.Set(x, y, z, a.def)
			}
		}
	}

	a.bs, a.bs3 = tmp.bs, tmp.bs3
	a.mx, a.my, a.mz = tmp.mx, tmp.my, tmp.mz
	a.slots = tmp.slots

	return nil
}
