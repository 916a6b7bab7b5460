package vec

// Dtor is an optional per-element cleanup callback. It receives a
// pointer to the element's slot and is invoked exactly once per removed
// element, in increasing index order, before the slot is overwritten or
// released. A nil Dtor skips cleanup silently.
type Dtor[T any] func(*T)

// RemoveAt removes the element at index, shifting later elements left
// by one. If dtor is non-nil it is called on the element first.
// Capacity is unchanged. Panics if index is outside the live region.
func (v *Vec[T]) RemoveAt(index int, dtor Dtor[T]) {
	if index < 0 || index >= v.count {
		panic("vec: index out of range")
	}
	if dtor != nil {
		dtor(&v.items[index])
	}
	copy(v.items[index:v.count-1], v.items[index+1:v.count])
	v.count--
	clear(v.items[v.count : v.count+1]) // drop the stale tail reference
}

// RemoveRange removes the half-open range [i, j), shifting elements at
// [j, Len()) left to start at i. If dtor is non-nil it is called once
// per removed element in index order before any shifting. Capacity is
// unchanged. An empty range (i == j <= Len()) is a no-op. Panics if
// i > j or j > Len().
func (v *Vec[T]) RemoveRange(i, j int, dtor Dtor[T]) {
	if i < 0 || i > j || j > v.count {
		panic("vec: invalid range")
	}
	if i == j {
		return
	}
	if dtor != nil {
		for k := i; k < j; k++ {
			dtor(&v.items[k])
		}
	}
	copy(v.items[i:], v.items[j:v.count])
	removed := j - i
	clear(v.items[v.count-removed : v.count])
	v.count -= removed
}
