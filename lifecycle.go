package vec

// Clear removes all live elements but keeps the allocated storage, so
// the vector can be refilled without reallocating. If dtor is non-nil
// it is called once per live element in index order. The live region is
// zeroed afterwards.
func (v *Vec[T]) Clear(dtor Dtor[T]) {
	if dtor != nil {
		for i := 0; i < v.count; i++ {
			dtor(&v.items[i])
		}
	}
	clear(v.items[:v.count])
	v.count = 0
}

// Destroy releases the backing storage and resets the vector to its
// zero state. If dtor is non-nil it is called once per live element in
// index order first. Destroying an already-destroyed or zero-value
// vector is a no-op.
func (v *Vec[T]) Destroy(dtor Dtor[T]) {
	if dtor != nil {
		for i := 0; i < v.count; i++ {
			dtor(&v.items[i])
		}
	}
	v.items = nil
	v.count = 0
}

// Reserve grows the storage to exactly capacity slots. Unlike Append's
// growth rule this is an exact-fit request. If the current capacity
// already covers the request, Reserve does nothing; it never shrinks.
func (v *Vec[T]) Reserve(capacity int) {
	if capacity <= len(v.items) {
		return
	}
	v.realloc(capacity)
}

// ShrinkToFit reallocates the storage down to exactly Len() slots.
// A vector with no live elements ends up back in the zero state.
func (v *Vec[T]) ShrinkToFit() {
	if v.count == len(v.items) {
		return
	}
	v.realloc(v.count)
}
