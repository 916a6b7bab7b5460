package vec

// DefaultInitialCap is the capacity of the first allocation made by an
// empty vector (64 slots).
const DefaultInitialCap = 64

// Vec is a growable contiguous container of T. The live elements occupy
// the first Len() slots of the backing storage in insertion order.
// Not goroutine-safe; callers sharing one Vec must serialize access.
type Vec[T any] struct {
	items []T // backing storage, len(items) == Cap()
	count int // number of live elements
}

// New creates a Vec with capacity preallocated up front.
// If capacity <= 0 no storage is allocated; the first Append then
// allocates DefaultInitialCap slots.
func New[T any](capacity int) *Vec[T] {
	v := &Vec[T]{}
	if capacity > 0 {
		v.items = make([]T, capacity)
	}
	return v
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.count
}

// Cap returns the number of allocated slots.
func (v *Vec[T]) Cap() int {
	return len(v.items)
}

// At returns the element at index i.
// Panics if i is outside the live region.
func (v *Vec[T]) At(i int) T {
	if i < 0 || i >= v.count {
		panic("vec: index out of range")
	}
	return v.items[i]
}

// Set overwrites the element at index i with value.
// Panics if i is outside the live region.
func (v *Vec[T]) Set(i int, value T) {
	if i < 0 || i >= v.count {
		panic("vec: index out of range")
	}
	v.items[i] = value
}

// Items returns a view of the live region. The view's capacity is
// clipped to its length, so appending to it cannot touch the vector's
// spare slots. Any operation that may reallocate (Append, AppendMany,
// Reserve, ShrinkToFit, Destroy) invalidates previously returned views.
func (v *Vec[T]) Items() []T {
	return v.items[:v.count:v.count]
}

// Append adds value as the new last element, growing storage if full.
func (v *Vec[T]) Append(value T) {
	if v.count >= len(v.items) {
		v.realloc(grownCap(len(v.items), v.count+1))
	}
	v.items[v.count] = value
	v.count++
}

// AppendMany adds all of values in order, as if appended one at a time
// but with at most one reallocation. The target capacity is reached by
// repeated 1.5x growth steps, not an exact fit. Behavior is undefined
// if values aliases the vector's own storage.
func (v *Vec[T]) AppendMany(values []T) {
	if v.count+len(values) > len(v.items) {
		v.realloc(grownCap(len(v.items), v.count+len(values)))
	}
	copy(v.items[v.count:], values)
	v.count += len(values)
}

// grownCap returns the capacity reached by applying the growth rule
// until it covers need: an empty vector starts at DefaultInitialCap,
// then each step adds half the current capacity, rounded up. Steps
// compound from the previous capacity rather than jumping to an exact
// fit.
func grownCap(current, need int) int {
	if current == 0 {
		current = DefaultInitialCap
	}
	for current < need {
		current += (current + 1) / 2
	}
	return current
}

// realloc moves the live elements into a fresh allocation of newCap
// slots. newCap of zero releases the storage entirely.
func (v *Vec[T]) realloc(newCap int) {
	if newCap == 0 {
		v.items = nil
		return
	}
	next := make([]T, newCap)
	copy(next, v.items[:v.count])
	v.items = next
}
