// Package vec implements a generic growable vector (dynamic array) for Go.
//
// # Overview
//
// A Vec[T] is a resizable contiguous container that keeps its elements
// in insertion order and manages its own backing storage. It is useful
// as a building block wherever a plain slice's implicit growth and lack
// of cleanup hooks are not enough:
//
//   - Collections of resource-owning values needing per-element cleanup
//   - Append-heavy workloads with explicit capacity control
//   - Ordered collections with index- and range-based removal
//
// # Basic Usage
//
//	var v vec.Vec[string] // zero value is ready to use
//
//	v.Append("a")
//	v.AppendMany([]string{"b", "c"})
//	v.RemoveAt(1, nil) // live elements are now [a c]
//
//	v.Destroy(nil) // release storage when done
//
// # Growth Policy
//
// An empty vector allocates DefaultInitialCap (64) slots on first
// append. After that, each time the vector fills up the capacity grows
// by half (rounded up), giving amortized O(1) appends. AppendMany
// applies the same rule in compounding steps but performs at most one
// reallocation. Reserve requests an exact capacity instead, and
// ShrinkToFit trims capacity back down to the live count. Capacity
// never shrinks on removal.
//
// # Destructors
//
// Removal and lifecycle operations accept an optional Dtor callback for
// elements that own resources. It runs exactly once per removed
// element, in index order, before the element's slot is overwritten or
// released. Pass nil when no cleanup is needed:
//
//	files.Clear(func(f *os.File) { f.Close() })
//
// # Thread Safety
//
// Vec performs no internal synchronization. Callers sharing one vector
// across goroutines must serialize access externally.
//
// # Performance Characteristics
//
//   - Append: O(1) amortized
//   - AppendMany of n: O(n) amortized, at most one reallocation
//   - RemoveAt / RemoveRange: O(Len) worst case (tail shift)
//   - Clear: O(Len); Destroy: O(Len) with dtor, O(1) without storage walk
//
// # Important Notes
//
//   - Views returned by Items are invalidated by any operation that may
//     reallocate (Append, AppendMany, Reserve, ShrinkToFit, Destroy)
//   - Out-of-range indices and inverted ranges panic; they are caller
//     bugs, not recoverable conditions
//   - Vacated slots are zeroed so removed elements can be collected
package vec
