package vec

// Slack returns the number of allocated but unused slots (Cap - Len).
func (v *Vec[T]) Slack() int {
	return len(v.items) - v.count
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 if no storage is allocated.
func (v *Vec[T]) Utilization() float64 {
	if len(v.items) == 0 {
		return 0
	}
	return float64(v.count) / float64(len(v.items))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vec[T]) Metrics() VecMetrics {
	return VecMetrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		Slack:       v.Slack(),
		Utilization: v.Utilization(),
	}
}

// VecMetrics contains statistical information about a vector.
type VecMetrics struct {
	Len         int     // Live elements
	Cap         int     // Allocated slots
	Slack       int     // Allocated but unused slots
	Utilization float64 // Ratio of live to allocated (0.0-1.0)
}
