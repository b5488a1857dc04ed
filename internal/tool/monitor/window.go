// Package monitor implements the system visualizer tool: a fixed window of
// random samples drawn as a step chart.
package monitor

// Window is a fixed-length FIFO of samples. Pushing a sample evicts the oldest.
type Window struct {
	samples []float64
}

// NewWindow creates a window of size samples pre-filled from s.
func NewWindow(size int, s Sampler) Window {
	if size < 1 {
		size = 1
	}
	samples := make([]float64, size)
	for i := range samples {
		samples[i] = s.Sample()
	}
	return Window{samples: samples}
}

// Push appends v and drops the oldest sample.
func (w *Window) Push(v float64) {
	next := make([]float64, len(w.samples))
	copy(next, w.samples[1:])
	next[len(next)-1] = v
	w.samples = next
}

// Samples returns the samples from oldest to newest.
func (w Window) Samples() []float64 {
	out := make([]float64, len(w.samples))
	copy(out, w.samples)
	return out
}

// Len returns the window size.
func (w Window) Len() int {
	return len(w.samples)
}

// Latest returns the newest sample.
func (w Window) Latest() float64 {
	return w.samples[len(w.samples)-1]
}
