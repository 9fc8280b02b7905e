package dynamo

// Generate iterates m for n samples starting at (x0, y0) and returns the
// full visited sequence. Element 0 is the starting position unchanged;
// element i+1 is m.Step applied to element i.
//
// The recurrence is strictly sequential, so the loop body carries the
// previous position in registers and writes each column exactly once. The
// only allocations are the two output columns. Non-finite inputs are not
// rejected: NaN and Inf propagate through the recurrence per IEEE
// semantics, which is observable output rather than a failure.
//
// n < 1 fails atomically with a CountError before anything is allocated.
// Two calls with identical arguments produce bit-identical trajectories.
func Generate(m Map, x0, y0 float64, n int) (*Trajectory, error) {
	if n < 1 {
		return nil, CountError{N: n}
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	xs[0], ys[0] = x0, y0

	x, y := x0, y0
	for i := 1; i < n; i++ {
		x, y = m.Step(x, y)
		xs[i] = x
		ys[i] = y
	}

	return &Trajectory{X: xs, Y: ys}, nil
}

// GenerateInto is Generate reusing caller-owned buffers, for callers that
// regenerate on every parameter change and want to avoid reallocating
// multi-million element columns. Both slices are resized as needed; the
// returned trajectory aliases them.
func GenerateInto(m Map, x0, y0 float64, n int, xs, ys []float64) (*Trajectory, error) {
	if n < 1 {
		return nil, CountError{N: n}
	}

	if cap(xs) < n {
		xs = make([]float64, n)
	}
	if cap(ys) < n {
		ys = make([]float64, n)
	}
	xs, ys = xs[:n], ys[:n]
	xs[0], ys[0] = x0, y0

	x, y := x0, y0
	for i := 1; i < n; i++ {
		x, y = m.Step(x, y)
		xs[i] = x
		ys[i] = y
	}

	return &Trajectory{X: xs, Y: ys}, nil
}
