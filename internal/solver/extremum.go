package solver

import "time"

// FindMaximum locates the time of the largest value of f on [start, end].
// A coarse grid of steps samples picks the neighborhood of the maximum,
// then ternary search narrows the bracketing interval: each iteration
// evaluates two interior points and discards the third of the interval
// that cannot contain the maximum, until the interval is narrower than tol.
//
// The grid step must be small enough that f is unimodal between the
// neighbors of the best sample. That holds for the diurnal altitude of a
// fixed-declination object, which is what the callers feed it.
func FindMaximum(f ObjectiveFunc, start, end time.Time, steps int, tol time.Duration) (time.Time, error) {
	if !start.Before(end) {
		return time.Time{}, ErrInvalidWindow
	}
	if steps < 3 {
		steps = 3
	}

	interval := end.Sub(start) / time.Duration(steps-1)

	bestIdx := 0
	bestVal, err := f(start)
	if err != nil {
		return time.Time{}, err
	}
	times := make([]time.Time, steps)
	times[0] = start
	for i := 1; i < steps; i++ {
		t := start.Add(time.Duration(i) * interval)
		if i == steps-1 {
			t = end
		}
		times[i] = t
		v, err := f(t)
		if err != nil {
			return time.Time{}, err
		}
		if v > bestVal {
			bestVal, bestIdx = v, i
		}
	}

	// Bracket the maximum between the best sample's neighbors.
	lo := times[maxInt(bestIdx-1, 0)]
	hi := times[minInt(bestIdx+1, steps-1)]

	return ternaryMax(f, lo, hi, tol)
}

func ternaryMax(f ObjectiveFunc, a, b time.Time, tol time.Duration) (time.Time, error) {
	const maxIter = 100
	for i := 0; b.Sub(a) > tol && i < maxIter; i++ {
		third := b.Sub(a) / 3
		m1 := a.Add(third)
		m2 := b.Add(-third)

		v1, err := f(m1)
		if err != nil {
			return time.Time{}, err
		}
		v2, err := f(m2)
		if err != nil {
			return time.Time{}, err
		}

		if v1 < v2 {
			a = m1
		} else {
			b = m2
		}
	}
	return a.Add(b.Sub(a) / 2), nil
}

// ternaryMin is ternaryMax on -f; kept separate so match.go reads naturally.
func ternaryMin(f ObjectiveFunc, a, b time.Time, tol time.Duration) (time.Time, error) {
	neg := func(t time.Time) (float64, error) {
		v, err := f(t)
		return -v, err
	}
	return ternaryMax(neg, a, b, tol)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
