package solver

import (
	"sort"
	"time"
)

// Match is one candidate instant found by FindMatches, with the residual
// value of the objective there.
type Match struct {
	Time     time.Time
	Residual float64
}

// FindMatches finds every instant in [start, end] where the objective f
// (a non-negative error metric) dips to a local minimum no larger than
// maxResidual. A coarse grid of steps samples locates candidate valleys;
// each is refined with ternary search between its bracketing neighbors.
//
// An altitude-match objective over a day typically has two such valleys
// (morning and evening crossings); an alt+az objective has one. A target
// the object never reaches yields no matches: empty slice, nil error.
func FindMatches(f ObjectiveFunc, start, end time.Time, maxResidual float64, steps int, tol time.Duration) ([]Match, error) {
	if !start.Before(end) {
		return nil, ErrInvalidWindow
	}
	if steps < 3 {
		steps = 3
	}

	interval := end.Sub(start) / time.Duration(steps-1)

	times := make([]time.Time, steps)
	vals := make([]float64, steps)
	for i := 0; i < steps; i++ {
		t := start.Add(time.Duration(i) * interval)
		if i == steps-1 {
			t = end
		}
		v, err := f(t)
		if err != nil {
			return nil, err
		}
		times[i], vals[i] = t, v
	}

	var out []Match
	for i := 0; i < steps; i++ {
		if !isGridMinimum(vals, i) {
			continue
		}
		lo := times[maxInt(i-1, 0)]
		hi := times[minInt(i+1, steps-1)]

		at, err := ternaryMin(f, lo, hi, tol)
		if err != nil {
			return nil, err
		}
		res, err := f(at)
		if err != nil {
			return nil, err
		}
		if res <= maxResidual {
			out = append(out, Match{Time: at, Residual: res})
		}
	}

	out = dedupe(out, interval)
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out, nil
}

// isGridMinimum reports whether sample i is a local minimum of the grid.
// Endpoints count when the grid slopes away from them, so a crossing that
// sits right at the window edge is still found.
func isGridMinimum(vals []float64, i int) bool {
	n := len(vals)
	switch i {
	case 0:
		return vals[0] < vals[1]
	case n - 1:
		return vals[n-1] < vals[n-2]
	default:
		return vals[i] <= vals[i-1] && vals[i] <= vals[i+1]
	}
}

// dedupe merges matches closer together than one grid step, keeping the
// one with the smaller residual. Adjacent grid minima over a flat valley
// refine to nearly the same instant.
func dedupe(ms []Match, step time.Duration) []Match {
	if len(ms) < 2 {
		return ms
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].Time.Before(ms[j].Time) })
	out := ms[:1]
	for _, m := range ms[1:] {
		last := &out[len(out)-1]
		if m.Time.Sub(last.Time) < step {
			if m.Residual < last.Residual {
				*last = m
			}
			continue
		}
		out = append(out, m)
	}
	return out
}
