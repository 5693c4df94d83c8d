package solver

import (
	"errors"
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

// sine24 is a synthetic "altitude" with a 24 h period: zero at t0 rising,
// maximum +1 at t0+6h, zero falling at t0+12h, minimum -1 at t0+18h.
func sine24(t time.Time) (float64, error) {
	hours := t.Sub(t0).Hours()
	return math.Sin(2 * math.Pi * hours / 24), nil
}

func within(t *testing.T, got, want time.Time, tol time.Duration) {
	t.Helper()
	d := got.Sub(want)
	if d < 0 {
		d = -d
	}
	if d > tol {
		t.Errorf("got %v, want %v ± %v (off by %v)", got, want, tol, d)
	}
}

func TestFindCrossing_Up(t *testing.T) {
	// sin = 0.5 rising at 2h (30°).
	ev, err := FindCrossing(sine24, t0, t0.Add(24*time.Hour), 0.5, CrossingUp, 97, time.Second)
	if err != nil {
		t.Fatalf("FindCrossing() error = %v", err)
	}
	if !ev.OK {
		t.Fatal("FindCrossing() found no event, want one")
	}
	within(t, ev.Time, t0.Add(2*time.Hour), 5*time.Second)
}

func TestFindCrossing_Down(t *testing.T) {
	// sin = 0.5 falling at 10h (150°).
	ev, err := FindCrossing(sine24, t0, t0.Add(24*time.Hour), 0.5, CrossingDown, 97, time.Second)
	if err != nil {
		t.Fatalf("FindCrossing() error = %v", err)
	}
	if !ev.OK {
		t.Fatal("FindCrossing() found no event, want one")
	}
	within(t, ev.Time, t0.Add(10*time.Hour), 5*time.Second)
}

func TestFindCrossing_NoCrossing(t *testing.T) {
	// The target is above the function's maximum: no bracket anywhere.
	ev, err := FindCrossing(sine24, t0, t0.Add(24*time.Hour), 1.5, CrossingUp, 97, time.Second)
	if err != nil {
		t.Fatalf("FindCrossing() error = %v", err)
	}
	if ev.OK {
		t.Errorf("FindCrossing() = %v, want no event", ev.Time)
	}
}

func TestFindCrossing_InvalidWindow(t *testing.T) {
	_, err := FindCrossing(sine24, t0, t0, 0, CrossingUp, 97, time.Second)
	if !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("error = %v, want ErrInvalidWindow", err)
	}
	_, err = FindCrossing(sine24, t0.Add(time.Hour), t0, 0, CrossingUp, 97, time.Second)
	if !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("error = %v, want ErrInvalidWindow", err)
	}
}

func TestFindCrossing_PropagatesFailure(t *testing.T) {
	boom := errors.New("provider exploded")
	calls := 0
	failing := func(t time.Time) (float64, error) {
		calls++
		if calls > 3 {
			return 0, boom
		}
		return sine24(t)
	}
	_, err := FindCrossing(failing, t0, t0.Add(24*time.Hour), 0.5, CrossingUp, 97, time.Second)
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want the provider failure", err)
	}
}

func TestFindMaximum(t *testing.T) {
	at, err := FindMaximum(sine24, t0, t0.Add(24*time.Hour), 97, time.Second)
	if err != nil {
		t.Fatalf("FindMaximum() error = %v", err)
	}
	within(t, at, t0.Add(6*time.Hour), 10*time.Second)
}

func TestFindMaximum_EdgeMaximum(t *testing.T) {
	// Window ends right at the peak; the maximum sits on the boundary.
	at, err := FindMaximum(sine24, t0, t0.Add(6*time.Hour), 97, time.Second)
	if err != nil {
		t.Fatalf("FindMaximum() error = %v", err)
	}
	within(t, at, t0.Add(6*time.Hour), 10*time.Second)
}

func TestFindMaximum_InvalidWindow(t *testing.T) {
	_, err := FindMaximum(sine24, t0, t0, 97, time.Second)
	if !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("error = %v, want ErrInvalidWindow", err)
	}
}

func TestFindMatches_TwoValleys(t *testing.T) {
	// |sin - 0.5| has zeros at 2h (rising) and 10h (falling).
	residual := func(t time.Time) (float64, error) {
		v, _ := sine24(t)
		return math.Abs(v - 0.5), nil
	}
	ms, err := FindMatches(residual, t0, t0.Add(24*time.Hour), 0.01, 97, time.Second)
	if err != nil {
		t.Fatalf("FindMatches() error = %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("FindMatches() returned %d matches, want 2: %+v", len(ms), ms)
	}
	within(t, ms[0].Time, t0.Add(2*time.Hour), 30*time.Second)
	within(t, ms[1].Time, t0.Add(10*time.Hour), 30*time.Second)
	for _, m := range ms {
		if m.Residual > 0.01 {
			t.Errorf("match at %v has residual %v, want <= 0.01", m.Time, m.Residual)
		}
	}
}

func TestFindMatches_Unreachable(t *testing.T) {
	// Target above the maximum: the best residual never drops below 1.
	residual := func(t time.Time) (float64, error) {
		v, _ := sine24(t)
		return math.Abs(v - 2.0), nil
	}
	ms, err := FindMatches(residual, t0, t0.Add(24*time.Hour), 0.01, 97, time.Second)
	if err != nil {
		t.Fatalf("FindMatches() error = %v", err)
	}
	if len(ms) != 0 {
		t.Errorf("FindMatches() = %+v, want none", ms)
	}
}

func TestFindMatches_DedupesGridTies(t *testing.T) {
	// A V-shaped valley whose bottom falls exactly between two grid samples
	// produces two tied grid minima; both refine to the same instant and
	// must merge into a single match. Grid step is 15 min (97 steps over
	// 24 h), so the valley at 12h07m30s ties the 12:00 and 12:15 samples.
	valley := t0.Add(12*time.Hour + 7*time.Minute + 30*time.Second)
	residual := func(t time.Time) (float64, error) {
		d := t.Sub(valley).Hours()
		return math.Abs(d), nil
	}
	ms, err := FindMatches(residual, t0, t0.Add(24*time.Hour), 0.01, 97, time.Second)
	if err != nil {
		t.Fatalf("FindMatches() error = %v", err)
	}
	if len(ms) != 1 {
		t.Fatalf("FindMatches() returned %d matches, want 1: %+v", len(ms), ms)
	}
	within(t, ms[0].Time, valley, 10*time.Second)
}
