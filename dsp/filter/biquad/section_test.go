package biquad

import (
	"math"
	"testing"
)

func TestSectionIdentity(t *testing.T) {
	s := NewSection(Coefficients{B0: 1})

	in := []float64{1, -0.5, 0.25, 0, 2}
	for _, x := range in {
		if y := s.ProcessSample(x); y != x {
			t.Errorf("identity section: got %g, want %g", y, x)
		}
	}
}

func TestSectionOnePoleImpulseResponse(t *testing.T) {
	// First-order exponential smoother y[n] = (1-a)*x[n] + a*y[n-1],
	// expressed as a degenerate biquad (B2 = A2 = 0).
	const a = 0.5
	s := NewSection(Coefficients{B0: 1 - a, A1: -a})

	// Impulse response must be (1-a) * a^n.
	for n := 0; n < 10; n++ {
		x := 0.0
		if n == 0 {
			x = 1
		}

		got := s.ProcessSample(x)
		want := (1 - a) * math.Pow(a, float64(n))
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("h[%d] = %g, want %g", n, got, want)
		}
	}
}

func TestSectionBlockMatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.4, A2: 0.05}

	in := make([]float64, 64)
	for i := range in {
		in[i] = math.Sin(0.3 * float64(i))
	}

	perSample := NewSection(c)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = perSample.ProcessSample(x)
	}

	block := NewSection(c)
	got := append([]float64(nil), in...)
	block.ProcessBlock(got)

	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("sample %d: block %g, per-sample %g", i, got[i], want[i])
		}
	}

	if block.State() != perSample.State() {
		t.Errorf("final state mismatch: block %v, per-sample %v", block.State(), perSample.State())
	}
}

func TestSectionReset(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.5, B1: 0.5, A1: -0.3})
	s.ProcessSample(1)
	s.ProcessSample(-1)

	s.Reset()

	if s.State() != [2]float64{} {
		t.Errorf("state after Reset = %v, want zeros", s.State())
	}
}

func TestSectionSetState(t *testing.T) {
	s := NewSection(Coefficients{B0: 1, A1: -0.5})
	s.ProcessSample(1)
	saved := s.State()

	s.Reset()
	s.SetState(saved)

	if s.State() != saved {
		t.Errorf("state = %v, want %v", s.State(), saved)
	}
}
