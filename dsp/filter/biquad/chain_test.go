package biquad

import (
	"math"
	"testing"
)

func testCoeffs() []Coefficients {
	return []Coefficients{
		{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.6, A2: 0.2},
		{B0: 0.5, B1: 0.0, B2: -0.5, A1: -0.1, A2: 0.3},
	}
}

func TestChainOrder(t *testing.T) {
	c := NewChain(testCoeffs())

	if got := c.NumSections(); got != 2 {
		t.Errorf("NumSections = %d, want 2", got)
	}

	if got := c.Order(); got != 4 {
		t.Errorf("Order = %d, want 4", got)
	}
}

func TestChainMatchesSequentialSections(t *testing.T) {
	coeffs := testCoeffs()

	in := make([]float64, 128)
	for i := range in {
		in[i] = math.Cos(0.11 * float64(i))
	}

	// Reference: run each section one after the other.
	want := append([]float64(nil), in...)
	for _, c := range coeffs {
		NewSection(c).ProcessBlock(want)
	}

	chain := NewChain(coeffs)
	got := append([]float64(nil), in...)
	chain.ProcessBlock(got)

	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("sample %d: chain %g, sequential %g", i, got[i], want[i])
		}
	}
}

func TestChainProcessSampleMatchesBlock(t *testing.T) {
	coeffs := testCoeffs()

	in := []float64{1, 0, -1, 0.5, 0.25, -0.75, 0, 0}

	blockChain := NewChain(coeffs)
	block := append([]float64(nil), in...)
	blockChain.ProcessBlock(block)

	sampleChain := NewChain(coeffs)
	for i, x := range in {
		y := sampleChain.ProcessSample(x)
		if math.Abs(y-block[i]) > 1e-12 {
			t.Fatalf("sample %d: ProcessSample %g, ProcessBlock %g", i, y, block[i])
		}
	}
}

func TestChainReset(t *testing.T) {
	chain := NewChain(testCoeffs())
	chain.ProcessSample(1)
	chain.ProcessSample(1)

	chain.Reset()

	for i := 0; i < chain.NumSections(); i++ {
		if chain.Section(i).State() != [2]float64{} {
			t.Errorf("section %d state after Reset = %v, want zeros", i, chain.Section(i).State())
		}
	}
}
