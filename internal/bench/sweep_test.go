package bench

import (
	"testing"
)

func TestSweepProbabilities(t *testing.T) {
	probs := SweepProbabilities(0, 0.4, 0.1)

	want := []float64{0, 0.1, 0.2, 0.3, 0.4}
	if len(probs) != len(want) {
		t.Errorf("got %d probabilities, want %d", len(probs), len(want))
		t.Logf("got: %v", probs)
		return
	}

	for i := range want {
		diff := probs[i] - want[i]
		if diff < -0.001 || diff > 0.001 {
			t.Errorf("probability[%d] = %v, want %v", i, probs[i], want[i])
		}
	}
}

func TestSweepProbabilities_Clamped(t *testing.T) {
	probs := SweepProbabilities(0.9, 2, 0.1)
	if len(probs) != 2 {
		t.Errorf("got %v, want [0.9 1]", probs)
	}
	if SweepProbabilities(0, 1, 0) != nil {
		t.Error("zero step must produce no probabilities")
	}
}

func TestSweep(t *testing.T) {
	chunks := []string{
		"The quick brown fox jumps over the lazy dog.",
		"Pack my box with five dozen liquor jugs.",
	}

	results, err := Sweep(chunks, "typo", 42, []float64{0, 0.5, 1})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Metrics.CharEdits != 0 {
		t.Errorf("p=0 produced %d edits", results[0].Metrics.CharEdits)
	}
	if results[2].Metrics.CharEdits == 0 {
		t.Error("p=1 produced no edits")
	}
	if results[2].Metrics.ChangedPairs != 2 {
		t.Errorf("p=1 changed %d pairs, want 2", results[2].Metrics.ChangedPairs)
	}
}

func TestSweep_UnknownMistaker(t *testing.T) {
	if _, err := Sweep([]string{"x"}, "nope", 1, []float64{0.1}); err == nil {
		t.Error("expected error for unknown mistaker")
	}
}
