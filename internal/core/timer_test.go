package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstCallSteps(t *testing.T) {
	fs := NewFixedStep(10)
	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep should fire from the primed accumulator")
	}
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("step = %v, want %v", fs.step, time.Second/60)
	}
	fs.SetTPS(-4)
	if fs.step != time.Second/60 {
		t.Fatalf("step after SetTPS(-4) = %v, want %v", fs.step, time.Second/60)
	}
	fs.SetTPS(4)
	if fs.step != time.Second/4 {
		t.Fatalf("step after SetTPS(4) = %v, want %v", fs.step, time.Second/4)
	}
}

func TestFixedStepDueCapsCatchUp(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if got := fs.Due(5); got != 1 {
		t.Fatalf("primed Due = %d, want 1", got)
	}

	clock = clock.Add(250 * time.Millisecond)
	if got := fs.Due(5); got != 2 {
		t.Fatalf("Due after 250ms = %d, want 2", got)
	}

	clock = clock.Add(10 * time.Second)
	if got := fs.Due(3); got != 3 {
		t.Fatalf("Due after stall = %d, want cap 3", got)
	}
	if got := fs.Due(3); got != 1 {
		t.Fatalf("Due right after stall = %d, want 1 leftover tick", got)
	}
	if got := fs.Due(3); got != 0 {
		t.Fatalf("Due with no elapsed time = %d, want 0", got)
	}
}
