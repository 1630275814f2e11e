package engine

import (
	"math"
	"testing"
)

func TestExpForNextLevel(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{1, 30},
		{2, 68},
		{3, 112},
		{5, 206},
		{10, 475},
	}
	for _, c := range cases {
		if got := ExpForNextLevel(c.level); got != c.want {
			t.Fatalf("ExpForNextLevel(%d)=%d, want %d", c.level, got, c.want)
		}
	}
}

func TestExpForNextLevelMatchesFormula(t *testing.T) {
	for level := 1; level <= 50; level++ {
		want := int(math.Floor(30 * math.Pow(float64(level), 1.2)))
		if got := ExpForNextLevel(level); got != want {
			t.Fatalf("ExpForNextLevel(%d)=%d, formula gives %d", level, got, want)
		}
	}
}

func TestExpForNextLevelClampsBelowOne(t *testing.T) {
	if got := ExpForNextLevel(0); got != 30 {
		t.Fatalf("ExpForNextLevel(0)=%d, want clamp to level 1 (30)", got)
	}
}

func TestEffectiveGain(t *testing.T) {
	if got := EffectiveGain(100, false); got != 100 {
		t.Fatalf("non-review gain=%d, want 100", got)
	}
	if got := EffectiveGain(100, true); got != 10 {
		t.Fatalf("review gain=%d, want 10", got)
	}
	// Review gain never falls below 1.
	if got := EffectiveGain(5, true); got != 1 {
		t.Fatalf("small review gain=%d, want 1", got)
	}
}
