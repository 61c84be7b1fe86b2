package generator

import (
	"testing"

	"github.com/verte-zerg/dogruyaz/internal/bank"
)

func numbered(n int) []bank.Question {
	out := make([]bank.Question, n)
	for i := range out {
		out[i] = bank.Question{ID: i + 1, Text: "q"}
	}
	return out
}

func TestPickLimitsCount(t *testing.T) {
	g := NewWithSeed(1)
	if got := len(g.Pick(numbered(15), 10)); got != 10 {
		t.Fatalf("expected 10 questions, got %d", got)
	}
	if got := len(g.Pick(numbered(4), 10)); got != 4 {
		t.Fatalf("expected all 4 questions, got %d", got)
	}
	if got := g.Pick(numbered(4), 0); got != nil {
		t.Fatalf("expected nil for zero count, got %v", got)
	}
}

func TestPickReturnsDistinctQuestions(t *testing.T) {
	in := numbered(12)
	out := NewWithSeed(42).Pick(in, 12)
	seen := map[int]bool{}
	for _, q := range out {
		if seen[q.ID] {
			t.Fatalf("duplicate question %d", q.ID)
		}
		seen[q.ID] = true
	}
	for i, q := range in {
		if q.ID != i+1 {
			t.Fatalf("input was modified at %d: %+v", i, q)
		}
	}
}

func TestPickIsDeterministicForSeed(t *testing.T) {
	a := NewWithSeed(7).Pick(numbered(12), 10)
	b := NewWithSeed(7).Pick(numbered(12), 10)
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("expected same order for same seed")
		}
	}
}
