// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package generator

import (
	"math/rand/v2"
	"testing"
)

func seeded(a, b uint64) *rand.Rand {
	return rand.New(rand.NewPCG(a, b))
}

func TestCombinationShape(t *testing.T) {
	rng := seeded(1, 2)

	for i := 0; i < 500; i++ {
		game := Combination(rng)

		if len(game) != 6 {
			t.Fatalf("iteration %d: got %d numbers, want 6: %v", i, len(game), game)
		}

		seen := make(map[int]bool)
		for j, n := range game {
			if n < 1 || n > 60 {
				t.Fatalf("iteration %d: number %d out of range: %v", i, n, game)
			}
			if seen[n] {
				t.Fatalf("iteration %d: duplicate number %d: %v", i, n, game)
			}
			seen[n] = true
			if j > 0 && game[j-1] >= n {
				t.Fatalf("iteration %d: not sorted ascending: %v", i, game)
			}
		}
	}
}

func TestCombinationContainsLuckyNumber(t *testing.T) {
	rng := seeded(7, 11)
	lucky := map[int]bool{1: true, 10: true, 19: true, 28: true, 37: true, 46: true, 55: true}

	for i := 0; i < 200; i++ {
		game := Combination(rng)
		count := 0
		for _, n := range game {
			if lucky[n] {
				count++
			}
		}
		// At least one lucky number is always seeded into the game.
		// More than 3 can only appear via the frequency or band fill
		// steps, so no upper bound is asserted here.
		if count < 1 {
			t.Errorf("iteration %d: no lucky number in %v", i, game)
		}
	}
}

func TestPool(t *testing.T) {
	rng := seeded(3, 4)

	games := Pool(rng, 15)
	if len(games) != 15 {
		t.Fatalf("expected 15 games, got %d", len(games))
	}
	for i, game := range games {
		if len(game) != 6 {
			t.Errorf("game %d has %d numbers: %v", i, len(game), game)
		}
	}

	if got := Pool(rng, 0); len(got) != 0 {
		t.Errorf("expected empty pool, got %v", got)
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{1, 1},
		{9, 9},
		{10, 1},
		{19, 1},
		{28, 1},
		{37, 1},
		{46, 1},
		{55, 1},
		{60, 6},
		{59, 5},
		{99, 9},
	}

	for _, tt := range tests {
		if got := Reduce(tt.input); got != tt.want {
			t.Errorf("Reduce(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTopFrequent(t *testing.T) {
	top := topFrequent(15)
	if len(top) != 15 {
		t.Fatalf("expected 15 numbers, got %d", len(top))
	}

	freq := frequency()
	for i := 1; i < len(top); i++ {
		if freq[top[i-1]] < freq[top[i]] {
			t.Errorf("ranking not descending at %d: %v", i, top)
		}
	}

	// 10 appears five times in the history table, more than any other
	// number, so it must lead the ranking.
	if top[0] != 10 {
		t.Errorf("expected 10 to be the most frequent number, got %d", top[0])
	}
}

func TestHistoryIsCopied(t *testing.T) {
	h := History()
	if len(h) != 16 {
		t.Fatalf("expected 16 draws, got %d", len(h))
	}

	h[0].Numbers[0] = 999
	if History()[0].Numbers[0] == 999 {
		t.Error("History() exposes internal state")
	}
}
