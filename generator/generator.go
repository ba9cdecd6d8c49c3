// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package generator

import (
	"math/rand/v2"
	"sort"
)

// Draw is one historical Mega da Virada result.
type Draw struct {
	Year    int   `json:"year"`
	Numbers []int `json:"numbers"`
}

// history holds the 2009-2024 winning numbers used for the frequency
// heuristic.
var history = []Draw{
	{2024, []int{1, 17, 19, 29, 50, 57}},
	{2023, []int{21, 24, 33, 41, 48, 56}},
	{2022, []int{4, 5, 10, 34, 58, 59}},
	{2021, []int{12, 15, 23, 32, 33, 46}},
	{2020, []int{17, 20, 22, 35, 41, 42}},
	{2019, []int{3, 35, 38, 40, 57, 58}},
	{2018, []int{5, 10, 12, 18, 25, 33}},
	{2017, []int{3, 6, 10, 17, 34, 37}},
	{2016, []int{5, 11, 22, 24, 51, 53}},
	{2015, []int{2, 18, 31, 42, 51, 56}},
	{2014, []int{1, 5, 11, 16, 20, 56}},
	{2013, []int{20, 30, 36, 38, 47, 53}},
	{2012, []int{14, 32, 33, 36, 41, 52}},
	{2011, []int{3, 4, 29, 36, 45, 55}},
	{2010, []int{2, 10, 34, 37, 43, 50}},
	{2009, []int{10, 27, 40, 46, 49, 58}},
}

// luckyNumbers are the values in [1, 60] whose numerological reduction
// is 1.
var luckyNumbers = []int{1, 10, 19, 28, 37, 46, 55}

// topFrequentLimit bounds the slice of the frequency ranking that the
// generator draws from.
const topFrequentLimit = 15

// History returns a copy of the historical draw table, newest first.
func History() []Draw {
	out := make([]Draw, len(history))
	for i, d := range history {
		out[i] = Draw{Year: d.Year, Numbers: append([]int(nil), d.Numbers...)}
	}
	return out
}

// Reduce folds the digits of n repeatedly until a single digit remains.
func Reduce(n int) int {
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// frequency counts occurrences of each number across the history table.
func frequency() map[int]int {
	freq := make(map[int]int)
	for _, d := range history {
		for _, n := range d.Numbers {
			freq[n]++
		}
	}
	return freq
}

// topFrequent returns the limit most frequent historical numbers,
// most frequent first. Ties break on the lower number so the ranking
// is stable.
func topFrequent(limit int) []int {
	freq := frequency()
	nums := make([]int, 0, len(freq))
	for n := range freq {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool {
		if freq[nums[i]] != freq[nums[j]] {
			return freq[nums[i]] > freq[nums[j]]
		}
		return nums[i] < nums[j]
	})
	if len(nums) > limit {
		nums = nums[:limit]
	}
	return nums
}

// Combination generates one game of 6 distinct numbers in [1, 60],
// sorted ascending:
//
//  1. 1-3 numbers from the lucky set
//  2. up to 2 numbers from the top-15 of the historical frequency ranking
//  3. fill across the six decade bands, preferring empty bands
func Combination(rng *rand.Rand) []int {
	picked := make(map[int]bool)

	lucky := append([]int(nil), luckyNumbers...)
	rng.Shuffle(len(lucky), func(i, j int) {
		lucky[i], lucky[j] = lucky[j], lucky[i]
	})
	luckyCount := 1 + rng.IntN(3)
	for i := 0; i < luckyCount && len(picked) < 6; i++ {
		picked[lucky[i]] = true
	}

	top := topFrequent(topFrequentLimit)
	for i := 0; i < 2 && len(picked) < 6; i++ {
		// Duplicates are silently skipped; the slot is filled below.
		picked[top[rng.IntN(len(top))]] = true
	}

	// Each decade band is [b*10+1, b*10+10].
	var bands [6]int
	for n := range picked {
		bands[(n-1)/10]++
	}

	for len(picked) < 6 {
		var empty []int
		for b, count := range bands {
			if count == 0 {
				empty = append(empty, b)
			}
		}

		var num int
		if len(empty) > 0 {
			band := empty[rng.IntN(len(empty))]
			num = band*10 + 1 + rng.IntN(10)
		} else {
			num = 1 + rng.IntN(60)
		}

		if picked[num] {
			continue
		}
		picked[num] = true
		bands[(num-1)/10]++
	}

	game := make([]int, 0, 6)
	for n := range picked {
		game = append(game, n)
	}
	sort.Ints(game)
	return game
}

// Pool generates count independent combinations. Two combinations in
// the same pool may be identical; cross-game uniqueness is not
// guaranteed.
func Pool(rng *rand.Rand, count int) [][]int {
	games := make([][]int, 0, count)
	for i := 0; i < count; i++ {
		games = append(games, Combination(rng))
	}
	return games
}

// NewRand returns a randomly seeded source for production use. Tests
// pass their own seeded Rand instead.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
