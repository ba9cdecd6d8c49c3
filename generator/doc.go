// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package generator produces lottery number combinations with a weighted
random heuristic.

# Algorithm

Each combination is 6 distinct numbers in [1, 60], built in three steps:

 1. 1-3 numbers drawn without replacement from the lucky set
    {1, 10, 19, 28, 37, 46, 55} - the values whose numerological
    reduction (repeated digit-sum folding) equals 1.
 2. Up to 2 numbers drawn uniformly from the 15 most frequent values in
    the 2009-2024 historical draw table. Duplicates are skipped.
 3. Remaining slots filled across the six decade bands ([1-10] through
    [51-60]), preferring bands with no selection yet, then uniform over
    the full range once every band is covered.

The result is returned sorted ascending.

# Randomness

All functions take a *rand.Rand (math/rand/v2) so callers can seed the
source in tests. NewRand returns a randomly seeded source for
production use.

# Pools

Pool generates N independent combinations. There is no cross-game
uniqueness guarantee: two games in the same pool may be identical.
*/
package generator
