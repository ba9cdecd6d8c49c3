// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"sort"
)

const (
	// GameSize is the number of values in one combination.
	GameSize = 6
	// MinNumber and MaxNumber bound the valid value range.
	MinNumber = 1
	MaxNumber = 60
)

var (
	ErrNumbersCount = errors.New("game must have exactly 6 numbers")
	ErrNumbersRange = errors.New("numbers must be between 1 and 60")
)

// ValidateNumbers checks the length and range of a number set.
// Duplicate values are not rejected; they pass through unchanged.
func ValidateNumbers(nums []int) error {
	if len(nums) != GameSize {
		return ErrNumbersCount
	}
	for _, n := range nums {
		if n < MinNumber || n > MaxNumber {
			return ErrNumbersRange
		}
	}
	return nil
}

// SortNumbers returns a copy of nums sorted ascending, the canonical
// storage order for a combination.
func SortNumbers(nums []int) []int {
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)
	return sorted
}

// EncodeNumbers serializes a number set to the JSON text stored in the
// entry.numbers column.
func EncodeNumbers(nums []int) (string, error) {
	b, err := json.Marshal(nums)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeNumbers parses the stored JSON text back into a number set.
func DecodeNumbers(s string) ([]int, error) {
	var nums []int
	if err := json.Unmarshal([]byte(s), &nums); err != nil {
		return nil, err
	}
	return nums, nil
}
