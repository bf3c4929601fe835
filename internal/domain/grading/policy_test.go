package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnweightedMean_Empty(t *testing.T) {
	assert.Equal(t, 0.0, PolicyUnweightedMean.Aggregate(nil))
	assert.Equal(t, 0.0, PolicyUnweightedMean.Aggregate([]Entry{}))
}

func TestWeightedMean_Empty(t *testing.T) {
	assert.Equal(t, 0.0, PolicyWeightedMean.Aggregate(nil))
	assert.Equal(t, 0.0, PolicyWeightedMean.Aggregate([]Entry{}))
}

func TestWeightedMean_ZeroTotalWeight(t *testing.T) {
	entries := []Entry{
		{Grade: 80, Weight: 0},
		{Grade: 100, Weight: 0},
	}

	assert.Equal(t, 0.0, PolicyWeightedMean.Aggregate(entries))
}

func TestUnweightedMean_IgnoresWeights(t *testing.T) {
	entries := []Entry{
		{Grade: 80, Weight: 10},
		{Grade: 100, Weight: 1},
	}

	assert.InDelta(t, 90.0, PolicyUnweightedMean.Aggregate(entries), 1e-9)
}

func TestWeightedMean_Formula(t *testing.T) {
	entries := []Entry{
		{Grade: 60, Weight: 1},
		{Grade: 90, Weight: 3},
	}

	// (60*1 + 90*3) / 4 = 82.5
	assert.InDelta(t, 82.5, PolicyWeightedMean.Aggregate(entries), 1e-9)
}

func TestWeightedMean_WithinGradeBounds(t *testing.T) {
	sequences := [][]Entry{
		{{Grade: 0, Weight: 1}, {Grade: 100, Weight: 2}},
		{{Grade: 55.5, Weight: 0.5}, {Grade: 71.25, Weight: 4}, {Grade: 12, Weight: 1}},
		{{Grade: -20, Weight: 3}, {Grade: 40, Weight: 0}, {Grade: 17, Weight: 2.5}},
		{{Grade: 100, Weight: 7}},
	}

	for _, entries := range sequences {
		min, max := entries[0].Grade, entries[0].Grade
		for _, e := range entries[1:] {
			if e.Grade < min {
				min = e.Grade
			}
			if e.Grade > max {
				max = e.Grade
			}
		}

		result := PolicyWeightedMean.Aggregate(entries)
		assert.GreaterOrEqual(t, result, min)
		assert.LessOrEqual(t, result, max)
	}
}

func TestNewEntry_NegativeWeight(t *testing.T) {
	_, err := NewEntry(50, -1)
	assert.ErrorIs(t, err, ErrNegativeWeight)

	entry, err := NewEntry(50, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, entry.Weight)
}

func TestParsePolicy(t *testing.T) {
	policy, err := ParsePolicy("weighted_mean")
	assert.NoError(t, err)
	assert.Equal(t, PolicyWeightedMean, policy)

	policy, err = ParsePolicy("  Unweighted_Mean ")
	assert.NoError(t, err)
	assert.Equal(t, PolicyUnweightedMean, policy)

	_, err = ParsePolicy("median")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestDefaultPolicy(t *testing.T) {
	assert.Equal(t, PolicyUnweightedMean, DefaultPolicy)
	assert.True(t, DefaultPolicy.IsValid())
}
