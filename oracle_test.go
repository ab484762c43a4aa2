package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestToSrc(t *testing.T) {
	a := sampleAlmanac(t)

	assert.Equal(t, int64(98), a.DestToSrc(SeedToSoil, 50))
	assert.Equal(t, int64(79), a.DestToSrc(SeedToSoil, 81))
	assert.Equal(t, int64(10), a.DestToSrc(SeedToSoil, 10))

	for seed := int64(55); seed < 68; seed++ {
		assert.Equal(t, seed, a.SeedForLocation(a.LocationForSeed(seed)))
	}
}

func TestLowestLocationOracles(t *testing.T) {
	a := sampleAlmanac(t)

	brute, err := a.LowestLocationBrute()
	require.NoError(t, err)
	assert.Equal(t, int64(46), brute)

	reverse, err := a.LowestLocationReverse(0)
	require.NoError(t, err)
	assert.Equal(t, int64(46), reverse)

	_, err = a.LowestLocationReverse(46)
	assert.ErrorIs(t, err, ErrNoSeed)
}

func TestOraclesNoSeed(t *testing.T) {
	a, err := NewAlmanacBuilder().Build()
	require.NoError(t, err)

	_, err = a.LowestLocationBrute()
	assert.ErrorIs(t, err, ErrNoSeed)
	_, err = a.LowestLocationReverse(0)
	assert.ErrorIs(t, err, ErrNoSeed)
}
