package main

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const _sampleAlmanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func sampleAlmanac(t *testing.T) *Almanac {
	t.Helper()
	a, err := ParseAlmanac(strings.NewReader(_sampleAlmanac))
	require.NoError(t, err)
	return a
}

func TestParseAlmanac(t *testing.T) {
	a := sampleAlmanac(t)

	assert.Equal(t, []int64{79, 14, 55, 13}, a.Seeds())
	assert.Equal(t, []Range{{55, 68}, {79, 93}}, a.SeedRanges())
	assert.Equal(t, []Rule{NewRule(50, 98, 2), NewRule(52, 50, 48)}, a.Rules(SeedToSoil))
	assert.Len(t, a.Rules(HumidityToLocation), 2)
	assert.Equal(t, int64(100), a.Bound())
	assert.Contains(t, a.String(), "humidity-to-location map:")
}

func TestParseAlmanacErrors(t *testing.T) {
	stages := _sampleAlmanac[strings.Index(_sampleAlmanac, "\n"):]
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"empty", "", 1},
		{"bad seeds", "seed: 1 2" + stages, 1},
		{"odd seeds", "seeds: 1 2 3" + stages, 1},
		{"wrong order", strings.Replace(_sampleAlmanac, "seed-to-soil", "soil-to-seed", 1), 3},
		{"bad rule", strings.Replace(_sampleAlmanac, "50 98 2", "50 98", 1), 4},
		{"overflowing seeds", "seeds: 9223372036854775800 100" + stages, 1},
		{"overflowing rule", strings.Replace(_sampleAlmanac, "50 98 2", "50 9223372036854775800 100", 1), 4},
		{"missing stage", _sampleAlmanac[:strings.Index(_sampleAlmanac, "humidity-to-location")], 31},
		{"trailing", _sampleAlmanac + "\nextra\n", 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAlmanac(strings.NewReader(tt.input))
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestAlmanacBuilder(t *testing.T) {
	b := NewAlmanacBuilder()
	require.NoError(t, b.AddSeeds(10, 5, 12, 10))
	require.NoError(t, b.AddRule(SeedToSoil, NewRule(100, 0, 5)))
	require.NoError(t, b.AddRule(SeedToSoil, NewRule(0, 7, 0)))
	assert.Error(t, b.AddSeeds(1))
	assert.Error(t, b.AddRule(Stage(7), NewRule(0, 0, 1)))
	assert.Error(t, b.AddRule(SeedToSoil, Rule{Range{0, 2}, Range{0, 3}}))

	a, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []Range{{10, 22}}, a.SeedRanges(), "overlapping seed ranges merge")
	assert.Len(t, a.Rules(SeedToSoil), 1, "empty rules are dropped")
	assert.True(t, a.IsSeed(10))
	assert.True(t, a.IsSeed(21))
	assert.False(t, a.IsSeed(22))
	assert.False(t, a.IsSeed(9))

	assert.ErrorIs(t, b.AddSeeds(1, 1), ErrFrozen)
	assert.ErrorIs(t, b.AddRule(SeedToSoil, NewRule(0, 0, 1)), ErrFrozen)
	_, err = b.Build()
	assert.ErrorIs(t, err, ErrFrozen)
}

func TestAlmanacBuilderOverflow(t *testing.T) {
	b := NewAlmanacBuilder()
	assert.Error(t, b.AddSeeds(math.MaxInt64-1, 5))
	assert.Error(t, b.AddRule(SeedToSoil, NewRule(0, math.MaxInt64-1, 5)))
	assert.Error(t, b.AddRule(SeedToSoil, NewRule(math.MaxInt64-1, 0, 5)))
	require.NoError(t, b.AddSeeds(math.MaxInt64-5, 5))
	require.NoError(t, b.AddRule(SeedToSoil, NewRule(0, math.MaxInt64-5, 5)))

	a, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, a.Rules(SeedToSoil), 1)
	assert.Equal(t, int64(math.MaxInt64), a.Bound())
}

func TestAlmanacBuilderOverlappingSources(t *testing.T) {
	b := NewAlmanacBuilder()
	require.NoError(t, b.AddRule(WaterToLight, NewRule(0, 10, 5)))
	require.NoError(t, b.AddRule(WaterToLight, NewRule(50, 12, 5)))
	_, err := b.Build()
	assert.Error(t, err)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "seed-to-soil", SeedToSoil.String())
	assert.Equal(t, "humidity-to-location", HumidityToLocation.String())
	assert.Equal(t, "stage(9)", Stage(9).String())
	assert.Len(t, Stages(), 7)
}
