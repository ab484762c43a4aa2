package main

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/b97tsk/rangeset"
)

var (
	ErrFrozen = errors.New("almanac is already built")
	ErrNoSeed = errors.New("no seed reaches a location")
)

// Stage is one step of the fixed seed-to-location pipeline.
type Stage int

const (
	SeedToSoil Stage = iota
	SoilToFertilizer
	FertilizerToWater
	WaterToLight
	LightToTemperature
	TemperatureToHumidity
	HumidityToLocation

	_stageCount
)

var _stageNames = [_stageCount]string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

func Stages() []Stage {
	stages := make([]Stage, _stageCount)
	for i := range stages {
		stages[i] = Stage(i)
	}
	return stages
}

func (s Stage) String() string {
	if s < 0 || s >= _stageCount {
		return "stage(" + itoa(int(s)) + ")"
	}
	return _stageNames[s]
}

// Rule translates every value of Src to the value at the same offset in
// Dest. Src and Dest always have the same length.
type Rule struct {
	Src, Dest Range
}

func NewRule(destStart, srcStart, length int64) Rule {
	return Rule{RangeOf(srcStart, length), RangeOf(destStart, length)}
}

func identityRule(r Range) Rule {
	return Rule{r, r}
}

// Offset is the amount added to a source value to reach its destination.
func (r Rule) Offset() int64 {
	return r.Dest.Low - r.Src.Low
}

func (r Rule) String() string {
	return sprintf("src: [%v, %v) -> dest: [%v, %v)", r.Src.Low, r.Src.High, r.Dest.Low, r.Dest.High)
}

// Almanac holds the seed set and the translation rules of every stage.
// It is read-only once built.
type Almanac struct {
	seeds      []int64
	seedSet    rangeset.RangeSet[int64]
	rules      [_stageCount][]Rule
	bySource   [_stageCount][]Rule
	inferBound int64
}

func (a *Almanac) Seeds() []int64 {
	return append([]int64(nil), a.seeds...)
}

// SeedRanges returns the seed set as sorted, disjoint ranges.
func (a *Almanac) SeedRanges() []Range {
	ranges := make([]Range, len(a.seedSet))
	for i, r := range a.seedSet {
		ranges[i] = Range{r.Low, r.High}
	}
	return ranges
}

func (a *Almanac) Rules(stage Stage) []Rule {
	return append([]Rule(nil), a.rules[stage]...)
}

// Bound is the smallest value that no seed, source or destination range
// reaches. Mapping a value below Bound always yields a value below Bound.
func (a *Almanac) Bound() int64 {
	return a.inferBound
}

// IsSeed reports whether v lies in the seed set.
func (a *Almanac) IsSeed(v int64) bool {
	return a.seedSet.Contains(v)
}

func (a *Almanac) String() string {
	var b strings.Builder
	fprintf(&b, "seeds: %v\n", a.SeedRanges())
	for _, stage := range Stages() {
		fprintf(&b, "%v map:\n", stage)
		for _, r := range a.rules[stage] {
			fprintf(&b, "  %v\n", r)
		}
	}
	return b.String()
}

// AlmanacBuilder populates an Almanac during parsing. Build hands out the
// finished Almanac and freezes the builder.
type AlmanacBuilder struct {
	a      *Almanac
	frozen bool
}

func NewAlmanacBuilder() *AlmanacBuilder {
	return &AlmanacBuilder{a: new(Almanac)}
}

// AddSeeds takes (start, length) pairs.
func (b *AlmanacBuilder) AddSeeds(values ...int64) error {
	if b.frozen {
		return ErrFrozen
	}
	if len(values)%2 != 0 {
		return errorf("seed values must come in (start, length) pairs, got %v values", len(values))
	}
	for i := 0; i < len(values); i += 2 {
		start, length := values[i], values[i+1]
		if start < 0 || length < 0 {
			return errorf("negative seed range %v %v", start, length)
		}
		if start > math.MaxInt64-length {
			return errorf("seed range %v %v overflows", start, length)
		}
		b.a.seeds = append(b.a.seeds, start, length)
		b.a.seedSet.AddRange(start, start+length)
	}
	return nil
}

func (b *AlmanacBuilder) AddRule(stage Stage, rule Rule) error {
	if b.frozen {
		return ErrFrozen
	}
	if stage < 0 || stage >= _stageCount {
		return errorf("unknown stage %v", stage)
	}
	// NewRule wraps around when start+length overflows
	if rule.Src.High < rule.Src.Low || rule.Dest.High < rule.Dest.Low {
		return errorf("%v: rule overflows: %v", stage, rule)
	}
	if rule.Src.Len() != rule.Dest.Len() {
		return errorf("%v: rule lengths differ: %v", stage, rule)
	}
	if rule.Src.Low < 0 || rule.Dest.Low < 0 {
		return errorf("%v: negative rule: %v", stage, rule)
	}
	if rule.Src.Empty() {
		return nil
	}
	b.a.rules[stage] = append(b.a.rules[stage], rule)
	return nil
}

func (b *AlmanacBuilder) Build() (*Almanac, error) {
	if b.frozen {
		return nil, ErrFrozen
	}
	b.frozen = true

	a := b.a
	for _, r := range a.seedSet {
		a.inferBound = max(a.inferBound, r.High)
	}
	for stage, rules := range a.rules {
		sorted := append([]Rule(nil), rules...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Src.Low < sorted[j].Src.Low })
		for i := 1; i < len(sorted); i++ {
			if sorted[i].Src.Low < sorted[i-1].Src.High {
				return nil, errorf("%v: overlapping source ranges: %v and %v", Stage(stage), sorted[i-1], sorted[i])
			}
		}
		a.bySource[stage] = sorted
		for _, r := range rules {
			a.inferBound = max(a.inferBound, r.Src.High, r.Dest.High)
		}
	}
	return a, nil
}
