package main

import (
	"sort"

	"github.com/b97tsk/rangeset"
	"github.com/rs/zerolog/log"
)

// MapValue translates v through stage. Values no rule covers pass
// through unchanged.
func (a *Almanac) MapValue(stage Stage, v int64) int64 {
	rules := a.bySource[stage]
	i := sort.Search(len(rules), func(i int) bool { return rules[i].Src.High > v })
	if i < len(rules) && rules[i].Src.Contains(v) {
		return v + rules[i].Offset()
	}
	return v
}

func (a *Almanac) LocationForSeed(seed int64) int64 {
	v := seed
	for stage := Stage(0); stage < _stageCount; stage++ {
		v = a.MapValue(stage, v)
	}
	return v
}

// LowestSeedLocation treats every number on the seeds line as a seed on
// its own and returns the lowest location among them.
func (a *Almanac) LowestSeedLocation() (int64, error) {
	if len(a.seeds) == 0 {
		return 0, ErrNoSeed
	}
	lowest := a.LocationForSeed(a.seeds[0])
	for _, seed := range a.seeds[1:] {
		lowest = min(lowest, a.LocationForSeed(seed))
	}
	return lowest, nil
}

// ExpandStage returns the rules of stage sorted by destination, together
// with identity rules covering every value in [0, bound) that no rule
// takes as a source. Source sides of the result never overlap.
func (a *Almanac) ExpandStage(stage Stage, bound int64) []Rule {
	rules := append([]Rule(nil), a.rules[stage]...)

	var gaps rangeset.RangeSet[int64]
	gaps.AddRange(0, bound)
	for _, r := range rules {
		gaps.DeleteRange(r.Src.Low, r.Src.High)
	}
	for _, g := range gaps {
		rules = append(rules, identityRule(Range{g.Low, g.High}))
	}

	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Dest.Low != rules[j].Dest.Low {
			return rules[i].Dest.Low < rules[j].Dest.Low
		}
		return rules[i].Src.Low < rules[j].Src.Low
	})
	return rules
}

// Trace is a run of values at some stage together with the offset that
// carries each of them to its final location.
type Trace struct {
	Range
	Offset int64
}

func (t Trace) Location() Range {
	return t.Range.Shift(t.Offset)
}

// SourceTraces maps traces in the destination space of stage back to the
// source values that produce them. Pieces of one input trace come out in
// ascending destination order; pieces of different inputs may overlap.
func (a *Almanac) SourceTraces(stage Stage, dest []Trace, bound int64) []Trace {
	rules := a.ExpandStage(stage, bound)
	var src []Trace
	for _, d := range dest {
		for _, r := range rules {
			x, ok := d.Range.Intersect(r.Dest)
			if !ok {
				continue
			}
			src = append(src, Trace{x.Shift(-r.Offset()), d.Offset + r.Offset()})
		}
	}
	return src
}

// SourceRanges is SourceTraces for plain ranges.
func (a *Almanac) SourceRanges(stage Stage, dest []Range, bound int64) []Range {
	traces := make([]Trace, len(dest))
	for i, r := range dest {
		traces[i] = Trace{Range: r}
	}
	traces = a.SourceTraces(stage, traces, bound)
	src := make([]Range, len(traces))
	for i, t := range traces {
		src[i] = t.Range
	}
	return src
}

// SeedTraces propagates the locations in dest back through every stage.
func (a *Almanac) SeedTraces(dest []Trace, bound int64) []Trace {
	for stage := _stageCount - 1; stage >= 0; stage-- {
		dest = a.SourceTraces(stage, dest, bound)
		log.Debug().Stringer("stage", stage).Int("ranges", len(dest)).Msg("propagated")
	}
	return dest
}

// LowestLocation finds the lowest location any seed in the seed set
// reaches without visiting seeds one by one. bound widens the value space
// beyond the almanac's own Bound; it never narrows it, since values at or
// above Bound would otherwise drop out of the walk.
func (a *Almanac) LowestLocation(bound int64) (int64, error) {
	bound = max(bound, a.Bound())

	traces := a.SeedTraces([]Trace{{Range: Range{0, bound}}}, bound)
	sort.SliceStable(traces, func(i, j int) bool {
		return traces[i].Location().Low < traces[j].Location().Low
	})

	seeds := a.SeedRanges()
	lowest, found := int64(0), false
	for _, t := range traces {
		if found && t.Location().Low >= lowest {
			break
		}
		for _, s := range seeds {
			x, ok := t.Range.Intersect(s)
			if !ok {
				continue
			}
			// seeds are ascending, so x.Low is the lowest seed of t
			location := a.LocationForSeed(x.Low)
			log.Debug().Int64("seed", x.Low).Int64("location", location).Msg("candidate")
			if !found || location < lowest {
				lowest, found = location, true
			}
			break
		}
	}
	if !found {
		return 0, ErrNoSeed
	}
	return lowest, nil
}
