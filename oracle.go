package main

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// DestToSrc undoes MapValue for a single value: the first rule whose
// destination holds v decides, otherwise v is its own source.
func (a *Almanac) DestToSrc(stage Stage, v int64) int64 {
	for _, r := range a.rules[stage] {
		if r.Dest.Contains(v) {
			return v - r.Offset()
		}
	}
	return v
}

func (a *Almanac) SeedForLocation(location int64) int64 {
	v := location
	for stage := _stageCount - 1; stage >= 0; stage-- {
		v = a.DestToSrc(stage, v)
	}
	return v
}

// LowestLocationBrute evaluates every seed in the seed set.
func (a *Almanac) LowestLocationBrute() (int64, error) {
	lowest, found := int64(0), false
	for _, r := range a.seedSet {
		for seed := r.Low; seed < r.High; seed++ {
			location := a.LocationForSeed(seed)
			if !found || location < lowest {
				lowest, found = location, true
			}
		}
	}
	if !found {
		return 0, ErrNoSeed
	}
	return lowest, nil
}

// LowestLocationReverse walks locations upward from zero until one maps
// back into the seed set. It gives up at limit, or at Bound when limit is
// zero or less.
func (a *Almanac) LowestLocationReverse(limit int64) (int64, error) {
	if limit <= 0 {
		limit = a.Bound()
	}
	progress := rate.Sometimes{Every: 10000}
	for location := int64(0); location < limit; location++ {
		progress.Do(func() {
			log.Info().Int64("location", location).Msg("reverse search")
		})
		if a.IsSeed(a.SeedForLocation(location)) {
			return location, nil
		}
	}
	return 0, ErrNoSeed
}
