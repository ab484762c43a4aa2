package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func day5Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day5",
		Short: "If You Give A Seed A Fertilizer",
		Long: `Map seeds through the seven almanac stages and report the lowest location.

The ranged answer walks intervals backward from the locations instead of
visiting seeds. --bound widens the value space it considers; it never
goes below the largest value the almanac mentions. --verify recomputes
the ranged answer by brute force and fails on a mismatch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return _solve(cmd, 5, _day5)
		},
	}
	cmd.Flags().Int64("bound", 0, "upper bound of the value space, raised to the almanac's own if lower")
	cmd.Flags().Bool("verify", false, "cross-check with brute force")
	return cmd
}

func _day5(cfg Config, r *Report) error {
	a, err := LoadAlmanac(cfg.Input)
	if err != nil {
		return err
	}
	log.Debug().Msgf("almanac:\n%v", a)

	single, err := a.LowestSeedLocation()
	if err != nil {
		return err
	}
	r.Add("Lowest Seed Location", single)

	lowest, err := a.LowestLocation(cfg.Bound)
	if err != nil {
		return err
	}
	r.Add("Lowest Location", lowest)

	if cfg.Verify {
		brute, err := a.LowestLocationBrute()
		if err != nil {
			return err
		}
		if brute != lowest {
			return errorf("verify: ranged answer %v, brute force %v", lowest, brute)
		}
		log.Info().Int64("location", brute).Msg("verified")
	}
	return nil
}
