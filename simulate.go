package clackers

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
	"gonum.org/v1/gonum/stat"
)

// SimulationParams configures a batch of automatically played games.
type SimulationParams struct {
	Dice     []int
	Rules    RuleSet
	NumGames int
	// Games still running after MaxThrows throws are abandoned.
	// Zero means no limit.
	MaxThrows int
}

// SimulationStats summarizes the number of throws needed to win.
type SimulationStats struct {
	NumGames   int
	Unfinished int
	Mean       float64
	StdDev     float64
	Min        float64
	Median     float64
	P90        float64
	Max        float64
}

func (s SimulationStats) String() string {
	return fmt.Sprintf(
		"games=%d, unfinished=%d, throws: mean=%.2f, stddev=%.2f, min=%.0f, median=%.0f, p90=%.0f, max=%.0f",
		s.NumGames, s.Unfinished, s.Mean, s.StdDev, s.Min, s.Median, s.P90, s.Max)
}

// Simulate plays params.NumGames games with chooser and returns statistics
// over the games that were won.
func Simulate(params SimulationParams, src Source, chooser Chooser) (SimulationStats, error) {
	if params.NumGames <= 0 {
		return SimulationStats{}, errors.Newf("number of games must be positive, got %d", params.NumGames)
	}

	throws := make([]float64, 0, params.NumGames)
	result := SimulationStats{NumGames: params.NumGames}
	for i := 0; i < params.NumGames; i++ {
		g, err := NewGame(params.Dice, params.Rules)
		if err != nil {
			return SimulationStats{}, err
		}

		for !g.Won() && (params.MaxThrows <= 0 || g.Throws() < params.MaxThrows) {
			if _, err := g.Turn(src, chooser); err != nil {
				return SimulationStats{}, errors.Wrapf(err, "game %d", i)
			}
		}

		if g.Won() {
			throws = append(throws, float64(g.Throws()))
		} else {
			result.Unfinished++
		}
		if (i+1)%10000 == 0 {
			glog.Infof("...played %d games", i+1)
		}
	}

	if len(throws) == 0 {
		return result, nil
	}

	slices.Sort(throws)
	result.Mean, result.StdDev = stat.MeanStdDev(throws, nil)
	result.Min = throws[0]
	result.Max = throws[len(throws)-1]
	result.Median = stat.Quantile(0.5, stat.Empirical, throws, nil)
	result.P90 = stat.Quantile(0.9, stat.Empirical, throws, nil)
	return result, nil
}
