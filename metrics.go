package clackers

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "clackers"

var (
	throwsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "throws_total",
		Help:      "Number of throws, by whether a move was applied or skipped.",
	}, []string{"outcome"})

	cellsMarkedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "cells_selected_total",
		Help:      "Number of cell selections applied to boards.",
	})

	gamesWonTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "games_won_total",
		Help:      "Number of games played to completion, by rule set.",
	}, []string{"marking", "combination"})

	throwsPerGame = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "throws_per_game",
		Help:      "Number of throws needed to win a game.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
)

const (
	outcomeApplied = "applied"
	outcomeSkipped = "skipped"
)

// RegisterMetrics registers the game collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		throwsTotal, cellsMarkedTotal, gamesWonTotal, throwsPerGame,
	} {
		if err := reg.Register(c); err != nil {
			return errors.Wrap(err, "registering metrics")
		}
	}
	return nil
}

func recordThrow(numIndices int) {
	if numIndices == 0 {
		throwsTotal.WithLabelValues(outcomeSkipped).Inc()
		return
	}
	throwsTotal.WithLabelValues(outcomeApplied).Inc()
	cellsMarkedTotal.Add(float64(numIndices))
}

func recordWin(rules RuleSet, throws int) {
	gamesWonTotal.WithLabelValues(rules.Marking.String(), rules.Combination.String()).Inc()
	throwsPerGame.Observe(float64(throws))
}
