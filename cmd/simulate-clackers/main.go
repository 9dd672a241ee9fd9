package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/timpalpant/go-clackers"
)

type Params struct {
	clackers.Config
	NumGames  int
	MaxThrows int
}

func main() {
	params := Params{
		Config: clackers.Config{
			Dice:        clackers.DiceList{6, 6},
			Marking:     clackers.Remove.String(),
			Combination: clackers.AllOrOne.String(),
		},
	}
	if err := clackers.LoadEnv(&params.Config); err != nil {
		glog.Errorf("Unable to load configuration: %v", err)
		os.Exit(1)
	}
	params.RegisterFlags(flag.CommandLine)
	flag.IntVar(&params.NumGames, "num_games", 10000, "Number of games to play")
	flag.IntVar(&params.MaxThrows, "max_throws", 100000, "Abandon games after this many throws (0 = never)")
	flag.Parse()

	if params.MetricsAddr != "" {
		go serveMetrics(params.MetricsAddr)
	}

	rules, err := params.RuleSet()
	if err != nil {
		glog.Errorf("Invalid rules: %v", err)
		os.Exit(1)
	}

	glog.Infof("Simulating %d games with dice %v and rules %s",
		params.NumGames, params.Dice, rules)
	stats, err := clackers.Simulate(clackers.SimulationParams{
		Dice:      params.Dice,
		Rules:     rules,
		NumGames:  params.NumGames,
		MaxThrows: params.MaxThrows,
	}, clackers.NewRandomSource(params.Seed), clackers.GreedyChooser{})
	if err != nil {
		glog.Errorf("Simulation failed: %v", err)
		os.Exit(1)
	}
	glog.Infof("Results: %v", stats)
}

func serveMetrics(addr string) {
	reg := prometheus.NewRegistry()
	if err := clackers.RegisterMetrics(reg); err != nil {
		glog.Errorf("Unable to register metrics: %v", err)
		return
	}
	glog.Infof("Serving metrics on %s", addr)
	err := http.ListenAndServe(addr, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	glog.Errorf("Metrics server stopped: %v", err)
}
