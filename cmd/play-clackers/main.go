package main

import (
	"bufio"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/timpalpant/go-clackers"
)

type Params struct {
	clackers.Config
}

func main() {
	var params Params
	if err := clackers.LoadEnv(&params.Config); err != nil {
		glog.Errorf("Unable to load configuration: %v", err)
		os.Exit(1)
	}
	params.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if params.MetricsAddr != "" {
		go serveMetrics(params.MetricsAddr)
	}

	p := newPrompter(bufio.NewReader(os.Stdin), os.Stdout)
	game, err := setupGame(p, params.Config)
	if err != nil {
		glog.Errorf("Unable to set up game: %v", err)
		os.Exit(1)
	}

	throws, err := playGame(p, game, clackers.NewRandomSource(params.Seed))
	if err != nil {
		glog.Errorf("Game %s aborted after %d throw(s): %v", game.ID(), throws, err)
		os.Exit(1)
	}
	fmt.Printf("You won in %d throw(s)\n", throws)
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

// setupGame builds a game from cfg, prompting for anything left unset.
func setupGame(p *prompter, cfg clackers.Config) (*clackers.Game, error) {
	dice := []int(cfg.Dice)
	if len(dice) == 0 {
		var err error
		if dice, err = p.promptDice(); err != nil {
			return nil, err
		}
	}

	var rules clackers.RuleSet
	var err error
	if cfg.Marking != "" {
		if rules.Marking, err = clackers.ParseMarkingMode(cfg.Marking); err != nil {
			return nil, err
		}
	} else if rules.Marking, err = p.promptMarkingMode(); err != nil {
		return nil, err
	}
	if cfg.Combination != "" {
		if rules.Combination, err = clackers.ParseCombinationMode(cfg.Combination); err != nil {
			return nil, err
		}
	} else if rules.Combination, err = p.promptCombinationMode(); err != nil {
		return nil, err
	}

	return clackers.NewGame(dice, rules)
}

func playGame(p *prompter, game *clackers.Game, src clackers.Source) (int, error) {
	for {
		p.printf("The board state : %s\n", clackers.RenderBoard(game.Board()))
		roll := game.Roll(src)
		p.printf("You threw the dice(s) : %s\n", clackers.RenderRoll(roll))

		decision := game.Decide(roll)
		indices, strategy, err := game.Resolve(roll, decision, p)
		if err != nil {
			return game.Throws(), err
		}
		p.reportMove(roll, decision, strategy, indices)

		if game.Apply(indices) {
			return game.Throws(), nil
		}
	}
}
