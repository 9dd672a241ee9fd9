package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/timpalpant/go-clackers"
)

// prompter reads the player's answers from a terminal. It re-asks until
// it gets a valid answer, so the game only ever sees legal choices.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ clackers.Chooser = (*prompter)(nil)

func newPrompter(in *bufio.Reader, out io.Writer) *prompter {
	return &prompter{in: in, out: out}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// prompt asks until parse accepts the answer.
func prompt[T any](p *prompter, question string, parse func(string) (T, error)) (T, error) {
	p.printf("%s : ", question)
	for {
		line, err := p.readLine()
		if err != nil {
			var zero T
			return zero, err
		}
		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		p.printf("Invalid input, Retry : ")
	}
}

func (p *prompter) promptInt(question string) (int, error) {
	return prompt(p, question, strconv.Atoi)
}

func (p *prompter) promptDice() ([]int, error) {
	var numDice int
	for {
		var err error
		if numDice, err = p.promptInt("Number of dices ?"); err != nil {
			return nil, err
		}
		if numDice >= 1 {
			break
		}
		p.printf("You can't play with no dices\n")
	}

	dice := make([]int, 0, numDice)
	for i := 1; i <= numDice; i++ {
		for {
			sides, err := p.promptInt(fmt.Sprintf("Number of sides for dice %d?", i))
			if err != nil {
				return nil, err
			}
			if _, err := clackers.NewDie(sides); err != nil {
				p.printf("You can't have a sideless dice\n")
				continue
			}
			dice = append(dice, sides)
			break
		}
	}
	return dice, nil
}

func (p *prompter) promptMarkingMode() (clackers.MarkingMode, error) {
	return prompt(p, "Choose one game mode : "+strings.Join(clackers.MarkingModeNames(), " | "),
		clackers.ParseMarkingMode)
}

func (p *prompter) promptCombinationMode() (clackers.CombinationMode, error) {
	return prompt(p, "Choose the dice mode : "+strings.Join(clackers.CombinationModeNames(), " | "),
		clackers.ParseCombinationMode)
}

func (p *prompter) ChooseStrategy(g *clackers.Game, roll clackers.Roll, options []clackers.Strategy) (clackers.Strategy, error) {
	names := make([]string, len(options))
	for i, s := range options {
		names[i] = s.String()
	}
	question := "Choose : " + strings.Join(names, " | ")

	for {
		choice, err := prompt(p, question, clackers.ParseStrategy)
		if err != nil {
			return 0, err
		}
		if slices.Contains(options, choice) {
			return choice, nil
		}
		p.printf("This is not one of the possible choices\n")
	}
}

func (p *prompter) PlaceDie(g *clackers.Game, roll clackers.Roll, nth int, stack *clackers.Stack) (int, error) {
	p.printf("Current Stack : %s\n", stack)
	question := fmt.Sprintf("In which slot of the stack to put the dice %d (%s) ?", nth+1, roll[nth])
	for {
		slot, err := p.promptInt(question)
		if err != nil {
			return 0, err
		}
		// Slots are numbered from 1 for the player.
		if slot--; slot >= 0 && slot <= stack.Len() {
			return slot, nil
		}
		p.printf("The slot (%d) can not be out of bounds : [1;%d]\n", slot+1, stack.Len()+1)
	}
}

func (p *prompter) reportMove(roll clackers.Roll, decision clackers.Decision,
	strategy clackers.Strategy, indices []int) {
	switch decision.Kind {
	case clackers.DecideSkip:
		p.printf("There are no possible moves to remove new cells, skipped..\n")
		return
	case clackers.DecideBuildStack:
		p.printf("Final Stack : %v\n", indices)
		return
	case clackers.DecideAuto:
		if !decision.Automatic {
			return // Single die.
		}
		p.printf("Only %s is possible\n", strategy)
	}

	switch strategy {
	case clackers.Total:
		p.printf("You chose to use the total, this gives : %d\n", roll.Sum())
	case clackers.Individual:
		p.printf("You chose to use all the individual values\n")
	}
}
