package clackers

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Stack accumulates dice faces into slots in Selection mode. Each slot
// total becomes one cell to mark.
type Stack struct {
	slots []int
}

func (s *Stack) Len() int {
	return len(s.slots)
}

// Place adds face to slot. A slot equal to Len() opens a new slot.
func (s *Stack) Place(slot, face int) error {
	if slot < 0 || slot > len(s.slots) {
		return errors.Wrapf(ErrSlotOutOfRange,
			"slot %d can not be out of bounds [1;%d]", slot+1, len(s.slots)+1)
	}
	if slot == len(s.slots) {
		s.slots = append(s.slots, face)
	} else {
		s.slots[slot] += face
	}
	return nil
}

// Current slot totals.
func (s *Stack) Values() []int {
	result := make([]int, len(s.slots))
	copy(result, s.slots)
	return result
}

func (s *Stack) String() string {
	parts := make([]string, len(s.slots))
	for i, v := range s.slots {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// BuildStack places each die of roll, in order, into the matching slot.
func BuildStack(roll Roll, slots []int) ([]int, error) {
	if len(slots) != len(roll) {
		return nil, errors.Newf("got %d slots for %d dice", len(slots), len(roll))
	}
	var stack Stack
	for i, t := range roll {
		if err := stack.Place(slots[i], t.Face); err != nil {
			return nil, errors.Wrapf(err, "die %d (%s)", i+1, t)
		}
	}
	return stack.Values(), nil
}

// SlotSequences enumerates every valid placement of nDice dice. Each
// sequence corresponds to a distinct partition of the dice into sums.
func SlotSequences(nDice int) [][]int {
	if nDice <= 0 {
		return nil
	} else if nDice == 1 {
		return [][]int{{0}}
	}

	subResult := SlotSequences(nDice - 1)
	result := make([][]int, 0, 2*len(subResult))
	for _, seq := range subResult {
		numSlots := 0
		for _, slot := range seq {
			numSlots = max(numSlots, slot+1)
		}
		for slot := 0; slot <= numSlots; slot++ {
			next := make([]int, nDice)
			copy(next, seq)
			next[nDice-1] = slot
			result = append(result, next)
		}
	}
	return result
}
