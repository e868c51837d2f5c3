package vic

import (
	"github.com/BackendStack21/old-crypto-go/utils"
)

// Keys is the output of a key schedule.
type Keys struct {
	// Checkerboard keys the straddling checkerboard.
	Checkerboard string
	// First and Second key the two transpositions, applied in that order.
	First  string
	Second string
}

// Schedule derives per-message keys from the agent's material.
type Schedule interface {
	Derive(m Material) (Keys, error)
}

// ChainSchedule is the simplified chain-addition schedule: the message
// number minus the indicator is expanded, mixed with both halves of the
// phrase and chain-added into the transposition and checkerboard keys.
type ChainSchedule struct{}

var _ Schedule = ChainSchedule{}

// Steps holds every intermediate value of ChainSchedule, for checking a
// derivation by hand.
type Steps struct {
	Phrase1 []int
	Phrase2 []int
	First   []int
	Mixed   []int
	Second  []int
	Third   []int
}

func (ChainSchedule) Derive(m Material) (Keys, error) {
	if err := m.Validate(); err != nil {
		return Keys{}, err
	}
	s := ChainSchedule{}.Steps(m)
	return Keys{
		Checkerboard: digitString(rankDigits(s.Third)),
		First:        digitString(s.Second),
		Second:       digitString(s.Third),
	}, nil
}

// Steps runs the derivation on already validated material.
func (ChainSchedule) Steps(m Material) Steps {
	phrase := upper(m.Phrase)
	var s Steps
	s.Phrase1 = phraseDigits(phrase[:10])
	s.Phrase2 = phraseDigits(phrase[10:20])
	s.First = Expand5To10(SubMod10(digits(m.MessageNumber), digits(m.Indicator[:5])))
	s.Mixed = AddMod10(s.First, s.Phrase1)
	s.Second = FirstEncode(s.Mixed, s.Phrase2)

	s.Third = append([]int(nil), s.Second...)
	for i := 0; i < 5; i++ {
		chainAddInPlace(s.Third)
	}
	return s
}

// phraseDigits numbers the letters of s alphabetically from 1, with 0 for
// the tenth.
func phraseDigits(s string) []int {
	ranks := utils.ToNumeric(s)
	for i := range ranks {
		ranks[i] = (ranks[i] + 1) % 10
	}
	return ranks
}

func rankDigits(a []int) []int {
	return utils.ToNumeric(digitString(a))
}
