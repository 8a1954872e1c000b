package game

import "strings"

// Move is one of the three throws. The zero value is Rock, which is also the
// default move a player holds until they send something else.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

func (m Move) String() string {
	switch m {
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "Rock"
	}
}

// ParseMove reads a move from a raw datagram payload: trim whitespace, take
// the first character, match r/p/s case-insensitively. The bool reports
// whether a move was recognized; callers keep the previous move otherwise.
func ParseMove(payload string) (Move, bool) {
	s := strings.TrimSpace(payload)
	if s == "" {
		return Rock, false
	}
	switch s[0] {
	case 'r', 'R':
		return Rock, true
	case 'p', 'P':
		return Paper, true
	case 's', 'S':
		return Scissors, true
	}
	return Rock, false
}

// Compare returns +1 if a beats b, -1 if b beats a, and 0 on a tie. The
// relation is a 3-cycle: Rock beats Scissors, Scissors beats Paper, Paper
// beats Rock.
func Compare(a, b Move) int {
	if a == b {
		return 0
	}
	switch {
	case a == Rock && b == Scissors,
		a == Scissors && b == Paper,
		a == Paper && b == Rock:
		return 1
	}
	return -1
}
