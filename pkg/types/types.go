package types

import "fmt"

// Phase of the arbiter as reported to observers.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseRunning  Phase = "running"
	PhaseFinished Phase = "finished"
)

// PlayerState is one player's slice of a snapshot.
type PlayerState struct {
	Addr  string `json:"addr"`
	Move  string `json:"move"`
	Score int    `json:"score"`
}

// Snapshot is one authoritative view of the match, broadcast to the two
// players and mirrored to spectators.
type Snapshot struct {
	Phase    Phase       `json:"phase"`
	Player1  PlayerState `json:"player1"`
	Player2  PlayerState `json:"player2"`
	TimeLeft int64       `json:"time_left_sec"`
	Result   string      `json:"result,omitempty"`
}

// Line renders the snapshot as the single-line datagram payload sent to
// players. The format is a compatibility contract with existing clients; the
// result suffix appears only on the terminal broadcast.
func (s Snapshot) Line() string {
	line := fmt.Sprintf("Player 1: %s, Player 2: %s, SCORES => Player 1: %d, Player 2: %d | Time Left: %d sec",
		s.Player1.Move, s.Player2.Move, s.Player1.Score, s.Player2.Score, s.TimeLeft)
	if s.Result != "" {
		line += " | " + s.Result
	}
	return line
}

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
