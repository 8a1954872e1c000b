package match

import (
	"log"
	"net"
	"time"

	"github.com/yourname/rps-arbiter/internal/game"
	"github.com/yourname/rps-arbiter/internal/metrics"
	"github.com/yourname/rps-arbiter/internal/store"
	"github.com/yourname/rps-arbiter/internal/ws"
	"github.com/yourname/rps-arbiter/pkg/types"
)

// Result strings carried by the terminal broadcast.
const (
	resultP1Wins = "Player 1 wins!"
	resultP2Wins = "Player 2 wins!"
	resultDraw   = "It's a draw!"
)

// player is one claimed slot: a fixed address plus the state the loop scores.
type player struct {
	addr  *net.UDPAddr
	move  game.Move
	score int
}

// Loop runs the scored match. It is the sole owner of the match state: every
// mutation happens on the goroutine that calls Run. Observers get immutable
// snapshot copies through the store and hub.
type Loop struct {
	conn     *net.UDPConn
	p1, p2   player
	duration time.Duration
	tick     time.Duration
	st       store.Store
	hub      *ws.Hub
}

func NewLoop(conn *net.UDPConn, addr1, addr2 *net.UDPAddr, duration, tick time.Duration, st store.Store, hub *ws.Hub) *Loop {
	return &Loop{
		conn:     conn,
		p1:       player{addr: addr1, move: game.Rock},
		p2:       player{addr: addr2, move: game.Rock},
		duration: duration,
		tick:     tick,
		st:       st,
		hub:      hub,
	}
}

// Run plays the match to completion and returns the terminal snapshot.
func (l *Loop) Run() types.Snapshot {
	start := time.Now()
	lastTick := start
	buf := make([]byte, recvBufSize)

	for {
		elapsed := time.Since(start)
		if elapsed >= l.duration {
			final := l.snapshot(types.PhaseFinished, 0)
			final.Result = l.result()
			l.broadcast(final)
			l.publish("match_end", final)
			log.Printf("Game ended: %s", final.Result)
			return final
		}

		l.recvMove(buf)

		if time.Since(lastTick) >= l.tick {
			lastTick = time.Now()
			l.score()
			metrics.TicksTotal.Inc()

			left := int64((l.duration - elapsed) / time.Second)
			metrics.TimeLeft.Set(float64(left))
			snap := l.snapshot(types.PhaseRunning, left)
			l.broadcast(snap)
			l.publish("state", snap)
		}
	}
}

// recvMove performs one bounded receive and applies a move update when the
// datagram came from a registered player and parses as a move. Anything else
// is dropped without a response.
func (l *Loop) recvMove(buf []byte) {
	n, src, ok, err := pollRead(l.conn, buf)
	if err != nil {
		log.Printf("match recv err: %v", err)
		return
	}
	if !ok {
		return
	}
	metrics.PacketsTotal.Inc()

	mv, valid := game.ParseMove(string(buf[:n]))
	if !valid {
		return
	}
	switch {
	case sameAddr(src, l.p1.addr):
		l.p1.move = mv
		metrics.MovesTotal.WithLabelValues("1").Inc()
		log.Printf("Player 1 chose %s", mv)
	case sameAddr(src, l.p2.addr):
		l.p2.move = mv
		metrics.MovesTotal.WithLabelValues("2").Inc()
		log.Printf("Player 2 chose %s", mv)
	}
}

func (l *Loop) score() {
	switch game.Compare(l.p1.move, l.p2.move) {
	case 1:
		l.p1.score++
	case -1:
		l.p2.score++
	}
}

func (l *Loop) result() string {
	switch {
	case l.p1.score > l.p2.score:
		return resultP1Wins
	case l.p2.score > l.p1.score:
		return resultP2Wins
	}
	return resultDraw
}

func (l *Loop) snapshot(phase types.Phase, left int64) types.Snapshot {
	return types.Snapshot{
		Phase:    phase,
		Player1:  types.PlayerState{Addr: l.p1.addr.String(), Move: l.p1.move.String(), Score: l.p1.score},
		Player2:  types.PlayerState{Addr: l.p2.addr.String(), Move: l.p2.move.String(), Score: l.p2.score},
		TimeLeft: left,
	}
}

// broadcast sends the state line to both players independently; a failed send
// is counted and logged but never retried.
func (l *Loop) broadcast(snap types.Snapshot) {
	line := []byte(snap.Line())
	for _, addr := range []*net.UDPAddr{l.p1.addr, l.p2.addr} {
		if _, err := l.conn.WriteToUDP(line, addr); err != nil {
			metrics.SendErrors.Inc()
			log.Printf("broadcast to %s err: %v", addr, err)
		}
	}
}

func (l *Loop) publish(evType string, snap types.Snapshot) {
	if l.st != nil {
		l.st.Put(snap)
	}
	if l.hub != nil {
		l.hub.Broadcast(types.Event{Type: evType, Payload: snap})
	}
}
