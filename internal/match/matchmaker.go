package match

import (
	"errors"
	"log"
	"net"
	"os"
	"time"
)

const (
	// recvBufSize matches the wire contract: datagrams beyond 128 bytes are
	// truncated, which is harmless since moves are single characters.
	recvBufSize = 128
	// pollWait bounds one receive attempt. It sits well under the default
	// tick interval so move pickup latency stays sub-tick.
	pollWait = 100 * time.Microsecond
)

// ErrNoPlayers is returned when a matchmaking timeout elapses before two
// distinct peers showed up.
var ErrNoPlayers = errors.New("matchmaking timed out before two players connected")

// pollRead performs one bounded receive. ok is false when no datagram was
// waiting; that is the normal idle outcome, not an error.
func pollRead(conn *net.UDPConn, buf []byte) (n int, src *net.UDPAddr, ok bool, err error) {
	if err := conn.SetReadDeadline(time.Now().Add(pollWait)); err != nil {
		return 0, nil, false, err
	}
	n, src, err = conn.ReadFromUDP(buf)
	if err != nil {
		if os.IsTimeout(err) {
			return 0, nil, false, nil
		}
		return 0, nil, false, err
	}
	return n, src, true, nil
}

func sameAddr(a, b *net.UDPAddr) bool {
	return a.Port == b.Port && a.IP.Equal(b.IP) && a.Zone == b.Zone
}

// Matchmaker assigns the first two distinct datagram senders as Player 1 and
// Player 2. Any payload counts as a hello; contents are ignored until the
// match starts.
type Matchmaker struct {
	conn    *net.UDPConn
	timeout time.Duration // zero means wait forever
}

func NewMatchmaker(conn *net.UDPConn, timeout time.Duration) *Matchmaker {
	return &Matchmaker{conn: conn, timeout: timeout}
}

// Run blocks until both player slots are claimed and returns the two
// addresses. A sender that already holds a slot is never reassigned, and once
// both slots are filled no further address can claim one. Transient receive
// errors are logged and matchmaking continues.
func (m *Matchmaker) Run() (*net.UDPAddr, *net.UDPAddr, error) {
	var deadline time.Time
	if m.timeout > 0 {
		deadline = time.Now().Add(m.timeout)
	}

	var p1, p2 *net.UDPAddr
	buf := make([]byte, recvBufSize)
	for {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil, nil, ErrNoPlayers
		}
		_, src, ok, err := pollRead(m.conn, buf)
		if err != nil {
			log.Printf("matchmaker recv err: %v", err)
			continue
		}
		if !ok {
			continue
		}
		switch {
		case p1 == nil:
			p1 = src
			log.Printf("Player 1 connected: %s", src)
		case p2 == nil && !sameAddr(src, p1):
			p2 = src
			log.Printf("Player 2 connected: %s", src)
		}
		if p1 != nil && p2 != nil {
			log.Println("Both players connected! Starting the game...")
			return p1, p2, nil
		}
	}
}
