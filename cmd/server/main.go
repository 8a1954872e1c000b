package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/yourname/rps-arbiter/internal/api"
	"github.com/yourname/rps-arbiter/internal/config"
	"github.com/yourname/rps-arbiter/internal/match"
	"github.com/yourname/rps-arbiter/internal/metrics"
	"github.com/yourname/rps-arbiter/internal/store"
	"github.com/yourname/rps-arbiter/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	udpAddr, err := net.ResolveUDPAddr("udp", cfg.ListenAddr)
	if err != nil {
		log.Fatalf("resolve %s: %v", cfg.ListenAddr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		log.Fatalf("bind %s: %v", cfg.ListenAddr, err)
	}
	defer conn.Close()

	// Latest-snapshot store for the ops surface
	st := store.NewMemStore()

	// Event hub for spectator WS clients
	hub := ws.NewHub()
	go hub.Run()

	// metrics
	metrics.Init()

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: api.NewRouter(st, hub)}
	go func() {
		log.Printf("http listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	log.Printf("Server listening on %s... Waiting for players to connect.", conn.LocalAddr())
	mm := match.NewMatchmaker(conn, cfg.MatchmakingTimeout)
	addr1, addr2, err := mm.Run()
	if err != nil {
		log.Fatalf("matchmaking: %v", err)
	}

	loop := match.NewLoop(conn, addr1, addr2, cfg.MatchDuration, cfg.TickInterval, st, hub)
	loop.Run()

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShut()
	_ = srv.Shutdown(ctxShut)
}
