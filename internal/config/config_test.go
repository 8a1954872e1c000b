package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:5000" {
		t.Errorf("ListenAddr = %q, want 0.0.0.0:5000", cfg.ListenAddr)
	}
	if cfg.MatchDuration != 20*time.Second {
		t.Errorf("MatchDuration = %v, want 20s", cfg.MatchDuration)
	}
	if cfg.TickInterval != 500*time.Microsecond {
		t.Errorf("TickInterval = %v, want 500µs", cfg.TickInterval)
	}
	if cfg.MatchmakingTimeout != 0 {
		t.Errorf("MatchmakingTimeout = %v, want 0", cfg.MatchmakingTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "127.0.0.1:6000")
	t.Setenv("MATCH_DURATION", "1m")
	t.Setenv("TICK_INTERVAL", "250ms")
	t.Setenv("MATCHMAKING_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:6000" {
		t.Errorf("ListenAddr = %q, want 127.0.0.1:6000", cfg.ListenAddr)
	}
	if cfg.MatchDuration != time.Minute {
		t.Errorf("MatchDuration = %v, want 1m", cfg.MatchDuration)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("TickInterval = %v, want 250ms", cfg.TickInterval)
	}
	if cfg.MatchmakingTimeout != 30*time.Second {
		t.Errorf("MatchmakingTimeout = %v, want 30s", cfg.MatchmakingTimeout)
	}
}
