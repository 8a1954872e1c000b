package game

import "testing"

func TestParseMove(t *testing.T) {
	tests := []struct {
		payload string
		want    Move
		ok      bool
	}{
		{"r", Rock, true},
		{"R", Rock, true},
		{"p", Paper, true},
		{"P", Paper, true},
		{"s", Scissors, true},
		{"S", Scissors, true},
		// whitespace is trimmed before the first character is read
		{"  r\n", Rock, true},
		{"\tp ", Paper, true},
		// only the first character matters
		{"scissors", Scissors, true},
		{"rock beats all", Rock, true},
		// rejected payloads
		{"x", Rock, false},
		{"", Rock, false},
		{"   ", Rock, false},
		{"1", Rock, false},
		{"\xff\xfe", Rock, false},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			got, ok := ParseMove(tt.payload)
			if ok != tt.ok {
				t.Fatalf("ParseMove(%q) ok = %v, want %v", tt.payload, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %v", tt.payload, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Move
		want int
	}{
		{Rock, Scissors, 1},
		{Scissors, Paper, 1},
		{Paper, Rock, 1},
		{Scissors, Rock, -1},
		{Paper, Scissors, -1},
		{Rock, Paper, -1},
		{Rock, Rock, 0},
		{Paper, Paper, 0},
		{Scissors, Scissors, 0},
	}

	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompare_Antisymmetric(t *testing.T) {
	moves := []Move{Rock, Paper, Scissors}
	for _, a := range moves {
		for _, b := range moves {
			if Compare(a, b) != -Compare(b, a) {
				t.Errorf("Compare(%v, %v) = %d but Compare(%v, %v) = %d", a, b, Compare(a, b), b, a, Compare(b, a))
			}
		}
		if Compare(a, a) != 0 {
			t.Errorf("Compare(%v, %v) = %d, want 0", a, a, Compare(a, a))
		}
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		m    Move
		want string
	}{
		{Rock, "Rock"},
		{Paper, "Paper"},
		{Scissors, "Scissors"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Move(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
