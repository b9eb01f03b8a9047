package protocol

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"toggle", Command{Kind: Toggle}, "toggle"},
		{"complete", Command{Kind: Complete}, "end"},
		{"lock", Command{Kind: ToggleLock}, "lock"},
		{"add", Command{Kind: AdjustTime, Dir: Add, Amount: 60}, "time add 60"},
		{"sub", Command{Kind: AdjustTime, Dir: Subtract, Amount: 300}, "time sub 300"},
		{"zero", Command{Kind: AdjustTime, Dir: Add, Amount: 0}, "time add 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.cmd)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"zero kind", Command{}},
		{"negative amount", Command{Kind: AdjustTime, Dir: Add, Amount: -1}},
		{"missing direction", Command{Kind: AdjustTime, Amount: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Encode(tt.cmd); err == nil {
				t.Errorf("Encode(%+v) error = nil, want error", tt.cmd)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		msg  string
		want Command
	}{
		{"toggle", Command{Kind: Toggle}},
		{"end", Command{Kind: Complete}},
		{"lock", Command{Kind: ToggleLock}},
		{"time add 60", Command{Kind: AdjustTime, Dir: Add, Amount: 60}},
		{"time sub 5", Command{Kind: AdjustTime, Dir: Subtract, Amount: 5}},
		{"  toggle\n", Command{Kind: Toggle}},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got, err := Decode([]byte(tt.msg))
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.msg, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"bogus",
		"toggle now",
		"end please",
		"time",
		"time add",
		"time add 60 extra",
		"time xyz 60",
		"time add -60",
		"time add +60",
		"time add 6x",
		"time add ",
	}

	for _, msg := range tests {
		t.Run(msg, func(t *testing.T) {
			if _, err := Decode([]byte(msg)); err == nil {
				t.Errorf("Decode(%q) error = nil, want error", msg)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	cmds := []Command{
		{Kind: Toggle},
		{Kind: Complete},
		{Kind: ToggleLock},
		{Kind: AdjustTime, Dir: Add, Amount: 60},
		{Kind: AdjustTime, Dir: Subtract, Amount: 1},
	}

	for _, cmd := range cmds {
		msg, err := Encode(cmd)
		if err != nil {
			t.Fatalf("Encode(%+v) error = %v", cmd, err)
		}
		got, err := Decode([]byte(msg))
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", msg, err)
		}
		if got != cmd {
			t.Errorf("round trip of %+v through %q = %+v", cmd, msg, got)
		}
	}
}
