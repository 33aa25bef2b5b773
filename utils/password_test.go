package utils_test

import (
	"testing"

	"github.com/arpancodez/hotelmgsys/utils"
)

func TestSuggestPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		pw, err := utils.SuggestPassword(16)
		if err != nil {
			t.Fatalf("SuggestPassword: %v", err)
		}
		if len(pw) != 16 {
			t.Fatalf("len = %d, want 16", len(pw))
		}
		seen[pw] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected suggestions to vary")
	}
}

func TestSuggestPassword_TooShort(t *testing.T) {
	if _, err := utils.SuggestPassword(4); err == nil {
		t.Fatal("expected error for length below 8")
	}
}

func TestEvaluateStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		min, max int
	}{
		{"empty", "", 0, 0},
		{"short lowercase", "abc", 0, 30},
		{"long mixed", "Tr0ub4dor&3horse", 80, 100},
		{"repeated runs", "aaaaaaaa", 0, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := utils.EvaluateStrength(tc.password)
			if got < tc.min || got > tc.max {
				t.Fatalf("EvaluateStrength(%q) = %d, want in [%d, %d]",
					tc.password, got, tc.min, tc.max)
			}
		})
	}
}

func TestEvaluateStrength_Bounds(t *testing.T) {
	for _, pw := range []string{"", "a", "aAbBcC123!!@@##$$%%^^&&**(())__++"} {
		got := utils.EvaluateStrength(pw)
		if got < 0 || got > 100 {
			t.Fatalf("EvaluateStrength(%q) = %d, out of range", pw, got)
		}
	}
}
