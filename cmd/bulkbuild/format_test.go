package main

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := map[float64]string{
		0:          "0.00",
		87.5432:    "87.54",
		1500:       "1.50K",
		-2500:      "-2.50K",
		3_200_000:  "3.20M",
		4.5e18:     "4500.00P",
		999.999999: "1000.00",
	}
	for in, want := range tests {
		if got := formatAmount(in); got != want {
			t.Errorf("formatAmount(%v): got %q, want %q", in, got, want)
		}
	}
}

func TestFormatName(t *testing.T) {
	tests := map[string]string{
		"spaceElevator": "Space Elevator",
		"wood":          "Wood",
		"":              "",
	}
	for in, want := range tests {
		if got := formatName(in); got != want {
			t.Errorf("formatName(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestResolvePath(t *testing.T) {
	if got := resolvePath("", "data/game.json"); got != "data/game.json" {
		t.Errorf("fallback: got %q", got)
	}
	if got := resolvePath("save.json", "data/game.json"); got != "save.json" {
		t.Errorf("flag: got %q", got)
	}
}
