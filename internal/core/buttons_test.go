package core

import "testing"

func TestButtonsString(t *testing.T) {
	tests := []struct {
		b        Buttons
		expected string
	}{
		{0, "None"},
		{DirDown, "Down"},
		{DirDownRight, "DownRight"},
		{DirRight | ButtonX, "Right+X"},
		{ButtonA | ButtonX, "A+X"},
		{DirUpLeft | ButtonLB | ButtonRB, "UpLeft+LB+RB"},
	}

	for _, tc := range tests {
		if got := tc.b.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestParseButtons(t *testing.T) {
	tests := []struct {
		in       string
		expected Buttons
	}{
		{"None", 0},
		{"down", DirDown},
		{"DownRight", DirDownRight},
		{"Down+Right", DirDownRight},
		{"Right+X", DirRight | ButtonX},
		{" a + x ", ButtonA | ButtonX},
		{"UpLeft+LB", DirUpLeft | ButtonLB},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseButtons(tc.in)
			if err != nil {
				t.Fatalf("ParseButtons(%q) failed: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseButtons(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestParseButtonsErrors(t *testing.T) {
	bad := []string{"", "Up+Down", "Left+Right", "Jump", "A++X", "UpLeft+Right"}

	for _, in := range bad {
		if _, err := ParseButtons(in); err == nil {
			t.Errorf("ParseButtons(%q) should fail", in)
		}
	}
}

func TestParseButtonsMatchesString(t *testing.T) {
	for _, dir := range Directions() {
		for _, actions := range []Buttons{0, ButtonB, ButtonY | ButtonRB} {
			b := Combine(dir, actions)
			parsed, err := ParseButtons(b.String())
			if err != nil {
				t.Fatalf("ParseButtons(%q) failed: %v", b.String(), err)
			}
			if parsed != b {
				t.Errorf("ParseButtons(%q) = %v, expected %v", b.String(), parsed, b)
			}
		}
	}
}

func TestButtonsHas(t *testing.T) {
	b := DirDownRight | ButtonA
	if !b.Has(DirDown) || !b.Has(ButtonA) || !b.Has(DirDownRight) {
		t.Error("Has should report set bits")
	}
	if b.Has(ButtonB) || b.Has(DirNone) {
		t.Error("Has should not report unset or empty bits")
	}
}

func TestFormatSequence(t *testing.T) {
	seq := []Buttons{DirDown, DirDownRight, DirRight | ButtonX}
	if got := FormatSequence(seq); got != "Down, DownRight, Right+X" {
		t.Errorf("FormatSequence() = %q", got)
	}
}
