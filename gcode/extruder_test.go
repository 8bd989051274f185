package gcode

import "testing"

func TestExtruderStateMonotonic(t *testing.T) {
	var e ExtruderState
	e.Add(1.5)
	if e.Current() != 1.5 {
		t.Fatalf("Current() = %v, want 1.5", e.Current())
	}
	e.Add(0.25)
	if e.Current() != 1.75 {
		t.Fatalf("Current() = %v, want 1.75", e.Current())
	}
}

func TestExtruderStateSeedFindsLastEToken(t *testing.T) {
	var e ExtruderState
	lines := []string{
		"G1 X0 Y0 Z0.2",
		"G1 X10 Y0 Z0.2 E0.5",
		"G1 X10 Y10 Z0.2 E1.25",
		"G1 X0 Y10 Z0.2",
	}
	e.Seed(lines)
	if e.Current() != 1.25 {
		t.Fatalf("Seed() left Current() = %v, want 1.25", e.Current())
	}
}

func TestExtruderStateSeedNoEtokenLeavesZero(t *testing.T) {
	var e ExtruderState
	e.Add(3)
	e.Seed([]string{"G1 X0 Y0 Z0.2", "G1 X10 Y0 Z0.2"})
	if e.Current() != 0 {
		t.Fatalf("Seed() with no E tokens should reset to 0, got %v", e.Current())
	}
}
