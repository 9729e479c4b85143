package service

import "testing"

func TestCalcDropPercent(t *testing.T) {
	if got := CalcDropPercent(50, 100); got == nil || *got != 50 {
		t.Errorf("CalcDropPercent(50, 100) = %v, want 50", got)
	}
	if got := CalcDropPercent(10, 0); got != nil {
		t.Errorf("CalcDropPercent(10, 0) = %v, want nil", *got)
	}
	if got := CalcDropPercent(120, 100); got == nil || *got != -20 {
		t.Errorf("CalcDropPercent(120, 100) = %v, want -20", got)
	}
	if got := CalcDropPercent(0, 100); got == nil || *got != 100 {
		t.Errorf("CalcDropPercent(0, 100) = %v, want 100", got)
	}
}

func TestCalcDeviationPercent(t *testing.T) {
	if got := CalcDeviationPercent(150, 100); got == nil || *got != 50 {
		t.Errorf("CalcDeviationPercent(150, 100) = %v, want 50", got)
	}
	if got := CalcDeviationPercent(50, 100); got == nil || *got != -50 {
		t.Errorf("CalcDeviationPercent(50, 100) = %v, want -50", got)
	}
	if got := CalcDeviationPercent(5, 0); got != nil {
		t.Errorf("CalcDeviationPercent(5, 0) = %v, want nil", *got)
	}
}

func TestRate(t *testing.T) {
	if rate, ok := Rate(3, 4); !ok || rate != 75 {
		t.Errorf("Rate(3, 4) = (%v, %v), want (75, true)", rate, ok)
	}
	if rate, ok := Rate(7, 0); ok || rate != 0 {
		t.Errorf("Rate(7, 0) = (%v, %v), want (0, false)", rate, ok)
	}
	if rate, ok := Rate(0, 10); !ok || rate != 0 {
		t.Errorf("Rate(0, 10) = (%v, %v), want (0, true)", rate, ok)
	}
}

func TestClampScore(t *testing.T) {
	if got := clampScore(-5); got != 0 {
		t.Errorf("clampScore(-5) = %d, want 0", got)
	}
	if got := clampScore(130); got != 100 {
		t.Errorf("clampScore(130) = %d, want 100", got)
	}
	if got := clampScore(52); got != 52 {
		t.Errorf("clampScore(52) = %d, want 52", got)
	}
}
