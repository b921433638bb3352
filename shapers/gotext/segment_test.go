package gotext

import "testing"

// checkPartition verifies the runs tile the rune range without gaps.
func checkPartition(t *testing.T, runs []bidiRun, runeCount int) {
	t.Helper()

	next := 0
	for i, run := range runs {
		if run.start != next {
			t.Fatalf("run %d starts at %d, want %d", i, run.start, next)
		}
		if run.end <= run.start {
			t.Fatalf("run %d is empty: %+v", i, run)
		}
		next = run.end
	}
	if next != runeCount {
		t.Fatalf("runs end at %d, want %d", next, runeCount)
	}
}

func TestBidiRunsLatin(t *testing.T) {
	runs := bidiRuns("hello world")
	checkPartition(t, runs, len([]rune("hello world")))

	if len(runs) != 1 {
		t.Fatalf("bidiRuns(latin) = %d runs, want 1", len(runs))
	}
	if runs[0].rtl {
		t.Error("latin text should resolve left-to-right")
	}
}

func TestBidiRunsHebrew(t *testing.T) {
	text := "שלום"
	runs := bidiRuns(text)
	checkPartition(t, runs, len([]rune(text)))

	for i, run := range runs {
		if !run.rtl {
			t.Errorf("run %d of hebrew text resolved left-to-right", i)
		}
	}
}

func TestBidiRunsMixed(t *testing.T) {
	text := "abc שלום def"
	runes := []rune(text)
	runs := bidiRuns(text)
	checkPartition(t, runs, len(runes))

	if len(runs) != 3 {
		t.Fatalf("bidiRuns(mixed) = %d runs, want 3", len(runs))
	}
	want := []bidiRun{
		{start: 0, end: 4, rtl: false},
		{start: 4, end: 8, rtl: true},
		{start: 8, end: 12, rtl: false},
	}
	for i, run := range runs {
		if run != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, run, want[i])
		}
	}
}

func TestBidiRunsEmpty(t *testing.T) {
	if runs := bidiRuns(""); runs != nil {
		t.Errorf("bidiRuns(\"\") = %v, want nil", runs)
	}
}
