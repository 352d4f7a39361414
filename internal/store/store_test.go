package store

import (
	"os"
	"testing"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	dir := t.TempDir()
	l, err := OpenAt(dir)
	if err != nil {
		t.Fatalf("OpenAt(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := l.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return l
}

func TestRecordAndRecent(t *testing.T) {
	l := openTestLog(t)

	for i := 0; i < 3; i++ {
		e := Entry{Size: 8, SFEN: "4k3/8/8/8/8/8/8/4K3 w", Depth: 3, BestMove: "e1e2", Score: int32(i)}
		if err := l.Record(e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := l.Recent(8, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Score != int32(i) {
			t.Fatalf("expected entries oldest-first, entry %d has score %d", i, e.Score)
		}
	}
}

func TestRecentLimitsToN(t *testing.T) {
	l := openTestLog(t)

	for i := 0; i < 5; i++ {
		if err := l.Record(Entry{Size: 6, Score: int32(i)}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := l.Recent(6, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Score != 3 || entries[1].Score != 4 {
		t.Fatalf("expected the two most recent entries (scores 3,4), got %+v", entries)
	}
}

func TestRecordKeepsSizesSeparate(t *testing.T) {
	l := openTestLog(t)

	if err := l.Record(Entry{Size: 6, Score: 1}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := l.Record(Entry{Size: 8, Score: 2}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	six, err := l.Recent(6, 10)
	if err != nil {
		t.Fatalf("Recent(6): %v", err)
	}
	if len(six) != 1 || six[0].Score != 1 {
		t.Fatalf("expected size 6 log to contain only its own entry, got %+v", six)
	}

	eight, err := l.Recent(8, 10)
	if err != nil {
		t.Fatalf("Recent(8): %v", err)
	}
	if len(eight) != 1 || eight[0].Score != 2 {
		t.Fatalf("expected size 8 log to contain only its own entry, got %+v", eight)
	}
}

func TestRecordTrimsBeyondCap(t *testing.T) {
	l := openTestLog(t)

	for i := 0; i < maxEntriesPerSize+10; i++ {
		if err := l.Record(Entry{Size: 12, Score: int32(i)}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := l.Recent(12, maxEntriesPerSize+10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != maxEntriesPerSize {
		t.Fatalf("expected trimming down to %d entries, got %d", maxEntriesPerSize, len(entries))
	}
	if entries[0].Score != 10 {
		t.Fatalf("expected the oldest 10 entries trimmed away, first remaining score is %d", entries[0].Score)
	}
}

func TestDataDirIsCreatedAndStable(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected data dir to be created: %v", err)
	}

	again, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if again != dir {
		t.Fatalf("expected DataDir to be stable across calls: %q != %q", dir, again)
	}
}
