package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "best_times.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func durationsClose(a, b time.Duration) bool {
	d := a - b
	return d > -time.Microsecond && d < time.Microsecond
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("Open(\"\") succeeded")
	}
}

func TestLoadMissingRecord(t *testing.T) {
	s, _ := openTestStore(t)

	_, ok, err := s.Load(5)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatal("missing record reported as present")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s, _ := openTestStore(t)

	want := 12340 * time.Millisecond
	if err := s.Save(5, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := s.Load(5)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("record not found after save")
	}
	if !durationsClose(got, want) {
		t.Fatalf("loaded %v, want %v", got, want)
	}
}

func TestSaveIsMonotonic(t *testing.T) {
	s, _ := openTestStore(t)

	candidates := []time.Duration{
		12300 * time.Millisecond,
		9800 * time.Millisecond,
		15000 * time.Millisecond,
		9500 * time.Millisecond,
	}

	var prev time.Duration
	havePrev := false
	for _, c := range candidates {
		if err := s.Save(5, c); err != nil {
			t.Fatalf("save %v: %v", c, err)
		}
		got, ok, err := s.Load(5)
		if err != nil || !ok {
			t.Fatalf("load after save %v: ok=%v err=%v", c, ok, err)
		}
		if havePrev && got > prev {
			t.Fatalf("record increased from %v to %v", prev, got)
		}
		prev, havePrev = got, true
	}

	if !durationsClose(prev, 9500*time.Millisecond) {
		t.Fatalf("final record = %v, want 9.5s", prev)
	}
}

func TestRecordsKeyedByGridSize(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.Save(3, 5*time.Second); err != nil {
		t.Fatalf("save size 3: %v", err)
	}
	if err := s.Save(5, 20*time.Second); err != nil {
		t.Fatalf("save size 5: %v", err)
	}

	got3, ok, _ := s.Load(3)
	if !ok || !durationsClose(got3, 5*time.Second) {
		t.Fatalf("size 3 record = %v ok=%v", got3, ok)
	}
	got5, ok, _ := s.Load(5)
	if !ok || !durationsClose(got5, 20*time.Second) {
		t.Fatalf("size 5 record = %v ok=%v", got5, ok)
	}
}

func TestRecordsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_times.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Save(4, 7250*time.Millisecond); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Load(4)
	if err != nil || !ok {
		t.Fatalf("load after reopen: ok=%v err=%v", ok, err)
	}
	if !durationsClose(got, 7250*time.Millisecond) {
		t.Fatalf("loaded %v, want 7.25s", got)
	}
}

func TestCorruptedValueReadsAsMissing(t *testing.T) {
	s, _ := openTestStore(t)

	if _, err := s.db.Exec(
		`INSERT INTO records (key, seconds) VALUES (?, ?)`,
		recordKey(5), "not-a-number",
	); err != nil {
		t.Fatalf("plant corrupted row: %v", err)
	}

	_, ok, err := s.Load(5)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatal("corrupted record reported as present")
	}
}

func TestSaveReplacesCorruptedValue(t *testing.T) {
	s, _ := openTestStore(t)

	if _, err := s.db.Exec(
		`INSERT INTO records (key, seconds) VALUES (?, ?)`,
		recordKey(5), "garbage",
	); err != nil {
		t.Fatalf("plant corrupted row: %v", err)
	}

	if err := s.Save(5, 11*time.Second); err != nil {
		t.Fatalf("save over corrupted row: %v", err)
	}

	got, ok, err := s.Load(5)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if !durationsClose(got, 11*time.Second) {
		t.Fatalf("loaded %v, want 11s", got)
	}
}

func TestNilStoreIsInert(t *testing.T) {
	var s *Store

	if _, ok, err := s.Load(5); ok || err != nil {
		t.Fatalf("nil store Load: ok=%v err=%v", ok, err)
	}
	if err := s.Save(5, time.Second); err == nil {
		t.Fatal("nil store Save succeeded")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("nil store Close: %v", err)
	}
}
