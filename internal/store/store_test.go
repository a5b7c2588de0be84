package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"spendlog/internal/category"
	"spendlog/internal/model"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir())
}

func readRaw(t *testing.T, s *Store, user string) map[string]json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(s.Path(user))
	if err != nil {
		t.Fatalf("reading %s: %v", s.Path(user), err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("persisted file is not valid JSON: %v", err)
	}
	return raw
}

func assertSkeleton(t *testing.T, doc *model.Document) {
	t.Helper()
	if doc == nil || doc.Date == nil || doc.Month == nil {
		t.Fatal("document is not the two-key skeleton")
	}
	if len(doc.Date) != 0 || len(doc.Month) != 0 {
		t.Fatalf("skeleton not empty: %d dates, %d months", len(doc.Date), len(doc.Month))
	}
}

func TestLoadMissingFilePersistsSkeleton(t *testing.T) {
	s := newStore(t)

	doc, err := s.Load("alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSkeleton(t, doc)

	// The reset must itself be persisted before Load returns.
	raw := readRaw(t, s, "alice")
	if _, ok := raw["date"]; !ok {
		t.Fatal(`persisted skeleton missing "date" key`)
	}
	if _, ok := raw["month"]; !ok {
		t.Fatal(`persisted skeleton missing "month" key`)
	}
}

func TestLoadCorruptFileResets(t *testing.T) {
	s := newStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path("bob")), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path("bob"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := s.Load("bob")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSkeleton(t, doc)
	readRaw(t, s, "bob")
}

func TestLoadEmptyFileResets(t *testing.T) {
	s := newStore(t)
	if err := os.WriteFile(s.Path("carol"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := s.Load("carol")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSkeleton(t, doc)
}

func TestLoadMissingTopLevelKeyResets(t *testing.T) {
	s := newStore(t)
	if err := os.WriteFile(s.Path("dave"), []byte(`{"date": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := s.Load("dave")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSkeleton(t, doc)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)

	d, err := time.Parse(model.DateKeyLayout, "2024-05-01")
	if err != nil {
		t.Fatal(err)
	}

	doc := model.NewDocument()
	doc.AddExpense(d, category.Food, 12.5)
	doc.SetLimit("May 2024", 500)
	if err := s.Save("erin", doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := s.Load("erin")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := loaded.Date["2024-05-01"]["Food"]; got != 12.5 {
		t.Fatalf("loaded amount = %.2f, want 12.50", got)
	}
	rec := loaded.Month["May 2024"]
	if rec.Limit == nil || *rec.Limit != 500 {
		t.Fatalf("loaded limit = %v, want 500", rec.Limit)
	}
}

func TestSaveReplacesWholeDocument(t *testing.T) {
	s := newStore(t)

	d, _ := time.Parse(model.DateKeyLayout, "2024-05-01")
	doc := model.NewDocument()
	doc.AddExpense(d, category.Food, 10)
	if err := s.Save("frank", doc); err != nil {
		t.Fatal(err)
	}

	if err := s.Save("frank", model.NewDocument()); err != nil {
		t.Fatal(err)
	}
	loaded, err := s.Load("frank")
	if err != nil {
		t.Fatal(err)
	}
	assertSkeleton(t, loaded)
}
