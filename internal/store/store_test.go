package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/valpere/mdtranslate/internal"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_New_InvalidPath(t *testing.T) {
	_, err := New("/nonexistent/path/test.db")
	if err == nil {
		t.Error("expected error for invalid path")
	}
}

func TestStore_SaveRun_GeneratesID(t *testing.T) {
	s := newTestStore(t)

	id, err := s.SaveRun(context.Background(), internal.RunRecord{
		InputFile:  "doc.md",
		OutputFile: "doc_cn.md",
		TargetLang: "zh-Hans",
		Model:      "gpt-4o",
		Report:     "Score: 95",
		DurationMS: 1200,
	})
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if id == "" {
		t.Error("expected generated run ID")
	}
}

func TestStore_SaveRun_ListRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaveRun(ctx, internal.RunRecord{
		ID:         "run-1",
		InputFile:  "doc.md",
		OutputFile: "doc_cn.md",
		TargetLang: "zh-Hans",
		Model:      "gpt-4o",
		Report:     "Score: 95\n\nNo issues found.",
		DurationMS: 1500,
	})
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	runs, err := s.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != "run-1" {
		t.Errorf("expected 'run-1', got %q", r.ID)
	}
	if r.OutputFile != "doc_cn.md" {
		t.Errorf("expected 'doc_cn.md', got %q", r.OutputFile)
	}
	if r.Report != "Score: 95\n\nNo issues found." {
		t.Errorf("expected verbatim report, got %q", r.Report)
	}
	if r.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestStore_ListRuns_Empty(t *testing.T) {
	s := newTestStore(t)

	runs, err := s.ListRuns(context.Background())
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStore_Stats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SaveRun(ctx, internal.RunRecord{InputFile: "a.md", OutputFile: "a_cn.md", TargetLang: "zh-Hans", Report: "Score: 90"}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if _, err := s.SaveRun(ctx, internal.RunRecord{InputFile: "b.md", OutputFile: "b_en.md", TargetLang: "en"}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalRuns != 2 {
		t.Errorf("expected 2 total runs, got %d", stats.TotalRuns)
	}
	if stats.VerifiedRuns != 1 {
		t.Errorf("expected 1 verified run, got %d", stats.VerifiedRuns)
	}
}

func TestStore_ClearRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SaveRun(ctx, internal.RunRecord{InputFile: "a.md", OutputFile: "a_cn.md", TargetLang: "zh-Hans"}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	n, err := s.ClearRuns(ctx)
	if err != nil {
		t.Fatalf("ClearRuns failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted row, got %d", n)
	}

	runs, err := s.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty history after clear, got %d", len(runs))
	}
}
