package corpus

import (
	"context"
	"path/filepath"
	"testing"

	"typefuzz/internal/campaign"
	"typefuzz/internal/solver"
)

func TestWriteReadRoundTrip(t *testing.T) {
	cfg := campaign.DefaultConfig()
	cfg.Tests = 3
	cfg.ConstraintsPerTest = 2
	cfg.Seed = 42

	results, err := campaign.Run(context.Background(), cfg, solver.NewStub(solver.Sat, solver.Errorf("timeout"), solver.Unsat), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	payload, err := FromResults(cfg, cfg.Seed, results)
	if err != nil {
		t.Fatalf("FromResults: %v", err)
	}

	path := filepath.Join(t.TempDir(), "campaign.mp")
	if err := Write(path, payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got.Seed != 42 || got.Tests != 3 || got.ConstraintsPerTest != 2 {
		t.Errorf("parameters lost: %+v", got)
	}
	if len(got.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(got.Records))
	}
	if got.Records[1].Status != uint8(solver.StatusError) || got.Records[1].Reason != "timeout" {
		t.Errorf("record 1 = %+v, want error/timeout", got.Records[1])
	}
	for i, rec := range got.Records {
		if int(rec.Index) != i {
			t.Errorf("record %d has index %d", i, rec.Index)
		}
		if len(rec.Constraints) != 2 {
			t.Errorf("record %d has %d constraints", i, len(rec.Constraints))
		}
		for _, c := range rec.Constraints {
			if c != results[i].Constraints[0].String() && c != results[i].Constraints[1].String() {
				t.Errorf("record %d constraint %q not among originals", i, c)
			}
		}
	}
}

func TestReadRejectsUnknownSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mp")
	if err := Write(path, &Payload{Schema: 99}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Error("Read accepted unknown schema")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.mp")); err == nil {
		t.Error("Read on missing file returned nil error")
	}
}
