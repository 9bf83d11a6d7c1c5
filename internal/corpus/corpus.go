// Package corpus persists campaign results as versioned msgpack payloads
// for offline triage. This is an export of observed outcomes, not a
// mutation corpus: nothing here is ever fed back into generation.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"typefuzz/internal/campaign"
)

// Current schema version - increment when Payload format changes.
const schemaVersion uint16 = 1

// Payload is the on-disk form of one campaign.
type Payload struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	CreatedAt time.Time
	Seed      int64

	// Campaign parameters, enough to reproduce the run.
	Tests              int
	ConstraintsPerTest int
	MaxDepth           int
	MaxBoolDepth       int
	IntMin             int64
	IntMax             int64

	Records []Record
}

// Record is the serialized form of one campaign.Result. Constraints are
// stored in their rendered SMT-LIB form; the trees themselves are not
// persisted.
type Record struct {
	Index       uint32
	Constraints []string
	Status      uint8
	Reason      string
	ElapsedUS   int64
}

// FromResults builds a payload for cfg and its results.
func FromResults(cfg campaign.Config, seed int64, results []campaign.Result) (*Payload, error) {
	p := &Payload{
		Schema:             schemaVersion,
		CreatedAt:          time.Now().UTC(),
		Seed:               seed,
		Tests:              cfg.Tests,
		ConstraintsPerTest: cfg.ConstraintsPerTest,
		MaxDepth:           cfg.MaxDepth,
		MaxBoolDepth:       cfg.MaxBoolDepth,
		IntMin:             cfg.IntMin,
		IntMax:             cfg.IntMax,
		Records:            make([]Record, 0, len(results)),
	}
	for _, r := range results {
		idx, err := safecast.Conv[uint32](r.Index)
		if err != nil {
			return nil, fmt.Errorf("result index overflow: %w", err)
		}
		rec := Record{
			Index:     idx,
			Status:    uint8(r.Outcome.Status),
			Reason:    r.Outcome.Reason,
			ElapsedUS: r.Elapsed.Microseconds(),
		}
		for _, c := range r.Constraints {
			rec.Constraints = append(rec.Constraints, c.String())
		}
		p.Records = append(p.Records, rec)
	}
	return p, nil
}

// Write serializes the payload to path atomically (temp file + rename).
func Write(path string, p *Payload) error {
	if p == nil {
		return fmt.Errorf("nil payload")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Read deserializes a payload from path, rejecting unknown schema versions.
func Read(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var p Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", path, err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("%s: unsupported schema %d (want %d)", path, p.Schema, schemaVersion)
	}
	return &p, nil
}
